package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGateLifecycle(t *testing.T) {
	flags := memFlags{}
	g := NewSessionGate(flags)
	assert.Equal(t, ViewLoading, g.View())

	g.Init()
	assert.Equal(t, ViewLogin, g.View())

	g.HandleLogin(true)
	assert.Equal(t, ViewShell, g.View())
	assert.Equal(t, "true", flags[sessionKey])

	g.HandleLogout()
	assert.Equal(t, ViewLogin, g.View())
	_, ok := flags[sessionKey]
	assert.False(t, ok)
}

func TestSessionGateReadsPersistedFlag(t *testing.T) {
	g := NewSessionGate(memFlags{sessionKey: "true"})
	g.Init()
	assert.Equal(t, ViewShell, g.View())

	g = NewSessionGate(memFlags{sessionKey: "yes"})
	g.Init()
	assert.Equal(t, ViewLogin, g.View())
}

func TestSessionGateFailedLogin(t *testing.T) {
	flags := memFlags{}
	g := NewSessionGate(flags)
	g.Init()

	g.HandleLogin(false)

	assert.Equal(t, ViewLogin, g.View())
	assert.Empty(t, flags)
}

func cookieFlagsFor(w http.ResponseWriter, r *http.Request, secret string) *cookieFlags {
	return &cookieFlags{w: w, r: r, secret: []byte(secret)}
}

func TestCookieFlagsSignedRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	cookieFlagsFor(rec, httptest.NewRequest(http.MethodGet, "/", nil), "secret").Set(sessionKey, "true")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	v, ok := cookieFlagsFor(httptest.NewRecorder(), req, "secret").Get(sessionKey)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = cookieFlagsFor(httptest.NewRecorder(), req, "other").Get(sessionKey)
	assert.False(t, ok)
}

func TestCookieFlagsRejectsPlainValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionKey, Value: "true"})

	_, ok := cookieFlagsFor(httptest.NewRecorder(), req, "secret").Get(sessionKey)
	assert.False(t, ok)
}

func TestCookieFlagsExpiry(t *testing.T) {
	rec := httptest.NewRecorder()
	f := &cookieFlags{w: rec, r: httptest.NewRequest(http.MethodGet, "/", nil), secret: []byte("s"), ttl: -time.Minute}
	f.Set(sessionKey, "true")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 0, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	_, ok := cookieFlagsFor(httptest.NewRecorder(), req, "s").Get(sessionKey)
	assert.True(t, ok, "non-positive ttl means no expiry")
}
