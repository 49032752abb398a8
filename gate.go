package main

// gate.go decides between the login page and the editor shell

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "isAdmin"

// FlagStore is the persistent key/value storage behind the session flag.
type FlagStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

type GateView int

const (
	ViewLoading GateView = iota
	ViewLogin
	ViewShell
)

type SessionGate struct {
	store         FlagStore
	resolved      bool
	authenticated bool
}

func NewSessionGate(store FlagStore) *SessionGate {
	return &SessionGate{store: store}
}

// Init reads the persisted flag. Anything other than "true" is logged out.
func (g *SessionGate) Init() {
	v, ok := g.store.Get(sessionKey)
	g.authenticated = ok && v == "true"
	g.resolved = true
}

func (g *SessionGate) View() GateView {
	switch {
	case !g.resolved:
		return ViewLoading
	case g.authenticated:
		return ViewShell
	default:
		return ViewLogin
	}
}

func (g *SessionGate) Authenticated() bool {
	return g.authenticated
}

func (g *SessionGate) HandleLogin(success bool) {
	g.authenticated = success
	g.resolved = true
	if success {
		g.store.Set(sessionKey, "true")
	}
}

func (g *SessionGate) HandleLogout() {
	g.store.Remove(sessionKey)
	g.authenticated = false
	g.resolved = true
}

// cookieFlags keeps flags in signed cookies. A cookie that does not carry
// a valid signature reads as absent.
type cookieFlags struct {
	w      http.ResponseWriter
	r      *http.Request
	secret []byte
	ttl    time.Duration
	secure bool
}

type flagClaims struct {
	Value string `json:"value"`
	jwt.RegisteredClaims
}

func (c *cookieFlags) Get(key string) (string, bool) {
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}

	var claims flagClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithSubject(key))
	if err != nil || !token.Valid {
		return "", false
	}
	return claims.Value, true
}

func (c *cookieFlags) Set(key, value string) {
	claims := flagClaims{
		Value: value,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  key,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(c.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return
	}
	cookie := &http.Cookie{
		Name:     key,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.ttl > 0 {
		cookie.MaxAge = int(c.ttl.Seconds())
	}
	http.SetCookie(c.w, cookie)
}

func (c *cookieFlags) Remove(key string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
