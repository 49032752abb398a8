package main

import (
	"errors"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidForm marks a submission blocked by a required-field rule.
var ErrInvalidForm = errors.New("invalid form")

// ErrDeclined is returned when the user answers no to a delete prompt.
var ErrDeclined = errors.New("delete not confirmed")

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier shows an acknowledgement to the user.
type Notifier interface {
	Notify(message string)
}

// editorState is the single update queue shared by an editor's operations.
// Holding mu for the whole operation keeps transitions in issue order.
type editorState struct {
	mu     sync.Mutex
	smu    sync.RWMutex
	status Status
}

func (e *editorState) begin() {
	e.mu.Lock()
	e.set(StatusLoading)
}

func (e *editorState) end(err error) {
	if err != nil {
		e.set(StatusError)
	} else {
		e.set(StatusSuccess)
	}
	e.mu.Unlock()
}

// cancel leaves the queue without running the operation.
func (e *editorState) cancel() {
	e.set(StatusIdle)
	e.mu.Unlock()
}

func (e *editorState) set(s Status) {
	e.smu.Lock()
	e.status = s
	e.smu.Unlock()
}

func (e *editorState) Status() Status {
	e.smu.RLock()
	defer e.smu.RUnlock()
	return e.status
}

func (e *editorState) Loading() bool {
	return e.Status() == StatusLoading
}

// notBlank is validation.Required applied to the trimmed value.
var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	return validation.Validate(strings.TrimSpace(s), validation.Required)
})

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrInvalidForm, err)
}
