// Package apperr defines the error taxonomy shared by all services:
// NotFound, Invalid, Provider, Persistence and Parse. Handlers map an
// Error's kind to an HTTP status; services decide which kinds they
// recover locally and which they propagate.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindProvider
	KindPersistence
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindProvider:
		return "provider_failure"
	case KindPersistence:
		return "persistence_failure"
	case KindParse:
		return "parse_failure"
	default:
		return "unknown"
	}
}

// Error carries a kind, an optional resource identifier and a message.
type Error struct {
	Kind     Kind
	Resource string
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	s := e.Msg
	if e.Resource != "" {
		s = fmt.Sprintf("%s (%s)", s, e.Resource)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(resource, msg string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource, Msg: msg}
}

func Invalid(msg string) *Error {
	return &Error{Kind: KindInvalid, Msg: msg}
}

func Provider(resource string, err error) *Error {
	return &Error{Kind: KindProvider, Resource: resource, Msg: "provider call failed", Err: err}
}

func Persistence(resource string, err error) *Error {
	return &Error{Kind: KindPersistence, Resource: resource, Msg: "persistence failed", Err: err}
}

func Parse(resource string, err error) *Error {
	return &Error{Kind: KindParse, Resource: resource, Msg: "output did not match schema", Err: err}
}

// KindOf returns the kind of err, or KindUnknown for errors outside the
// taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// HTTPStatus maps an error to the status code handlers should respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindProvider, KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
