// Package errors types the failures web handlers surface, so each maps to
// one HTTP status and, optionally, one catalog message.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies a failure.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

var statusByKind = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindUnavailable:  http.StatusServiceUnavailable,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
}

// Error is a typed failure. Message goes to logs; Key, when set, names the
// catalog entry shown to the viewer.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e Error) Unwrap() error { return e.Err }

// E returns a typed error without a viewer-facing message.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK returns a typed error shown to the viewer as the catalog entry key.
func EK(kind Kind, key, message string) error {
	return Wrap(kind, key, message, nil)
}

// Wrap types cause and attaches a catalog key.
func Wrap(kind Kind, key, message string, cause error) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message, Err: cause}
}

func as(err error) (Error, bool) {
	var typed Error
	if err == nil || !stderrors.As(err, &typed) {
		return Error{}, false
	}
	return typed, true
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) Kind {
	if typed, ok := as(err); ok {
		return typed.Kind
	}
	return KindUnknown
}

// LocalizationKey returns the catalog key carried by err, or "".
func LocalizationKey(err error) string {
	typed, _ := as(err)
	return typed.Key
}

// HTTPStatus maps err to a response status. Nil is 200; untyped errors and
// unknown kinds are 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
