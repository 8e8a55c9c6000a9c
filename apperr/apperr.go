// Package apperr defines the expected, client-correctable failures returned by
// the service layer. Anything that is not an *Error is an unexpected fault.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindDuplicate
	KindValidation
	KindPublishPrecondition
	// KindInvalid marks a malformed request: bad JSON, unknown fields, failed field constraints.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "Not Found"
	case KindDuplicate, KindValidation, KindPublishPrecondition:
		return "Conflict"
	case KindInvalid:
		return "Bad Request"
	default:
		return "Internal Server Error"
	}
}

// Status is the HTTP status a failure of this kind is rendered with.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate, KindValidation, KindPublishPrecondition:
		return http.StatusConflict
	case KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can write errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrDuplicate           = &Error{Kind: KindDuplicate}
	ErrValidation          = &Error{Kind: KindValidation}
	ErrPublishPrecondition = &Error{Kind: KindPublishPrecondition}
	ErrInvalid             = &Error{Kind: KindInvalid}
)

func NotFound(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with ID %s not found", resource, id)}
}

func Duplicate(resource, field, value string) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func PublishPrecondition(resource, id string, missing []string) *Error {
	msg := fmt.Sprintf("Cannot publish %s %s: missing required fields for publication", strings.ToLower(resource), id)
	if id == "" {
		msg = fmt.Sprintf("Cannot publish %s: missing required fields for publication", strings.ToLower(resource))
	}
	if len(missing) > 0 {
		msg += " (" + strings.Join(missing, ", ") + ")"
	}
	return &Error{Kind: KindPublishPrecondition, Message: msg}
}

func Invalid(message string, err error) *Error {
	return &Error{Kind: KindInvalid, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or KindUnknown for unexpected faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
