package admin

import (
	"fmt"
	"net/http"

	"hooksaurus/internal/validate"
)

// Code classifies every failure the engine hands back to a caller.
type Code string

const (
	CodeNotFound       Code = "NOT_FOUND"
	CodeNotImplemented Code = "NOT_IMPLEMENTED"
	CodeValidation     Code = "VALIDATION"
	CodeStorage        Code = "STORAGE"
)

// Error is the only error type the engine returns. Message is safe to show
// to an operator; Cause is for logs.
type Error struct {
	Code    Code
	Message string
	Kind    Kind
	Fields  validate.FieldErrors // validation only
	Form    *Form                // validation only: the submitted form with messages attached
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches by code so errors.Is(err, admin.ErrNotFound) works for any
// NotFound error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrNotFound       = &Error{Code: CodeNotFound, Message: "not found"}
	ErrNotImplemented = &Error{Code: CodeNotImplemented, Message: "not implemented"}
	ErrValidation     = &Error{Code: CodeValidation, Message: "invalid input"}
	ErrStorage        = &Error{Code: CodeStorage, Message: "storage failure"}
)

// HTTPStatus maps a code onto the response status used by the handlers.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotImplemented:
		return http.StatusNotImplemented
	case CodeValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func notFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func notImplemented(k Kind, op string) *Error {
	return &Error{Code: CodeNotImplemented, Kind: k, Message: fmt.Sprintf("%s is not available for %s yet", op, k.Label())}
}

func storage(k Kind, op string, cause error) *Error {
	return &Error{Code: CodeStorage, Kind: k, Message: "could not " + op + " " + k.Label(), Cause: cause}
}

func invalid(k Kind, fields validate.FieldErrors, form *Form) *Error {
	return &Error{Code: CodeValidation, Kind: k, Message: "please correct the highlighted fields", Fields: fields, Form: form}
}
