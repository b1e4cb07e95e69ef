package pkg

import (
	"errors"
	"fmt"
)

// Kind classifies service errors so the handler layer can pick a
// response: 404, 400, redirect-to-login or the silent edit deny.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindUnauthorized
	KindForbidden
)

type AppError struct {
	Kind  Kind
	Field string // violated form field, set on validation errors
	msg   string
}

func (e *AppError) Error() string { return e.msg }

// ErrUnauthorized is returned by every operation that needs an
// authenticated identity and did not get one.
var ErrUnauthorized = &AppError{Kind: KindUnauthorized, msg: "authentication required"}

func NotFound(what string) error {
	return &AppError{Kind: KindNotFound, msg: what + " not found"}
}

func Validation(field, msg string) error {
	return &AppError{Kind: KindValidation, Field: field, msg: fmt.Sprintf("%s: %s", field, msg)}
}

func Forbidden(msg string) error {
	return &AppError{Kind: KindForbidden, msg: msg}
}

func kindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsValidation(err error) bool   { return kindOf(err) == KindValidation }
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }
func IsForbidden(err error) bool    { return kindOf(err) == KindForbidden }

// ValidationField returns the violated field name, or "" if err is
// not a validation error.
func ValidationField(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Kind == KindValidation {
		return ae.Field
	}
	return ""
}
