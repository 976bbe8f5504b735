package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// Kind classifies an AppError independently of its wire code.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindUpstreamUnavailable
	KindUpstreamMalformed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindUpstreamMalformed:
		return "upstream_malformed"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// AppError is a domain error with a stable code and a client facing message.
type AppError struct {
	Kind    Kind
	Code    failure.ErrorCode
	Message string
	// Details maps offending input fields to their problems.
	Details map[string][]string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithDetail returns a copy of e with problem recorded for field.
func (e *AppError) WithDetail(field, problem string) *AppError {
	clone := *e
	clone.Details = make(map[string][]string, len(e.Details)+1)

	for k, v := range e.Details {
		clone.Details[k] = append([]string(nil), v...)
	}

	clone.Details[field] = append(clone.Details[field], problem)

	return &clone
}

func NewError(kind Kind, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, kind Kind, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// GetCode reports the code of the first AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code, true
	}

	return "", false
}

// GetKind returns KindInternal for errors that are not an AppError.
func GetKind(err error) Kind {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind
	}

	return KindInternal
}
