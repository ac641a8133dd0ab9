package autherrors

import (
	"errors"
	"fmt"
)

type Category string

const (
	CategoryValidation   Category = "VALIDATION"
	CategoryAuth         Category = "AUTH"
	CategoryNotFound     Category = "NOT_FOUND"
	CategoryConflict     Category = "CONFLICT"
	CategoryUnauthorized Category = "UNAUTHORIZED"
	CategoryInternal     Category = "INTERNAL"
)

// DomainError is the error contract every user-visible failure of this
// library satisfies. Callers match with errors.Is against the exported
// sentinels; HTTPStatus is a hint for collaborators that translate the
// outcome to a transport, this package itself has no transport.
type DomainError interface {
	error
	Code() string
	Category() Category
	HTTPStatus() int
	Message() string
	Unwrap() error
	WithCause(cause error) DomainError
}

type domainError struct {
	code     string
	category Category
	status   int
	message  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string       { return e.code }
func (e *domainError) Category() Category { return e.category }
func (e *domainError) HTTPStatus() int    { return e.status }
func (e *domainError) Message() string    { return e.message }
func (e *domainError) Unwrap() error      { return e.cause }

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		cause:    cause,
	}
}

// Is makes a caused copy match its sentinel under errors.Is.
func (e *domainError) Is(target error) bool {
	de, ok := target.(*domainError)
	if !ok {
		return false
	}
	return e.code == de.code
}

func New(code string, category Category, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func As(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}
