package services

import "fmt"

// The four failure kinds every core operation can surface. Controllers map
// them onto HTTP statuses; anything else is a store failure and passes
// through unchanged.

// ValidationError means the input is malformed or missing and must be
// corrected before resubmitting.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// ForbiddenError means the acting user has no rights over the target entity.
type ForbiddenError struct {
	Detail string
}

func (e *ForbiddenError) Error() string { return e.Detail }

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

// ConflictError means the request is well formed but the entity's current
// state forbids the transition; the client must refresh and retry.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return e.Detail }

func errValidation(format string, args ...any) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

func errForbidden(format string, args ...any) error {
	return &ForbiddenError{Detail: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...any) error {
	return &NotFoundError{Detail: fmt.Sprintf(format, args...)}
}

func errConflict(format string, args ...any) error {
	return &ConflictError{Detail: fmt.Sprintf(format, args...)}
}
