package db

import "errors"

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var target *DuplicateKeyError
	return errors.As(err, &target)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// InvalidStateTransitionError is returned when an expense settlement is
// attempted against an expense that is no longer pending.
type InvalidStateTransitionError struct {
	Key     string
	From    string
	Message string
}

func (e *InvalidStateTransitionError) Error() string {
	return e.Message
}

func IsInvalidStateTransitionError(err error) bool {
	var target *InvalidStateTransitionError
	return errors.As(err, &target)
}
