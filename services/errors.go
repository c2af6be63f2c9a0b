package services

import (
	"errors"
	"fmt"
)

// ErrStorage wraps unexpected database failures so callers can tell them
// apart from the typed domain errors below
var ErrStorage = errors.New("storage failure")

func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// ValidationError indicates malformed or empty input
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NotFoundError indicates a referenced record does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError indicates a uniqueness violation, such as adding a
// participant that is already a member of the conversation
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// AuthorizationError indicates the actor lacks the rights to perform the
// requested operation
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "not authorized: " + e.Reason
}

// DataIntegrityError indicates stored data violates an invariant, such as a
// message with both a user and an organization sender. Read paths never
// surface this to callers; it is logged and the record is degraded instead.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return "data integrity: " + e.Reason
}

// IsValidation reports whether the error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether the error is a NotFoundError
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsConflict reports whether the error is a ConflictError
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsAuthorization reports whether the error is an AuthorizationError
func IsAuthorization(err error) bool {
	var ae *AuthorizationError
	return errors.As(err, &ae)
}
