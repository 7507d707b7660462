package services

import (
	"errors"
	"fmt"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/store"
)

// ValidationError reports missing or invalid caller input.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string { return e.Msg }
func (e *ValidationError) Unwrap() error { return e.Err }

// AuthenticationError reports rejected credentials. The message is the same
// whatever check failed.
type AuthenticationError struct {
	Msg string
}

func (e *AuthenticationError) Error() string { return e.Msg }

// NotFoundError reports that the addressed entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// StoreError wraps an unexpected failure of the entity store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

var errInvalidCredentials = &AuthenticationError{Msg: "Invalid credentials"}

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// translate maps a store error onto the service taxonomy.
func translate(entity, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return &NotFoundError{Entity: entity}
	case errors.Is(err, store.ErrDuplicate):
		return &ValidationError{Msg: entity + " already exists", Err: err}
	default:
		return &StoreError{Op: op, Err: err}
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
