// Package common defines shared sentinel errors and small helpers used across
// the travelbook session, repository and presentation layers. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors. ErrInvalidCredentials deliberately covers both an unknown
	// email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")
)
