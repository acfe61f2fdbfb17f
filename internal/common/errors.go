// Package common contains shared sentinel errors and small helpers used
// across the user directory components. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Registration and validation errors.
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidFullName    = errors.New("full name must contain only a first name and a last name")
	ErrorInvalidPhoneFormat = errors.New("enter a valid phone number starting with a + and containing 11 digits")
	ErrorLoginAlreadyExists = errors.New("a user with this login already exists")

	// Credential errors.
	ErrorPasswordMismatch = errors.New("the entered password does not match the current password")
)
