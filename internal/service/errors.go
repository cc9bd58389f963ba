package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrMissingUserFields  = errors.New("name, email, and password are required")
	ErrMissingLoginFields = errors.New("email and password are required")
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("email or password is not valid")
)

// ===== Token Errors =====
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ===== Contact Errors =====
var (
	ErrMissingContactFields = errors.New("name, email, and phone are required")
	ErrEmptyContactField    = errors.New("contact fields cannot be empty")
	ErrContactNotFound      = errors.New("contact not found")
	ErrNotContactOwner      = errors.New("not authorized to access this contact")
)
