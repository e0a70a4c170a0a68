package core

import "errors"

// Account errors
var (
	ErrDuplicateUserID = errors.New("user id is already taken")
	ErrDuplicateEmail  = errors.New("email is already registered")
)

// Validation errors (client input)
var (
	ErrUserIDLength     = errors.New("user id must be 4-20 characters")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrInvalidPhone     = errors.New("invalid phone number format, expected 010-1234-5678")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrMessageTooShort  = errors.New("message must be at least 10 characters")
	ErrCompanyRequired  = errors.New("company name is required")
	ErrTermsRequired    = errors.New("required terms must be accepted")
)

// Wizard errors
var (
	ErrNotOnFinalStep = errors.New("submit is only available on the final step")
)

// Config errors (caller-side configuration)
var (
	ErrStorageRequired = errors.New("storage adapter is required")
)
