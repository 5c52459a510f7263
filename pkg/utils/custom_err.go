package utils

import "errors"

// Service-level error taxonomy. Controllers never inspect these directly;
// HandleServiceError maps them to HTTP responses.
var (
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidState        = errors.New("operation not allowed in current state")
	ErrSignatureMismatch   = errors.New("payment signature mismatch")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrGateway             = errors.New("payment gateway error")
	ErrDatabaseError       = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
