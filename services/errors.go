package services

import "errors"

// Sentinel errors for the service layer. Controllers map these to HTTP status
// codes at the boundary; services never see transport concerns.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries the first unmet input condition, in check order.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
