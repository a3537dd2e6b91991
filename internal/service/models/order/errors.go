package order

// ValidationError signals a business-rule rejection raised below the
// transport boundary, e.g. a storage-level constraint on quantity. The
// boundary maps it to a client error instead of a server error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
