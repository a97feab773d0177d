package model

import "fmt"

// Error codes for failures that map to a user-facing message.
const (
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeParseFailure    = "PARSE_FAILURE"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeClientNotFound  = "CLIENT_NOT_FOUND"
)

// DomainError is a business-rule failure that the handler turns into a
// flash message and a redirect rather than a server error.
type DomainError struct {
	Code    string
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewMissingFieldError reports a required form field absent from the
// submission. The message names the field.
func NewMissingFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingField,
		Field:   field,
		Message: fmt.Sprintf("Missing required field: %s", field),
	}
}

// NewParseFailureError reports a form field that could not be parsed as a
// number.
func NewParseFailureError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeParseFailure,
		Field:   field,
		Message: fmt.Sprintf("Invalid numeric value for field: %s", field),
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found.")
	ErrClientNotFound  = NewDomainError(ErrCodeClientNotFound, "Client not found.")
)
