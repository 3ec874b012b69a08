package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryServe    Category = "serve"
	CategorySnapshot Category = "snapshot"
	CategoryCLI      Category = "cli"
)

// FluentError is a structured error with a stable code, a suggestion for
// the user, and documentation pointers. The CLI formats these for the
// terminal; everything else treats them as ordinary errors.
type FluentError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (config, serve, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FluentError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FluentError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FluentError) WithSuggestion(s string) *FluentError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *FluentError) WithDetail(d string) *FluentError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *FluentError) Wrap(err error) *FluentError {
	e.Wrapped = err
	return e
}

// New creates a FluentError from a registered error code.
func New(code string) *FluentError {
	template, ok := registry[code]
	if !ok {
		return &FluentError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &FluentError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new FluentError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *FluentError {
	return &FluentError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a FluentError.
func FromError(err error, code string) *FluentError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FluentError); ok {
		return fe
	}
	return New(code).Wrap(err)
}
