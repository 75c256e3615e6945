// Package errors provides structured CLI errors with categories and
// fix suggestions.
package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryServer     Category = "server"
	CategoryValidation Category = "validation"
	CategoryCLI        Category = "cli"
)

// Error is a structured error with a category, detail, and suggestion.
type Error struct {
	// Category is the error type (config, server, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error in the given category.
func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// Format returns a multi-line human-readable rendering of the error.
func (e *Error) Format() string {
	out := e.Error()
	if e.Detail != "" {
		out += "\n  " + e.Detail
	}
	if e.Wrapped != nil {
		out += "\n  cause: " + e.Wrapped.Error()
	}
	if e.Suggestion != "" {
		out += "\n  hint: " + e.Suggestion
	}
	return out
}
