// Package errors provides structured error handling for Tabular
package errors

import (
	"errors"
	"runtime"

	stringpool "github.com/ajitpratap0/tabular/pkg/strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeEmptyHeader reports a header with zero entries
	ErrorTypeEmptyHeader ErrorType = "empty_header"
	// ErrorTypeEmptyData reports an empty data sequence, or a rowset that
	// retained zero usable rows
	ErrorTypeEmptyData ErrorType = "empty_data"
	// ErrorTypeDuplicateHeader reports two identical header entries
	ErrorTypeDuplicateHeader ErrorType = "duplicate_header"
	// ErrorTypeContradictoryFlags reports mutually exclusive rowset modes
	// requested at once
	ErrorTypeContradictoryFlags ErrorType = "contradictory_flags"
	// ErrorTypeUnknownColumn reports a header name that does not exist
	ErrorTypeUnknownColumn ErrorType = "unknown_column"
	// ErrorTypeOutOfBounds reports a row, column, or index argument outside
	// its valid range
	ErrorTypeOutOfBounds ErrorType = "out_of_bounds"
	// ErrorTypeEmptyRowList reports an extraction with an empty position list
	ErrorTypeEmptyRowList ErrorType = "empty_row_list"
	// ErrorTypeRowOutOfRange reports an extraction position exceeding the
	// table's row count
	ErrorTypeRowOutOfRange ErrorType = "row_out_of_range"
	// ErrorTypeMultipleModes reports more than one output mode given to a
	// single search call
	ErrorTypeMultipleModes ErrorType = "multiple_modes"
	// ErrorTypeInternal represents internal system errors
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeData represents data encoding/decoding errors
	ErrorTypeData ErrorType = "data"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return stringpool.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return stringpool.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// TypeOf returns the ErrorType of err, or the empty string if err is not a
// structured Error
func TypeOf(err error) ErrorType {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Type
}

// captureStack captures the current call stack
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
