package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -f or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrEmptySegment    = errors.New("empty path segment")
	ErrTrailingDot     = errors.New("field path cannot end with a dot")
	ErrEmptyPath       = errors.New("field path is empty")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeFileNotFound      ErrorType = "file not found"
	ErrorTypeInvalidJSON       ErrorType = "invalid JSON syntax"
	ErrorTypeFieldNotFound     ErrorType = "field not found"
	ErrorTypeIndexOutOfBounds  ErrorType = "array index out of bounds"
	ErrorTypeNotAnArray        ErrorType = "not an array"
	ErrorTypeInvalidArrayIndex ErrorType = "invalid array index"
	ErrorTypeNotAnObject       ErrorType = "not an object"
	ErrorTypeInvalidFieldPath  ErrorType = "invalid field path"
	ErrorTypeInvalidValueType  ErrorType = "invalid value type"
	ErrorTypeInput             ErrorType = "input"
	ErrorTypeOutput            ErrorType = "output"
	ErrorTypeConfig            ErrorType = "config"
	ErrorTypeUnknown           ErrorType = "unknown"
)

// AppError is an application-specific error with context.
//
// Path, Index, Length, Value and ValueType are populated only by the kinds
// that carry them, so callers can build their own messages via errors.As.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error

	Path      string
	Index     int
	Length    int
	Value     string
	ValueType string
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Kind returns a comparable AppError for use with errors.Is.
func Kind(t ErrorType) *AppError {
	return &AppError{Type: t}
}

// IsType reports whether err carries an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	return errors.Is(err, Kind(t))
}

// NewFileNotFoundError creates an error for a document that does not exist
func NewFileNotFoundError(file string) *AppError {
	return &AppError{
		Type:    ErrorTypeFileNotFound,
		Message: file,
		Err:     ErrFileNotFound,
		Path:    file,
	}
}

// NewInvalidJSONError creates an error for a document that cannot be decoded
func NewInvalidJSONError(file string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidJSON,
		Message: file,
		Err:     err,
		Path:    file,
	}
}

// NewFieldNotFoundError creates an error for a missing object key
func NewFieldNotFoundError(field string) *AppError {
	return &AppError{
		Type:    ErrorTypeFieldNotFound,
		Message: field,
		Path:    field,
	}
}

// NewIndexOutOfBoundsError creates an error for an index past the end of an array
func NewIndexOutOfBoundsError(path string, index, length int) *AppError {
	return &AppError{
		Type:    ErrorTypeIndexOutOfBounds,
		Message: fmt.Sprintf("%s[%d], array length: %d", path, index, length),
		Path:    path,
		Index:   index,
		Length:  length,
	}
}

// NewNotAnArrayError creates an error for a value that was expected to be an array
func NewNotAnArrayError(path string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotAnArray,
		Message: path,
		Path:    path,
	}
}

// NewInvalidArrayIndexError creates an error for bracket content that is not an index
func NewInvalidArrayIndexError(index string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidArrayIndex,
		Message: index,
		Value:   index,
	}
}

// NewNotAnObjectError creates an error for a value that was expected to be an object
func NewNotAnObjectError(path, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotAnObject,
		Message: message,
		Path:    path,
	}
}

// NewInvalidFieldPathError creates an error for a malformed path expression
func NewInvalidFieldPathError(path string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidFieldPath,
		Message: path,
		Err:     err,
		Path:    path,
	}
}

// NewInvalidValueTypeError creates an error for a literal that does not match the requested type
func NewInvalidValueTypeError(value, valueType string) *AppError {
	return &AppError{
		Type:      ErrorTypeInvalidValueType,
		Message:   fmt.Sprintf("%s is not a valid %s", value, valueType),
		Value:     value,
		ValueType: valueType,
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeFileNotFound:
			return fmt.Sprintf("File not found: %s", appErr.Message)
		case ErrorTypeInvalidJSON:
			if appErr.Err != nil {
				return fmt.Sprintf("Invalid JSON syntax in %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Invalid JSON syntax in %s", appErr.Message)
		case ErrorTypeFieldNotFound:
			return fmt.Sprintf("Field not found: %s", appErr.Message)
		case ErrorTypeIndexOutOfBounds:
			return fmt.Sprintf("Array index out of bounds: %s", appErr.Message)
		case ErrorTypeNotAnArray:
			return fmt.Sprintf("Not an array: %s", appErr.Message)
		case ErrorTypeInvalidArrayIndex:
			return fmt.Sprintf("Invalid array index: %s", appErr.Message)
		case ErrorTypeNotAnObject:
			return fmt.Sprintf("Not an object: %s", appErr.Message)
		case ErrorTypeInvalidFieldPath:
			if appErr.Err != nil {
				return fmt.Sprintf("Invalid field path: %s (%v)", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Invalid field path: %s", appErr.Message)
		case ErrorTypeInvalidValueType:
			return fmt.Sprintf("Invalid value type: %s", appErr.Message)
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Config error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON document."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -f or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
