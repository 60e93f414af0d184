package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings is returned when index settings cannot be used to build an index
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrMismatchedLengths is returned when paired slices (keys and their display values) differ in length
	ErrMismatchedLengths = errors.New("mismatched slice lengths")

	// ErrUnknownMetric is returned when a similarity metric name is not recognised
	ErrUnknownMetric = errors.New("unknown similarity metric")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput || target == ErrInvalidSettings
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MismatchedLengthsError reports two paired slices whose lengths differ.
type MismatchedLengthsError struct {
	What  string
	Left  int
	Right int
}

func (e *MismatchedLengthsError) Error() string {
	return fmt.Sprintf("%s: %d keys but %d values", e.What, e.Left, e.Right)
}

func (e *MismatchedLengthsError) Is(target error) bool {
	return target == ErrMismatchedLengths
}

// NewMismatchedLengthsError creates a new MismatchedLengthsError
func NewMismatchedLengthsError(what string, left, right int) *MismatchedLengthsError {
	return &MismatchedLengthsError{What: what, Left: left, Right: right}
}

// UnknownMetricError represents an unrecognised similarity metric name
type UnknownMetricError struct {
	Metric string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("similarity metric '%s' is not supported", e.Metric)
}

func (e *UnknownMetricError) Is(target error) bool {
	return target == ErrUnknownMetric || target == ErrInvalidSettings
}

// NewUnknownMetricError creates a new UnknownMetricError
func NewUnknownMetricError(metric string) *UnknownMetricError {
	return &UnknownMetricError{Metric: metric}
}
