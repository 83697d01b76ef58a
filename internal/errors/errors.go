package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess          = 0   // Indicates successful execution.
	ExitErrorGeneric     = 1   // Indicates a generic error.
	ExitErrorTimeout     = 2   // Indicates the sweep timed out.
	ExitErrorMismatch    = 3   // Indicates a parallel histogram disagreed with the reference.
	ExitErrorConfig      = 4   // Indicates a usage or configuration error.
	ExitErrorConsistency = 5   // Indicates a histogram total did not match the input size.
	ExitErrorCanceled    = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as a wrong number
// of arguments or an invalid flag value. The application cannot proceed.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ConsistencyError reports a histogram whose bucket total differs from the
// number of input values it was built from.
type ConsistencyError struct {
	// Expected is the number of input values.
	Expected int
	// Observed is the sum of all buckets.
	Observed int
}

// Error returns the diagnostic naming expected and observed totals.
func (e ConsistencyError) Error() string {
	return fmt.Sprintf("Histogram error: expected %d values, saw %d", e.Expected, e.Observed)
}

// MismatchError reports a computed histogram that disagrees bucket-wise with
// the reference histogram.
type MismatchError struct {
	// Threads is the worker count of the failing run, 0 when unknown.
	Threads int
	// Discrepancy is the summed absolute per-bucket difference.
	Discrepancy int
}

// Error returns the diagnostic reporting the total discrepancy.
func (e MismatchError) Error() string {
	if e.Threads > 0 {
		return fmt.Sprintf("%d errors between the reference and computed results (%d threads)", e.Discrepancy, e.Threads)
	}
	return fmt.Sprintf("%d errors between the reference and computed results", e.Discrepancy)
}

// WorkerError wraps a failure raised inside a single histogram worker, such
// as an out-of-range input value.
type WorkerError struct {
	// Worker is the id of the failing worker.
	Worker int
	// Cause is the underlying error.
	Cause error
}

// Error returns the worker id and the cause.
func (e WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Worker, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e WorkerError) Unwrap() error { return e.Cause }

// TimeoutError represents a sweep timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
	// Cause is the context error that stopped the operation, if any.
	Cause error
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap returns the underlying context error.
func (e TimeoutError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		configErr      ConfigError
		consistencyErr ConsistencyError
		mismatchErr    MismatchError
		timeoutErr     TimeoutError
	)
	switch {
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &consistencyErr):
		return ExitErrorConsistency
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
