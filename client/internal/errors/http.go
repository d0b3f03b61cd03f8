package errors

import "fmt"

// CategoryForStatus maps HTTP status codes to error categories:
// 4xx except 408 and 429 are irrecoverable, everything else is retried.
func CategoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes - be conservative and retry
		return Recoverable
	}
}

// NewHTTPError creates a classified error for an HTTP failure wrapping cause.
func NewHTTPError(statusCode int, cause error) *ClassifiedError {
	return &ClassifiedError{Category: CategoryForStatus(statusCode), StatusCode: statusCode, Underlying: cause}
}

// NewNetworkError creates a classified error for network-level failures.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}
