// Package errors provides standardized error handling for the advisor.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingField     ErrorCode = "MISSING_REQUIRED_FIELD"

	ErrCodeInsightsNotConfigured ErrorCode = "INSIGHTS_NOT_CONFIGURED"
	ErrCodeInsightsTimeout       ErrorCode = "INSIGHTS_TIMEOUT"
	ErrCodeInsightsCallFailed    ErrorCode = "INSIGHTS_CALL_FAILED"

	ErrCodeHistoryAppendFailed ErrorCode = "HISTORY_APPEND_FAILED"
	ErrCodeHistoryReadFailed   ErrorCode = "HISTORY_READ_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingFieldError creates a non-retryable error for an absent required field.
func NewMissingFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingField,
		Message:   "Required field missing",
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInsightsNotConfiguredError creates a non-retryable error for a missing credential.
func NewInsightsNotConfiguredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInsightsNotConfigured,
		Message:   "Insight service credential not configured",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInsightsTimeoutError creates a retryable timeout error for the insight service.
func NewInsightsTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInsightsTimeout,
		Message:   "Insight service call timed out",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInsightsCallFailedError creates a retryable error for a failed insight service call.
func NewInsightsCallFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInsightsCallFailed,
		Message:   "Insight service call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHistoryAppendFailedError creates a retryable history persistence error.
func NewHistoryAppendFailedError(store string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistoryAppendFailed,
		Message:   "Failed to append history record",
		Details:   fmt.Sprintf("store: %s, error: %s", store, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHistoryReadFailedError creates a retryable history read error.
func NewHistoryReadFailedError(store string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistoryReadFailed,
		Message:   "Failed to read history records",
		Details:   fmt.Sprintf("store: %s, error: %s", store, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Report cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err is a StandardError marked retryable.
func IsRetryable(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Retryable
	}
	return false
}
