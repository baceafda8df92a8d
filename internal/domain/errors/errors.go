package errors

import (
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, so a sentinel still
// matches after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy of e carrying details
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Membership errors. Messages are shown to staff as-is.
var (
	ErrCardNotFound = NewBaseError(
		http.StatusNotFound,
		"CARD_NOT_FOUND",
		"找不到該會員卡",
		"",
	)

	ErrLoyaltyRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"LOYALTY_RECORD_NOT_FOUND",
		"找不到該年度的消費紀錄",
		"",
	)

	ErrSpendSnapshotNotFound = NewBaseError(
		http.StatusNotFound,
		"SPEND_SNAPSHOT_NOT_FOUND",
		"該訂單尚未計入消費",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return pkgerrors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code. Store failures are reported as
// unavailable so callers may retry.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
