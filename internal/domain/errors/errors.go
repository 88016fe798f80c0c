package errors

import (
	"net/http"

	"sprout/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches errors by business error code, so a WithDetails copy still
// compares equal to its sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if errors.As(target, &base) {
		return e.errorCode == base.errorCode
	}

	return false
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
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Verification errors
	ErrInvalidPhoneFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE_FORMAT",
		"Enter a valid 10-digit mobile number",
		nil,
	)

	ErrChallengeDispatchFailed = NewBaseError(
		http.StatusBadGateway,
		"CHALLENGE_DISPATCH_FAILED",
		"Could not send the verification code, please retry",
		nil,
	)

	ErrCodeMismatch = NewBaseError(
		http.StatusBadRequest,
		"CODE_MISMATCH",
		"The code you entered is incorrect",
		nil,
	)

	ErrChallengeExpired = NewBaseError(
		http.StatusGone,
		"CHALLENGE_EXPIRED",
		"The verification code has expired, request a new one",
		nil,
	)

	ErrNoActiveChallenge = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_CHALLENGE",
		"No verification code has been requested yet",
		nil,
	)

	ErrResendCooldownActive = NewBaseError(
		http.StatusTooManyRequests,
		"RESEND_COOLDOWN_ACTIVE",
		"Please wait before requesting another code",
		nil,
	)

	ErrTooManyCodeAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_CODE_ATTEMPTS",
		"Too many incorrect codes, request a new one",
		nil,
	)

	ErrSmsRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"SMS_RATE_LIMITED",
		"Too many verification requests for this number, try again later",
		nil,
	)

	ErrSmsUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SMS_UNAVAILABLE",
		"The verification service is temporarily unavailable",
		nil,
	)

	// Address errors
	ErrAddressValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_VALIDATION_FAILED",
		"Some address fields need attention",
		nil,
	)

	// Customer errors
	ErrReconciliationFailed = NewBaseError(
		http.StatusInternalServerError,
		"RECONCILIATION_FAILED",
		"Could not load or create your account, please retry",
		nil,
	)

	ErrCustomerUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CUSTOMER_UPDATE_FAILED",
		"Failed to update customer records",
		nil,
	)

	// Order errors
	ErrOrderPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_PERSISTENCE_FAILED",
		"Could not place the order, your cart is unchanged",
		nil,
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		nil,
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		nil,
	)

	ErrInvalidCartLine = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CART_LINE",
		"A cart line has an invalid quantity or price",
		nil,
	)

	// Checkout orchestration errors
	ErrCheckoutNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKOUT_NOT_FOUND",
		"This checkout attempt no longer exists",
		nil,
	)

	ErrInvalidCheckoutState = NewBaseError(
		http.StatusConflict,
		"INVALID_CHECKOUT_STATE",
		"This action is not available at the current checkout step",
		nil,
	)

	ErrPlacementInProgress = NewBaseError(
		http.StatusConflict,
		"PLACEMENT_IN_PROGRESS",
		"Your order is already being placed",
		nil,
	)

	ErrVerificationRequired = NewBaseError(
		http.StatusUnauthorized,
		"VERIFICATION_REQUIRED",
		"Verify your phone number before continuing",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		nil,
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
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
