package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal or domain error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches client-visible details and returns the same error.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Request validation (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Wallet ledger (WAL) ----

func ErrScopeMismatch(err error) *AppError {
	return Wrap("WAL_001", "Wallet is not usable in the current channel", http.StatusForbidden, err)
}

func ErrInsufficientBalance(err error) *AppError {
	return Wrap("WAL_002", "Insufficient balance in wallet", http.StatusPaymentRequired, err)
}

func ErrInvalidCustomer(err error) *AppError {
	return Wrap("WAL_003", "Customer does not exist", http.StatusUnprocessableEntity, err)
}

// ---- Refund allocation (REF) ----

func ErrRefundOrderState(err error) *AppError {
	return Wrap("REF_001", "Order is not in a refundable state", http.StatusConflict, err)
}

func ErrRefundAmount(err error, maxRefundable int64) *AppError {
	return Wrap("REF_002", "Refund amount exceeds the refundable total", http.StatusUnprocessableEntity, err).
		WithDetails(map[string]any{"max_refundable": maxRefundable})
}

func ErrRefundStateTransition(err error) *AppError {
	return Wrap("REF_003", "Refund could not be settled", http.StatusConflict, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrTimeout(err error) *AppError {
	return Wrap("SYS_002", "Request timed out", http.StatusGatewayTimeout, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
