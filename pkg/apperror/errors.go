package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- LNURL Protocol (LNURL) ----

func ErrMalformedLnurl() *AppError {
	return New("LNURL_001", "Malformed LNURL", http.StatusBadRequest)
}

// ---- Voucher Lifecycle (VCH) ----

func ErrVoucherNotFound() *AppError {
	return New("VCH_001", "Voucher not found", http.StatusNotFound)
}

// ErrAlreadyClaimed marks the benign outcome of a claim race: somebody
// (possibly this very claimant, via a replayed query) got there first.
// Clients with a push-success channel must treat it as inconclusive,
// not as a failure.
func ErrAlreadyClaimed() *AppError {
	return New("VCH_002", "Voucher already claimed or replayed query", http.StatusConflict)
}

func ErrVoucherCancelled() *AppError {
	return New("VCH_003", "Voucher has been cancelled", http.StatusGone)
}

func ErrVoucherExpired() *AppError {
	return New("VCH_004", "Voucher has expired", http.StatusGone)
}

func ErrNotReissuable() *AppError {
	return New("VCH_005", "Voucher is not active and cannot be reissued", http.StatusConflict)
}

func ErrInvalidAmount() *AppError {
	return New("VCH_006", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidExpiry() *AppError {
	return New("VCH_007", "Expiry must be in the future", http.StatusBadRequest)
}

// ---- Payment Execution (PAY) ----

// ErrPayoutFailedAfterClaim marks the fatal inconsistency where the claim
// was consumed but the transfer did not complete. It is persisted for manual
// reconciliation and never retried automatically, since a retry could
// double-pay.
func ErrPayoutFailedAfterClaim(err error) *AppError {
	return Wrap("PAY_001", "Payment execution failed after claim", http.StatusInternalServerError, err)
}

// ---- Rendering (RENDER) ----

func ErrRenderingUnavailable(err error) *AppError {
	return Wrap("RENDER_001", "Artifact rendering unavailable", http.StatusServiceUnavailable, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VCH_006-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("VCH_006", message, http.StatusBadRequest)
}
