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

// ---- Webhook Verification (VER) ----

func ErrInvalidSignature() *AppError {
	return New("VER_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrSignatureFormat() *AppError {
	return New("VER_002", "Unsupported signature header format", http.StatusUnauthorized)
}

func ErrTimestampMissing() *AppError {
	return New("VER_003", "Missing webhook timestamp header", http.StatusUnauthorized)
}

func ErrTimestampInvalid() *AppError {
	return New("VER_004", "Malformed webhook timestamp header", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("VER_005", "Webhook timestamp outside allowed skew window", http.StatusUnauthorized)
}

// ---- Event Ingestion (ING) ----

func ErrInvalidEnvelope(message string) *AppError {
	return New("ING_001", message, http.StatusBadRequest)
}

// ---- Case Engine (CASE) ----

func ErrCaseNotFound() *AppError {
	return New("CASE_001", "Recovery case not found", http.StatusNotFound)
}

func ErrCaseNotOpen() *AppError {
	return New("CASE_002", "Recovery case is not open", http.StatusConflict)
}

func ErrInvariantViolation(detail string) *AppError {
	return New("CASE_003", fmt.Sprintf("Case invariant violated: %s", detail), http.StatusInternalServerError)
}

func ErrSettingsNotFound() *AppError {
	return New("CASE_004", "Creator settings not found for company", http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Outbound Dependencies (DEP) ----

func ErrBreakerOpen(dependency string) *AppError {
	return New("DEP_001", fmt.Sprintf("Circuit breaker open for %s", dependency), http.StatusServiceUnavailable)
}

func ErrDependencyFailure(dependency string, err error) *AppError {
	return Wrap("DEP_002", fmt.Sprintf("Dependency %s failed", dependency), http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidCronSecret() *AppError {
	return New("AUTH_002", "Invalid scheduler trigger secret", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns an ING_001-style validation error.
func Validation(message string) *AppError {
	return New("ING_001", message, http.StatusBadRequest)
}
