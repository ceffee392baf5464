package apperror

import (
	"errors"
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

// HasCode reports whether err is an *AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- User Input Validation (VAL) ----

func ErrInvalidAddress() *AppError {
	return New("VAL_001", "Please enter a valid Aptos address", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Please enter a valid amount greater than 0", http.StatusBadRequest)
}

func ErrInvalidMessage() *AppError {
	return New("VAL_003", "Message must be between 1 and 100 characters", http.StatusBadRequest)
}

// ---- Wallet Session (WAL) ----

func ErrWalletNotConnected() *AppError {
	return New("WAL_001", "Please connect your wallet first", http.StatusConflict)
}

func ErrWalletRejected(err error) *AppError {
	return Wrap("WAL_002", "Wallet rejected the request", http.StatusBadGateway, err)
}

// ---- Chain Interaction (CHN) ----

func ErrSubmissionFailed(err error) *AppError {
	return Wrap("CHN_001", "Transaction submission failed", http.StatusBadGateway, err)
}

func ErrConfirmationTimeout(err error) *AppError {
	return Wrap("CHN_002", "Timed out waiting for transaction confirmation", http.StatusGatewayTimeout, err)
}

func ErrTransactionAborted(vmStatus string) *AppError {
	return New("CHN_003", fmt.Sprintf("Transaction failed on chain: %s", vmStatus), http.StatusUnprocessableEntity)
}

func ErrChainQuery(err error) *AppError {
	return Wrap("CHN_004", "Chain query failed", http.StatusBadGateway, err)
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

func ErrNotFound(entity string) *AppError {
	return New("SYS_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}
