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

// ---- Validation (VAL) ----

// Validation returns a user-input validation error. The message is
// surfaced verbatim to the caller.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Withdrawal records (WDR) ----

func ErrNotFound(entity string) *AppError {
	return New("WDR_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrDuplicateID signals a store integrity violation. Under the
// single-writer id scheme this is a programming fault, not a
// user-facing validation case.
func ErrDuplicateID(id string) *AppError {
	return New("WDR_002", fmt.Sprintf("withdrawal id %s already exists", id), http.StatusConflict)
}

// ---- Upload staging (UPL) ----

func ErrFileTooLarge(maxMB int) *AppError {
	return New("UPL_001", fmt.Sprintf("file exceeds %d MB limit", maxMB), http.StatusRequestEntityTooLarge)
}

func ErrUnsupportedFileType(contentType string) *AppError {
	return New("UPL_002", fmt.Sprintf("unsupported file type %s", contentType), http.StatusUnsupportedMediaType)
}

func ErrTooManyFiles(maxFiles int) *AppError {
	return New("UPL_003", fmt.Sprintf("at most %d files per request", maxFiles), http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
