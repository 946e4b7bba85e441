package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WDR_001", "withdrawal not found", http.StatusNotFound),
			expected: "[WDR_001] withdrawal not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, fmt.Errorf("store unavailable")),
			expected: "[SYS_001] Internal server error: store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidation(t *testing.T) {
	err := Validation("userName required")
	assert.Equal(t, "VAL_001", err.Code)
	assert.Equal(t, "userName required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

func TestWithdrawalErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrNotFound("withdrawal"), "WDR_001", 404},
		{"DuplicateID", ErrDuplicateID("WD_001"), "WDR_002", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUploadErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"FileTooLarge", ErrFileTooLarge(10), "UPL_001", 413},
		{"UnsupportedFileType", ErrUnsupportedFileType("application/zip"), "UPL_002", 415},
		{"TooManyFiles", ErrTooManyFiles(5), "UPL_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("store unavailable")
	err := InternalError(inner)
	assert.Equal(t, "SYS_001", err.Code)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestErrorMessagesCarryDetail(t *testing.T) {
	assert.Contains(t, ErrNotFound("withdrawal").Message, "withdrawal")
	assert.Contains(t, ErrDuplicateID("WD_007").Message, "WD_007")
	assert.Contains(t, ErrFileTooLarge(10).Message, "10")
	assert.Contains(t, ErrUnsupportedFileType("text/plain").Message, "text/plain")
	assert.Contains(t, ErrTooManyFiles(5).Message, "5")
}
