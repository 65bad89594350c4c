package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOCRError(t *testing.T) {
	originalErr := errors.New("quota exceeded")
	err := &OCRError{Provider: "gemini", MimeType: "image/png", Err: originalErr}

	assert.Equal(t, "gemini: text extraction failed for image/png image: quota exceeded", err.Error())
	assert.True(t, errors.Is(err, originalErr))
}

func TestStoreError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &StoreError{Operation: "write", Scope: "guest", Path: "/tmp/x.yaml", Err: originalErr}

	assert.Equal(t, "store write failed for scope 'guest' (/tmp/x.yaml): permission denied", err.Error())
	assert.Equal(t, originalErr, err.Unwrap())

	var target *StoreError
	wrapped := errors.Join(errors.New("outer"), err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "guest", target.Scope)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name:     "with value",
			err:      &ValidationError{Field: "format", Value: "xml", Reason: "must be json, yaml or csv"},
			expected: "invalid format 'xml': must be json, yaml or csv",
		},
		{
			name:     "without value",
			err:      &ValidationError{Field: "input", Reason: "either --input or --image is required"},
			expected: "invalid input: either --input or --image is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{FilePath: "scan.bmp", ExpectedFormat: "jpeg, png, webp, heic", Msg: "unsupported image type"}
	assert.Equal(t, "invalid format in file 'scan.bmp': unsupported image type. Expected: jpeg, png, webp, heic", err.Error())
}
