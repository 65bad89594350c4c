// Package parsererror defines the typed errors returned by the calling layer
// around the parsing core: OCR acquisition, persistence and input validation.
package parsererror

import "fmt"

// OCRError represents a failure of the OCR collaborator.
type OCRError struct {
	Provider string
	MimeType string
	Err      error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("%s: text extraction failed for %s image: %v",
		e.Provider, e.MimeType, e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// StoreError represents a failure reading or writing scoped data.
type StoreError struct {
	Operation string
	Scope     string
	Path      string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for scope '%s' (%s): %v",
		e.Operation, e.Scope, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid user input or configuration.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidFormatError represents an input file that cannot be read as receipt
// text or a supported image.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
