// Package ocr is the boundary to the service that turns a receipt image into
// raw text. Parsing the text is not its concern.
package ocr

import (
	"context"
	"path/filepath"
	"strings"

	"sshub/ledger-assist/internal/parsererror"
)

// Result is the text read from an image. Confidence is on a 0-100 scale and
// nil when the provider does not report one.
type Result struct {
	Text       string
	Confidence *float64
}

// Extractor reads text from an image.
type Extractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (Result, error)
}

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
}

// MimeTypeFromPath maps an image file extension to its MIME type.
func MimeTypeFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if mimeType, ok := imageTypes[ext]; ok {
		return mimeType, nil
	}
	return "", &parsererror.InvalidFormatError{
		FilePath:       path,
		ExpectedFormat: "jpeg, png, webp, heic or heif image",
		Msg:            "unsupported image type",
	}
}

// imageFormat strips the "image/" prefix, leaving the short format name.
func imageFormat(mimeType string) string {
	return strings.TrimPrefix(strings.ToLower(mimeType), "image/")
}

// Float returns a pointer to v, for building Results.
func Float(v float64) *float64 {
	return &v
}
