package ocr

import (
	"context"
	"strings"

	"sshub/ledger-assist/internal/logging"
)

// FallbackExtractor substitutes fixed text when the primary extractor fails
// or returns nothing, so the receipt can still be parsed.
type FallbackExtractor struct {
	primary    Extractor
	text       string
	confidence float64
	logger     logging.Logger
}

// NewFallbackExtractor wraps primary. A nil primary always yields the
// fallback text.
func NewFallbackExtractor(primary Extractor, text string, confidence float64, logger logging.Logger) *FallbackExtractor {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &FallbackExtractor{primary: primary, text: text, confidence: confidence, logger: logger}
}

// Extract runs the primary extractor and falls back on failure. A cancelled or
// expired ctx is returned as an error, never replaced by fallback text.
func (f *FallbackExtractor) Extract(ctx context.Context, image []byte, mimeType string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if f.primary == nil {
		f.logger.Warn("OCR unavailable, using fallback text")
		return f.fallback(), nil
	}

	result, err := f.primary.Extract(ctx, image, mimeType)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	if err != nil {
		f.logger.WithError(err).Warn("OCR failed, using fallback text")
		return f.fallback(), nil
	}
	if strings.TrimSpace(result.Text) == "" {
		f.logger.Warn("OCR returned no text, using fallback text")
		return f.fallback(), nil
	}
	return result, nil
}

func (f *FallbackExtractor) fallback() Result {
	return Result{Text: f.text, Confidence: Float(f.confidence)}
}
