// Package analysis turns receipt text or images into ReceiptAnalysis records:
// OCR when needed, parse, then suggest categories.
package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"sshub/ledger-assist/internal/categorizer"
	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/ocr"
	"sshub/ledger-assist/internal/receipt"
)

// Service analyses receipts.
type Service struct {
	parser    *receipt.Parser
	extractor ocr.Extractor
	logger    logging.Logger
	now       func() time.Time
}

// NewService creates a Service. The extractor is only needed for images.
func NewService(parser *receipt.Parser, extractor ocr.Extractor, logger logging.Logger) *Service {
	if parser == nil {
		parser = receipt.NewParser()
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Service{parser: parser, extractor: extractor, logger: logger, now: time.Now}
}

// AnalyzeText parses OCR text and suggests categories from the merchant and
// line item descriptions. A non-zero OCR confidence replaces the parser's.
func (s *Service) AnalyzeText(text string, ocrConfidence *float64) models.ReceiptAnalysis {
	parsed := s.parser.Parse(text)

	keywords := make([]string, 0, len(parsed.LineItems))
	for _, item := range parsed.LineItems {
		keywords = append(keywords, item.Description)
	}
	suggestions := categorizer.SuggestCategories(parsed.Merchant, keywords)

	confidence := parsed.Confidence
	if ocrConfidence != nil && *ocrConfidence != 0 {
		confidence = clampPercent(*ocrConfidence)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: parsed.Merchant},
		logging.Field{Key: logging.FieldCategory, Value: suggestions[0]},
		logging.Field{Key: logging.FieldCount, Value: len(parsed.LineItems)},
		logging.Field{Key: logging.FieldConfidence, Value: confidence},
	).Debug("Receipt analysed")

	return models.ReceiptAnalysis{
		Date:                parsed.Date,
		Merchant:            parsed.Merchant,
		ParsedTotal:         parsed.Total,
		Confidence:          confidence,
		LineItems:           parsed.LineItems,
		SuggestedCategories: suggestions,
		SuggestedCategory:   suggestions[0],
		ExtractedText:       text,
		IncludeInReports:    true,
		CreatedAt:           s.now().UTC(),
	}
}

// AnalyzeImage extracts text from an image and analyses it.
func (s *Service) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (models.ReceiptAnalysis, error) {
	if s.extractor == nil {
		return models.ReceiptAnalysis{}, fmt.Errorf("no OCR extractor configured")
	}
	result, err := s.extractor.Extract(ctx, image, mimeType)
	if err != nil {
		return models.ReceiptAnalysis{}, fmt.Errorf("failed to extract receipt text: %w", err)
	}
	return s.AnalyzeText(result.Text, result.Confidence), nil
}

func clampPercent(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
