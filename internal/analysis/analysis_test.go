package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/ocr"
	"sshub/ledger-assist/internal/receipt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const starbucks = "Starbucks Coffee\nDate: 12/03/2025\nCafé Latte - 150\nCroissant - 80\nTax - 23\nTotal: 253"

func newService(extractor ocr.Extractor) *Service {
	clock := func() time.Time { return time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC) }
	s := NewService(receipt.NewParser(receipt.WithClock(clock)), extractor, logging.NewMockLogger())
	s.now = clock
	return s
}

func TestAnalyzeText(t *testing.T) {
	got := newService(nil).AnalyzeText(starbucks, nil)

	assert.Equal(t, "Starbucks Coffee", got.Merchant)
	assert.Equal(t, "12/03/2025", got.Date)
	assert.True(t, got.ParsedTotal.Equal(decimal.NewFromInt(253)))
	assert.Equal(t, 100, got.Confidence)
	assert.Len(t, got.LineItems, 3)
	assert.Equal(t, []string{models.CategoryFood}, got.SuggestedCategories)
	assert.Equal(t, models.CategoryFood, got.SuggestedCategory)
	assert.Equal(t, starbucks, got.ExtractedText)
	assert.True(t, got.IncludeInReports)
	assert.Equal(t, time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC), got.CreatedAt)
}

func TestAnalyzeText_OCRConfidence(t *testing.T) {
	s := newService(nil)

	assert.Equal(t, 60, s.AnalyzeText(starbucks, ocr.Float(60)).Confidence)
	assert.Equal(t, 73, s.AnalyzeText(starbucks, ocr.Float(72.6)).Confidence)
	assert.Equal(t, 100, s.AnalyzeText(starbucks, ocr.Float(0)).Confidence, "zero means not reported")
	assert.Equal(t, 100, s.AnalyzeText(starbucks, ocr.Float(140)).Confidence)
}

func TestAnalyzeText_CategoriesFromLineItems(t *testing.T) {
	got := newService(nil).AnalyzeText("Corner Shop\nPhone recharge 199\nBus pass 300\nTotal 499", nil)
	assert.Equal(t, []string{models.CategoryShopping, models.CategoryTransport, models.CategoryUtilities}, got.SuggestedCategories)
	assert.Equal(t, models.CategoryShopping, got.SuggestedCategory)
}

func TestAnalyzeText_Empty(t *testing.T) {
	got := newService(nil).AnalyzeText("", nil)
	assert.Equal(t, models.DefaultMerchant, got.Merchant)
	assert.Equal(t, "2025-03-14", got.Date)
	assert.Equal(t, []string{models.CategoryFood}, got.SuggestedCategories)
	assert.Equal(t, 50, got.Confidence)
}

func TestAnalyzeImage(t *testing.T) {
	extractor := ocr.StaticExtractor{Result: ocr.Result{Text: starbucks, Confidence: ocr.Float(91)}}
	got, err := newService(extractor).AnalyzeImage(context.Background(), []byte{1, 2, 3}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Starbucks Coffee", got.Merchant)
	assert.Equal(t, 91, got.Confidence)
}

func TestAnalyzeImage_FallbackText(t *testing.T) {
	extractor := ocr.NewFallbackExtractor(ocr.StaticExtractor{Err: errors.New("offline")}, starbucks, 60, nil)
	got, err := newService(extractor).AnalyzeImage(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, 60, got.Confidence)
	assert.True(t, got.ParsedTotal.Equal(decimal.NewFromInt(253)))
}

func TestAnalyzeImage_Errors(t *testing.T) {
	_, err := newService(nil).AnalyzeImage(context.Background(), []byte{1}, "image/png")
	assert.Error(t, err)

	_, err = newService(ocr.StaticExtractor{Err: errors.New("offline")}).AnalyzeImage(context.Background(), []byte{1}, "image/png")
	assert.Error(t, err)
}
