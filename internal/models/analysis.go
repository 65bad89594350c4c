package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptAnalysis is the persisted result of analysing one receipt.
type ReceiptAnalysis struct {
	ID                  string          `json:"id" yaml:"id"`
	Date                string          `json:"date" yaml:"date"`
	Merchant            string          `json:"merchant" yaml:"merchant"`
	ParsedTotal         decimal.Decimal `json:"parsedTotal" yaml:"parsedTotal"`
	Confidence          int             `json:"confidence" yaml:"confidence"`
	LineItems           []LineItem      `json:"lineItems" yaml:"lineItems"`
	SuggestedCategories []string        `json:"suggestedCategories" yaml:"suggestedCategories"`
	SuggestedCategory   string          `json:"suggestedCategory" yaml:"suggestedCategory"`
	ExtractedText       string          `json:"extractedText" yaml:"extractedText"`
	IncludeInReports    bool            `json:"includeInReports" yaml:"includeInReports"`
	CreatedAt           time.Time       `json:"createdAt" yaml:"createdAt"`
}

// AnalysisSummary is the flat record written for one analysed receipt.
type AnalysisSummary struct {
	Source            string          `json:"source" yaml:"source"`
	Merchant          string          `json:"merchant" yaml:"merchant"`
	Date              string          `json:"date" yaml:"date"`
	Total             decimal.Decimal `json:"total" yaml:"total"`
	Items             int             `json:"items" yaml:"items"`
	SuggestedCategory string          `json:"suggestedCategory" yaml:"suggestedCategory"`
	Confidence        int             `json:"confidence" yaml:"confidence"`
}

// Summary flattens the analysis into a record labelled with its source.
func (a ReceiptAnalysis) Summary(source string) AnalysisSummary {
	return AnalysisSummary{
		Source:            source,
		Merchant:          a.Merchant,
		Date:              a.Date,
		Total:             a.ParsedTotal,
		Items:             len(a.LineItems),
		SuggestedCategory: a.SuggestedCategory,
		Confidence:        a.Confidence,
	}
}
