package models

import (
	"github.com/shopspring/decimal"
)

// LineItem is one purchased item on a receipt.
type LineItem struct {
	Description string          `json:"description" yaml:"description" csv:"Description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount" csv:"Amount"`
}

// ParsedReceipt is the structured form of a receipt's OCR text.
type ParsedReceipt struct {
	Merchant   string          `json:"merchant" yaml:"merchant"`
	Date       string          `json:"date" yaml:"date"` // ISO date when defaulted, raw matched text otherwise
	LineItems  []LineItem      `json:"lineItems" yaml:"lineItems"`
	Total      decimal.Decimal `json:"total" yaml:"total"`
	Confidence int             `json:"confidence" yaml:"confidence"` // 0-100
}
