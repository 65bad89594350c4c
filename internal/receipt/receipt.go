// Package receipt turns OCR text of a shopping receipt into a ParsedReceipt.
//
// Parsing is a total function: any input, including empty or garbled text,
// produces a fully populated result with defaults where signals are missing.
package receipt

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"sshub/ledger-assist/internal/confidence"
	"sshub/ledger-assist/internal/currencyutils"
	"sshub/ledger-assist/internal/dateutils"
	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/textnorm"

	"github.com/shopspring/decimal"
)

var (
	datePattern   = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}`)
	amountPattern = regexp.MustCompile(`(?i)(?:₹|\$|\b(?:rs\.?|inr))?\s*(\d+(?:\.\d{2})?)`)
	digitPattern  = regexp.MustCompile(`\d`)
)

// Trimmed from both ends of a line item description once the amount is removed.
const descriptionCutset = " \t-:=*.,|"

// Receipts whose last line carries more than this are assumed to end with the total.
var lastLineTotalThreshold = decimal.NewFromInt(50)

var scorer = confidence.Scorer{Base: 50, Max: 100}

// Parser parses receipt text. The zero value is not usable; use NewParser.
type Parser struct {
	clock dateutils.Clock
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the clock used to default a missing date.
func WithClock(clock dateutils.Clock) Option {
	return func(p *Parser) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// NewParser creates a Parser using the system clock unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{clock: dateutils.SystemClock}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses text with the system clock.
func Parse(text string) models.ParsedReceipt {
	return defaultParser.Parse(text)
}

// Parse extracts merchant, date, line items, total and a confidence score.
//
// The first line is the merchant when it has no digit. The first date-shaped
// substring anywhere is the date, taken verbatim. Each line's last amount
// token is its amount; the first line mentioning "total" or "amount" (or the
// last line when its amount exceeds 50) is the total, and no line after it
// contributes items.
func (p *Parser) Parse(text string) models.ParsedReceipt {
	lines := textnorm.Lines(text)

	var merchant string
	if len(lines) > 0 && !digitPattern.MatchString(lines[0]) {
		merchant = lines[0]
	}

	date := datePattern.FindString(textnorm.Clean(text))
	dateBlanked := date == ""

	items := []models.LineItem{}
	total := decimal.Zero
	foundTotal := false

	for i, line := range lines {
		if foundTotal {
			break
		}
		if !dateBlanked {
			if loc := datePattern.FindStringIndex(line); loc != nil {
				line = line[:loc[0]] + strings.Repeat(" ", loc[1]-loc[0]) + line[loc[1]:]
				dateBlanked = true
			}
		}

		amount, rest, ok := lastAmount(line)
		if !ok {
			continue
		}

		lower := strings.ToLower(line)
		isLast := i == len(lines)-1
		if strings.Contains(lower, "total") || strings.Contains(lower, "amount") ||
			(isLast && amount.GreaterThan(lastLineTotalThreshold)) {
			total = amount
			foundTotal = true
			continue
		}

		if amount.IsPositive() {
			description := strings.Trim(rest, descriptionCutset)
			if description == "" {
				description = fmt.Sprintf("Item %d", len(items)+1)
			}
			items = append(items, models.LineItem{Description: description, Amount: amount})
		}
	}

	if !foundTotal {
		amounts := make([]decimal.Decimal, 0, len(items))
		for _, item := range items {
			amounts = append(amounts, item.Amount)
		}
		total = currencyutils.Sum(amounts...)
	}
	if total.IsNegative() {
		total = decimal.Zero
	}

	score := scorer.Score(
		confidence.Signal{Name: "merchant", Weight: 10, Present: merchant != ""},
		confidence.Signal{Name: "date", Weight: 10, Present: date != ""},
		confidence.Signal{Name: "total", Weight: 15, Present: total.IsPositive()},
		confidence.Signal{Name: "items", Weight: 15, Present: len(items) > 0},
	)

	if merchant == "" {
		merchant = models.DefaultMerchant
	}
	if date == "" {
		date = dateutils.Today(p.clock())
	}

	return models.ParsedReceipt{
		Merchant:   merchant,
		Date:       date,
		LineItems:  items,
		Total:      total,
		Confidence: score,
	}
}

// lastAmount returns the last amount token of a line and the line with that
// token removed. Tokens that fail to parse are skipped.
func lastAmount(line string) (decimal.Decimal, string, bool) {
	matches := amountPattern.FindAllStringSubmatchIndex(line, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		amount, err := currencyutils.ParseAmount(line[m[2]:m[3]])
		if err != nil {
			continue
		}
		rest := line[:m[0]] + line[m[1]:]
		return amount, strings.TrimRightFunc(rest, unicode.IsSpace), true
	}
	return decimal.Zero, line, false
}
