// Package currencyutils parses and formats the decimal amounts that appear in
// receipts and commands.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyMarkers = regexp.MustCompile(`(?i)(?:₹|€|\$|£|¥|\binr\b|\brs\.?|\s)`)

// ParseAmount parses an amount token such as "150", "₹150.50" or "Rs. 80"
// into a decimal. Grouped thousands ("1,234") are not amount tokens and are
// rejected.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount %q", amountStr)
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips currency markers and whitespace.
func StandardizeAmount(amountStr string) string {
	return currencyMarkers.ReplaceAllString(amountStr, "")
}

// FormatAmount renders an amount with two decimals. An empty currency gives
// the bare number.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)

	switch strings.ToUpper(currency) {
	case "":
		return formatted
	case "INR":
		return "₹" + formatted
	default:
		return currency + " " + formatted
	}
}

// Sum adds the given amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
