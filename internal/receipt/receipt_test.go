package receipt_test

import (
	"testing"
	"time"

	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/receipt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func newParser() *receipt.Parser {
	return receipt.NewParser(receipt.WithClock(fixedClock))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse_StarbucksReceipt(t *testing.T) {
	text := "Starbucks Coffee\nDate: 12/03/2025\nCafé Latte - 150\nCroissant - 80\nTax - 23\nTotal: 253"

	got := newParser().Parse(text)

	assert.Equal(t, "Starbucks Coffee", got.Merchant)
	assert.Equal(t, "12/03/2025", got.Date)
	assert.True(t, got.Total.Equal(dec("253")), "total %s", got.Total)
	assert.Equal(t, 100, got.Confidence)
	require.Len(t, got.LineItems, 3)
	assert.Equal(t, "Café Latte", got.LineItems[0].Description)
	assert.True(t, got.LineItems[0].Amount.Equal(dec("150")))
	assert.Equal(t, "Croissant", got.LineItems[1].Description)
	assert.True(t, got.LineItems[1].Amount.Equal(dec("80")))
	assert.Equal(t, "Tax", got.LineItems[2].Description)
	assert.True(t, got.LineItems[2].Amount.Equal(dec("23")))
}

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n"} {
		got := newParser().Parse(text)
		assert.Equal(t, models.DefaultMerchant, got.Merchant)
		assert.Equal(t, "2025-03-14", got.Date)
		assert.NotNil(t, got.LineItems)
		assert.Empty(t, got.LineItems)
		assert.True(t, got.Total.IsZero())
		assert.Equal(t, 50, got.Confidence)
	}
}

func TestParse_PackageLevelUsesToday(t *testing.T) {
	got := receipt.Parse("")
	assert.Equal(t, time.Now().Format("2006-01-02"), got.Date)
}

func TestParse_TotalWinsOverItems(t *testing.T) {
	text := "Shop\nA - 10\nB - 20\nTOTAL 999.50"
	got := newParser().Parse(text)
	assert.True(t, got.Total.Equal(dec("999.50")))
	assert.Len(t, got.LineItems, 2)
}

func TestParse_AmountKeywordIsTotal(t *testing.T) {
	got := newParser().Parse("Shop\nBread 30\nAmount due Rs. 45")
	assert.True(t, got.Total.Equal(dec("45")))
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Bread", got.LineItems[0].Description)
}

func TestParse_NoTotalSumsItems(t *testing.T) {
	got := newParser().Parse("Kiosk\nTea 10\nBiscuit 15.50")
	assert.True(t, got.Total.Equal(dec("25.50")), "total %s", got.Total)
	assert.Len(t, got.LineItems, 2)
	// merchant + total + items, no date
	assert.Equal(t, 90, got.Confidence)
	assert.Equal(t, "2025-03-14", got.Date)
}

func TestParse_LastLineOverFiftyIsTotal(t *testing.T) {
	got := newParser().Parse("Kiosk\nTea 10\nSnacks 60")
	assert.True(t, got.Total.Equal(dec("60")))
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Tea", got.LineItems[0].Description)
}

func TestParse_LastLineUnderFiftyIsItem(t *testing.T) {
	got := newParser().Parse("Kiosk\nTea 10\nSnacks 40")
	assert.True(t, got.Total.Equal(dec("50")))
	assert.Len(t, got.LineItems, 2)
}

func TestParse_ItemsAfterTotalAreDropped(t *testing.T) {
	got := newParser().Parse("Diner\nSoup 40\nTotal 40\nDessert 25")
	assert.True(t, got.Total.Equal(dec("40")))
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Soup", got.LineItems[0].Description)
}

func TestParse_FirstLineWithDigitIsNotMerchant(t *testing.T) {
	got := newParser().Parse("7-Eleven\nWater 20")
	assert.Equal(t, models.DefaultMerchant, got.Merchant)
}

func TestParse_EmptyDescriptionBecomesItemN(t *testing.T) {
	got := newParser().Parse("Stall\n₹ 12\nRs. 15\nTotal 27")
	require.Len(t, got.LineItems, 2)
	assert.Equal(t, "Item 1", got.LineItems[0].Description)
	assert.Equal(t, "Item 2", got.LineItems[1].Description)
}

func TestParse_ISODate(t *testing.T) {
	got := newParser().Parse("Mart\n2025-01-31 10:20\nMilk 30")
	assert.Equal(t, "2025-01-31", got.Date)
	require.Len(t, got.LineItems, 2)
	assert.Equal(t, "Milk", got.LineItems[1].Description)
}

func TestParse_ZeroAmountLinesSkipped(t *testing.T) {
	got := newParser().Parse("Mart\nDiscount 0\nMilk 30")
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Milk", got.LineItems[0].Description)
}

func TestParse_AlwaysWellFormed(t *testing.T) {
	inputs := []string{
		"",
		"garbage ### ???",
		"1\n2\n3",
		"Total",
		"x 0.00\ny 00\nTotal 0",
		"Mega Store\n12/12/12\nA 1\nB 2\nC 3\nD 4\nE 5\nTotal 15",
		"₹₹₹ rs rs. inr $",
	}
	for _, in := range inputs {
		got := newParser().Parse(in)
		assert.GreaterOrEqual(t, got.Confidence, 0)
		assert.LessOrEqual(t, got.Confidence, 100)
		assert.False(t, got.Total.IsNegative())
		assert.NotEmpty(t, got.Merchant)
		assert.NotEmpty(t, got.Date)
		for _, item := range got.LineItems {
			assert.True(t, item.Amount.IsPositive(), "input %q item %+v", in, item)
		}
	}
}
