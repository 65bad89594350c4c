package categorizer

import (
	"testing"

	"sshub/ledger-assist/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCategories(t *testing.T) {
	tests := []struct {
		name     string
		merchant string
		keywords []string
		expected []string
	}{
		{
			name:     "merchant match",
			merchant: "Starbucks Coffee",
			expected: []string{models.CategoryFood},
		},
		{
			name:     "case insensitive merchant",
			merchant: "UBER TRIP",
			expected: []string{models.CategoryTransport},
		},
		{
			name:     "no match falls back to food",
			merchant: "Acme Ltd",
			expected: []string{models.CategoryFood},
		},
		{
			name:     "empty input falls back to food",
			merchant: "",
			expected: []string{models.CategoryFood},
		},
		{
			name:     "keywords only",
			merchant: "Corner",
			keywords: []string{"Doctor visit"},
			expected: []string{models.CategoryHealth},
		},
		{
			name:     "merchant outranks keyword",
			merchant: "City Pharmacy",
			keywords: []string{"Bus ticket"},
			expected: []string{models.CategoryHealth, models.CategoryTransport},
		},
		{
			name:     "ties keep table order",
			merchant: "Movie Mall",
			expected: []string{models.CategoryEntertainment, models.CategoryShopping},
		},
		{
			name:     "at most three",
			merchant: "Uber Pizza Netflix Amazon Hospital",
			expected: []string{models.CategoryFood, models.CategoryTransport, models.CategoryEntertainment},
		},
		{
			name:     "multiple keyword hits add up",
			merchant: "Metro Bus Depot Mall",
			expected: []string{models.CategoryTransport, models.CategoryShopping},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestCategories(tt.merchant, tt.keywords))
		})
	}
}

func TestSuggestCategories_AlwaysWellFormed(t *testing.T) {
	inputs := []string{"", "x", "Starbucks", "uber pizza netflix amazon hospital water", "12345"}
	for _, in := range inputs {
		got := SuggestCategories(in, []string{in, "bill"})
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), MaxSuggestions)
		seen := map[string]bool{}
		for _, c := range got {
			assert.False(t, seen[c], "duplicate %s", c)
			seen[c] = true
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	table := Categories()
	assert.Len(t, table, 6)
	assert.Equal(t, models.CategoryFood, table[0].Name)

	table[0].Name = "Changed"
	table[0].Keywords[0] = "changed"
	fresh := Categories()
	assert.Equal(t, models.CategoryFood, fresh[0].Name)
	assert.Equal(t, "food", fresh[0].Keywords[0])
}

func TestCategorizeDescription(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"coffee", models.CategoryFood},
		{"Uber to airport", models.CategoryTransport},
		{"movie tickets", models.CategoryEntertainment},
		{"milk and bread", models.CategoryFood},
		{"electricity", models.CategoryUtilities},
		{"new shoes", models.CategoryShopping},
		{"pharmacy", models.CategoryHealth},
		{"monthly salary", models.CategorySalary},
		{"rent", models.CategoryOther},
		{"", models.CategoryOther},
		// "show" appears in the entertainment row before "shoes" in shopping
		{"shoes show", models.CategoryEntertainment},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategorizeDescription(tt.description))
		})
	}
}
