// Package categorizer maps merchants, keywords and free-form descriptions onto
// spending categories using fixed keyword tables.
package categorizer

import (
	"sort"
	"strings"

	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/textnorm"
)

// MaxSuggestions is the largest number of categories SuggestCategories returns.
const MaxSuggestions = 3

// FallbackCategory is suggested when nothing in the table matches.
const FallbackCategory = models.CategoryFood

// Category is one row of the suggestion table.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Declaration order breaks score ties.
var suggestionTable = []Category{
	{Name: models.CategoryFood, Keywords: []string{
		"food", "restaurant", "cafe", "coffee", "pizza", "burger", "subway",
		"starbucks", "groceries", "supermarket",
	}},
	{Name: models.CategoryTransport, Keywords: []string{"uber", "taxi", "gas", "petrol", "auto", "bus", "train", "metro"}},
	{Name: models.CategoryEntertainment, Keywords: []string{"movie", "theater", "game", "netflix", "spotify", "gaming"}},
	{Name: models.CategoryShopping, Keywords: []string{"mall", "store", "amazon", "flipkart", "shop", "retail"}},
	{Name: models.CategoryUtilities, Keywords: []string{"electric", "water", "internet", "phone", "bill"}},
	{Name: models.CategoryHealth, Keywords: []string{"medical", "doctor", "pharmacy", "hospital", "clinic", "health"}},
}

// Categories returns a copy of the suggestion table in declaration order.
func Categories() []Category {
	out := make([]Category, len(suggestionTable))
	for i, c := range suggestionTable {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

type scored struct {
	name  string
	score int
}

// SuggestCategories ranks categories for a merchant name and optional extra
// keywords (typically line item descriptions). A table keyword found in the
// merchant scores 2, one contained in any supplied keyword scores 1. The
// result holds one to three names, best first; ties keep table order.
func SuggestCategories(merchant string, keywords []string) []string {
	merchantLower := textnorm.ForMatch(merchant)
	keywordsLower := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = textnorm.ForMatch(k); k != "" {
			keywordsLower = append(keywordsLower, k)
		}
	}

	var matches []scored
	for _, category := range suggestionTable {
		score := 0
		for _, word := range category.Keywords {
			if strings.Contains(merchantLower, word) {
				score += 2
			}
			if containsAny(keywordsLower, word) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{name: category.Name, score: score})
		}
	}

	if len(matches) == 0 {
		return []string{FallbackCategory}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
