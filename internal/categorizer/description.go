package categorizer

import (
	"strings"

	"sshub/ledger-assist/internal/models"
	"sshub/ledger-assist/internal/textnorm"
)

type descriptionRule struct {
	category string
	keywords []string
}

// First matching row wins, so Food appears twice to keep groceries behind
// transport and entertainment.
var descriptionTable = []descriptionRule{
	{models.CategoryFood, []string{"coffee", "food", "lunch", "dinner", "breakfast", "restaurant", "cafe", "pizza", "burger", "subway"}},
	{models.CategoryTransport, []string{"uber", "taxi", "bus", "train", "gas", "petrol", "transport", "metro", "auto"}},
	{models.CategoryEntertainment, []string{"movie", "game", "entertainment", "show", "concert", "fun"}},
	{models.CategoryFood, []string{"grocery", "vegetables", "milk", "butter", "fruit"}},
	{models.CategoryUtilities, []string{"electricity", "water", "internet", "phone", "utility", "bill"}},
	{models.CategoryShopping, []string{"shopping", "clothes", "shoes", "dress", "mall", "store"}},
	{models.CategoryHealth, []string{"medicine", "doctor", "health", "hospital", "pharmacy", "clinic"}},
	{models.CategorySalary, []string{"salary", "paycheck", "wage", "income"}},
}

// CategorizeDescription assigns a single category to a short transaction
// description, falling back to Other.
func CategorizeDescription(description string) string {
	lower := textnorm.ForMatch(description)
	if lower == "" {
		return models.CategoryOther
	}
	for _, rule := range descriptionTable {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return models.CategoryOther
}
