package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scope separates data recorded before sign-in from data owned by a user.
type Scope string

const (
	ScopeGuest Scope = "guest"
	ScopeUser  Scope = "user"
)

// ParseScope validates a scope name.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeGuest:
		return ScopeGuest, nil
	case ScopeUser:
		return ScopeUser, nil
	default:
		return "", fmt.Errorf("unknown scope %q (expected guest or user)", s)
	}
}

// Transaction is an income or expense entry recorded from a command.
type Transaction struct {
	ID          string          `json:"id" yaml:"id" csv:"ID"`
	Type        string          `json:"type" yaml:"type" csv:"Type"` // expense or income
	Amount      decimal.Decimal `json:"amount" yaml:"amount" csv:"Amount"`
	Category    string          `json:"category" yaml:"category" csv:"Category"`
	Description string          `json:"description" yaml:"description" csv:"Description"`
	Date        string          `json:"date" yaml:"date" csv:"Date"`
	Recurring   bool            `json:"recurring" yaml:"recurring" csv:"Recurring"`
}

// Validate checks the fields every stored transaction needs.
func (t Transaction) Validate() error {
	if t.Type != TransactionTypeExpense && t.Type != TransactionTypeIncome {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date == "" {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}
