package intent

import (
	"sshub/ledger-assist/internal/models"
)

// Transaction builds the transaction a money-moving command asks to record.
// ok is false for other intents and for commands without a positive amount.
// Commands without a resolved date are recorded on today.
func (r Result) Transaction(today string) (tx models.Transaction, ok bool) {
	if r.Params == nil || !r.Params.Amount.Valid || !r.Params.Amount.Decimal.IsPositive() {
		return models.Transaction{}, false
	}

	switch r.Intent {
	case AddExpense:
		tx.Type = models.TransactionTypeExpense
	case RecurringExpense:
		tx.Type = models.TransactionTypeExpense
		tx.Recurring = true
	case AddIncome:
		tx.Type = models.TransactionTypeIncome
	default:
		return models.Transaction{}, false
	}

	tx.Amount = r.Params.Amount.Decimal
	tx.Description = r.Params.Description()
	tx.Category = r.Params.Category()
	if tx.Category == "" {
		tx.Category = models.CategoryOther
	}
	tx.Date = r.Params.Date
	if tx.Date == "" {
		tx.Date = today
	}
	return tx, true
}
