package intent

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultReportTopic labels a report request that names no topic.
const DefaultReportTopic = "general"

// Params holds what was extracted from a matched command. Amount and Date are
// looked for in every command; Detail carries the fields specific to the
// intent's family and is nil for intents that take no parameters.
// Empty strings and invalid NullDecimals mean "not extracted".
type Params struct {
	Amount decimal.NullDecimal
	Date   string // ISO date, only set for "today" and "yesterday"
	Detail Detail
}

// Detail is implemented by the per-intent parameter types below.
type Detail interface {
	detail()
}

// TransactionDetail is extracted for add_expense, add_income and
// recurring_expense.
type TransactionDetail struct {
	Description string
	Category    string
}

// SpendingDetail is extracted for check_spending.
type SpendingDetail struct {
	Category string
}

// GoalDetail is extracted for create_goal and update_goal.
type GoalDetail struct {
	Name   string
	Amount decimal.NullDecimal
}

// GoalStatusDetail is extracted for goal_status.
type GoalStatusDetail struct {
	Name string
}

// BudgetDetail is extracted for show_budget.
type BudgetDetail struct {
	Category string
}

// ReportDetail is extracted for ask_report.
type ReportDetail struct {
	Topic string
}

// TopicOrDefault returns the topic, or "general" when none was given.
func (d ReportDetail) TopicOrDefault() string {
	if d.Topic == "" {
		return DefaultReportTopic
	}
	return d.Topic
}

func (TransactionDetail) detail() {}
func (SpendingDetail) detail()    {}
func (GoalDetail) detail()        {}
func (GoalStatusDetail) detail()  {}
func (BudgetDetail) detail()      {}
func (ReportDetail) detail()      {}

// Category returns the category carried by the detail, if any.
func (p *Params) Category() string {
	if p == nil {
		return ""
	}
	switch d := p.Detail.(type) {
	case TransactionDetail:
		return d.Category
	case SpendingDetail:
		return d.Category
	case BudgetDetail:
		return d.Category
	}
	return ""
}

// Description returns the transaction description or report topic, if any.
func (p *Params) Description() string {
	if p == nil {
		return ""
	}
	switch d := p.Detail.(type) {
	case TransactionDetail:
		return d.Description
	case ReportDetail:
		return d.Topic
	}
	return ""
}

// flatParams is the wire shape of Params.
type flatParams struct {
	Amount      *decimal.Decimal `json:"amount,omitempty" yaml:"amount,omitempty"`
	Category    string           `json:"category,omitempty" yaml:"category,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string           `json:"date,omitempty" yaml:"date,omitempty"`
	GoalName    string           `json:"goalName,omitempty" yaml:"goalName,omitempty"`
	GoalAmount  *decimal.Decimal `json:"goalAmount,omitempty" yaml:"goalAmount,omitempty"`
}

func (p Params) flatten() flatParams {
	out := flatParams{
		Amount:      nullable(p.Amount),
		Date:        p.Date,
		Category:    p.Category(),
		Description: p.Description(),
	}
	switch d := p.Detail.(type) {
	case GoalDetail:
		out.GoalName = d.Name
		out.GoalAmount = nullable(d.Amount)
	case GoalStatusDetail:
		out.GoalName = d.Name
	}
	return out
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// MarshalJSON writes the parameters as one flat object, omitting fields that
// were not extracted.
func (p Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.flatten())
}

// MarshalYAML mirrors MarshalJSON.
func (p Params) MarshalYAML() (interface{}, error) {
	return p.flatten(), nil
}
