// Package intent classifies short free-form finance commands ("add ₹150 for
// coffee today") into a closed set of intents and extracts their parameters.
//
// Classification walks a fixed, ordered rule table; the first rule with a
// matching pattern wins, so declaration order is the only tie-breaker.
package intent

// Intent is the label assigned to a command.
type Intent string

const (
	AddExpense       Intent = "add_expense"
	AddIncome        Intent = "add_income"
	CheckSpending    Intent = "check_spending"
	CreateGoal       Intent = "create_goal"
	UpdateGoal       Intent = "update_goal"
	ShowReports      Intent = "show_reports"
	OpenReceipt      Intent = "open_receipt"
	RecurringExpense Intent = "recurring_expense"
	ShowBudget       Intent = "show_budget"
	GoalStatus       Intent = "goal_status"
	AskReport        Intent = "ask_report"
	Greeting         Intent = "greeting"
	Help             Intent = "help"
	Unknown          Intent = "unknown"
)

// MatchConfidence is reported for every matched intent.
const MatchConfidence = 0.85

// Result is the outcome of Detect. Params is nil exactly when Intent is
// Unknown.
type Result struct {
	Intent     Intent  `json:"intent" yaml:"intent"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Params     *Params `json:"params,omitempty" yaml:"params,omitempty"`
}

// IsUnknown reports whether no rule matched.
func (r Result) IsUnknown() bool {
	return r.Intent == Unknown
}

// Intents returns the matchable intents in priority order.
func Intents() []Intent {
	out := make([]Intent, len(rules))
	for i, r := range rules {
		out[i] = r.intent
	}
	return out
}
