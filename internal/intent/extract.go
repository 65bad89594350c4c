package intent

import (
	"regexp"
	"strings"

	"sshub/ledger-assist/internal/categorizer"
	"sshub/ledger-assist/internal/currencyutils"
	"sshub/ledger-assist/internal/dateutils"

	"github.com/shopspring/decimal"
)

var (
	markedAmountPattern = regexp.MustCompile(`(?i)(?:₹|\brs\.?)\s*(\d+(?:\.\d{2})?)`)
	bareAmountPattern   = regexp.MustCompile(`(\d+(?:\.\d{2})?)`)
	datePattern         = regexp.MustCompile(`(?i)(today|tomorrow|yesterday|\d{1,2}[-/]\d{1,2}(?:[-/]\d{4})?)`)

	descriptionPattern = regexp.MustCompile(`(?i)\b(?:for|on|at|from)\s+(.+?)(?:\s+(?:at|today|yesterday|on|₹|rs))?$`)
	spendingPattern    = regexp.MustCompile(`(?i)\b(?:spend|spent|spending|expenses?)\s+(?:(?:on|at)\s+)?(.+?)(?:\s+(?:this|last|for))?(?:\s+(?:month|week|year|today))?$`)
	goalNamePattern    = regexp.MustCompile(`(?i)\b(?:goal|target)\s+(?:(?:named?|called|for)\s+)?(.+?)\s+(?:of\s+|to\s+)?(?:₹|rs\.?)`)
	goalTailPattern    = regexp.MustCompile(`(?i)\b(?:goal|saving)\s+(.+?)$`)
	goalStatusPattern  = regexp.MustCompile(`(?i)\b(?:goal|saving|saved)(?:\s+(?:status|progress))?(?:\s+for)?(?:\s+(.+?))?$`)
	budgetPattern      = regexp.MustCompile(`(?i)\bbudget\s+for\s+(.+?)(?:\s+this\s+month)?$`)
	reportPattern      = regexp.MustCompile(`(?i)\b(?:report|analysis)(?:\s+(?:on|for|about))?\s+(.+)$`)
)

// Words that only scope a spending question in time.
var scopeWords = map[string]bool{
	"this": true, "last": true, "for": true,
	"month": true, "week": true, "year": true, "today": true,
}

// extractAmount returns the first amount with a currency marker, or else the
// first bare number.
func extractAmount(raw string) decimal.NullDecimal {
	for _, pattern := range []*regexp.Regexp{markedAmountPattern, bareAmountPattern} {
		for _, m := range pattern.FindAllStringSubmatch(raw, -1) {
			amount, err := currencyutils.ParseAmount(m[1])
			if err != nil {
				continue
			}
			return decimal.NewNullDecimal(amount)
		}
	}
	return decimal.NullDecimal{}
}

// extractDate resolves the first date-like word. Only "today" and
// "yesterday" produce a date; explicit dates such as 12/03 are recognised but
// left unresolved.
func extractDate(raw string, now dateutils.Clock) string {
	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	switch strings.ToLower(m[1]) {
	case "today":
		return dateutils.Today(now())
	case "yesterday":
		return dateutils.Yesterday(now())
	}
	return ""
}

func capture(pattern *regexp.Regexp, raw string) string {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractTransaction(raw string, p *Params) {
	var d TransactionDetail
	if description := capture(descriptionPattern, raw); description != "" {
		d.Description = description
		d.Category = categorizer.CategorizeDescription(description)
	}
	p.Detail = d
}

func extractSpending(raw string, p *Params) {
	category := capture(spendingPattern, raw)
	if onlyScopeWords(category) {
		category = ""
	}
	p.Detail = SpendingDetail{Category: category}
}

func onlyScopeWords(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if !scopeWords[w] {
			return false
		}
	}
	return true
}

func extractGoal(raw string, p *Params) {
	name := capture(goalNamePattern, raw)
	if name == "" {
		name = capture(goalTailPattern, raw)
	}
	p.Detail = GoalDetail{Name: name, Amount: p.Amount}
}

func extractGoalStatus(raw string, p *Params) {
	p.Detail = GoalStatusDetail{Name: capture(goalStatusPattern, raw)}
}

func extractBudget(raw string, p *Params) {
	p.Detail = BudgetDetail{Category: capture(budgetPattern, raw)}
}

func extractReport(raw string, p *Params) {
	topic := capture(reportPattern, raw)
	switch strings.ToLower(topic) {
	case "on", "for", "about":
		topic = ""
	}
	p.Detail = ReportDetail{Topic: topic}
}
