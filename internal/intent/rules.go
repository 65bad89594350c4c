package intent

import (
	"regexp"
)

// Shared fragments of the trigger patterns.
const (
	currency = `(?:₹|rs|rs\.)`
	number   = `(\d+(?:\.\d{2})?)`
)

type extractor func(raw string, p *Params)

type rule struct {
	intent   Intent
	patterns []*regexp.Regexp
	extract  extractor
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// rules is matched against the lower-cased command. Order is priority: an
// input matching rules of two intents gets the earlier one.
var rules = []rule{
	{
		intent: AddExpense,
		patterns: compile(
			`add\s+`+currency+`\s*`+number+`\s+(?:for\s+)?(.+?)(?:\s+(?:today|yesterday|on|at|to))?`,
			`spent?\s+`+currency+`\s*`+number+`\s+(?:on|for)\s+(.+?)(?:\s+(?:today|yesterday|at))?`,
			currency+`\s*`+number+`\s+(?:on|for)\s+(.+?)(?:\s+(?:today|yesterday|at))?`,
		),
		extract: extractTransaction,
	},
	{
		intent: AddIncome,
		patterns: compile(
			`add\s+(?:income|salary|earnings?)\s+`+currency+`\s*`+number+`\s+(?:from\s+)?(.+?)`,
			`earned?\s+`+currency+`\s*`+number+`\s+(?:from|for)\s+(.+?)`,
		),
		extract: extractTransaction,
	},
	{
		intent: CheckSpending,
		patterns: compile(
			`how\s+much\s+(?:did\s+)?i\s+spend\s+(?:on|at)?\s*(.+?)(?:\s+(?:this|last))?\s*(month|week|today)`,
			`spending\s+on\s+(.+?)(?:\s+(?:this|last))?(?:\s+(?:month|week))?`,
			`total\s+(?:expenses?|spending)\s+on\s+(.+?)(?:\s+(?:this|last))?(?:\s+(?:month|week))?`,
		),
		extract: extractSpending,
	},
	{
		intent: CreateGoal,
		patterns: compile(
			`create\s+(?:a\s+)?(?:saving\s+)?goal\s+(?:named?|called?|for)?\s*(.+?)\s+(?:of\s+)?`+currency+`\s*`+number,
			`(?:new|set\s+a)\s+(?:saving\s+)?goal\s+(?:for\s+)?(.+?)\s+`+currency+`\s*`+number,
		),
		extract: extractGoal,
	},
	{
		intent: UpdateGoal,
		patterns: compile(
			`update\s+(?:my\s+)?goal\s+(.+?)\s+(?:to\s+)?`+currency+`\s*`+number,
			`(?:add|contribute)\s+`+currency+`\s*`+number+`\s+to\s+(?:goal|saving)\s+(.+?)`,
		),
		extract: extractGoal,
	},
	{
		intent: ShowReports,
		patterns: compile(
			`show\s+(?:me\s+)?(?:my\s+)?reports?`,
			`(?:analytics|analysis|expenses?\s+report|summary)`,
			`breakdown\s+of\s+(?:my\s+)?expenses?`,
		),
	},
	{
		intent: GoalStatus,
		patterns: compile(
			`(?:what\s+is\s+my|check\s+my|show\s+my)\s+(?:goal|saving)\s+(?:status|progress)?(?:\s+for\s+)?(.+?)?`,
			`(?:goal|saving)\s+(?:status|progress)\s+(?:for\s+)?(.+?)?`,
			`how\s+much\s+(?:have\s+)?i\s+saved\s+for\s+(.+?)?`,
		),
		extract: extractGoalStatus,
	},
	{
		intent: OpenReceipt,
		patterns: compile(
			`(?:upload|add|scan|show\s+me)\s+(?:my\s+)?(?:receipt|bill|invoice)`,
			`open\s+receipt\s+(?:uploader|upload)`,
		),
	},
	{
		intent: RecurringExpense,
		patterns: compile(
			`(?:set|add|create)\s+(?:a\s+)?recurring\s+(?:expense|payment)\s+`+currency+`?\s*`+number+`\s+(?:for|on)\s+(.+?)`,
		),
		extract: extractTransaction,
	},
	{
		intent: ShowBudget,
		patterns: compile(
			`(?:show|check)\s+(?:my\s+)?budget`,
			`budget\s+for\s+(.+?)(?:\s+this\s+month)?`,
		),
		extract: extractBudget,
	},
	{
		intent: AskReport,
		patterns: compile(
			`(?:generate|create|make)\s+(?:a\s+)?(?:custom\s+)?report`,
			`(?:give\s+me|show\s+me)\s+(?:a\s+)?(?:detailed\s+)?report(?:\s+on)?`,
			`(?:detailed\s+)?report(?:\s+for\s+)?(.+?)?`,
		),
		extract: extractReport,
	},
	{
		intent:   Greeting,
		patterns: compile(`^(?:hi|hello|hey|greetings|namaste)`),
	},
	{
		intent:   Help,
		patterns: compile(`(?:help|what\s+can\s+you\s+do|commands?|guide)`),
	},
}
