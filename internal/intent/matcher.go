package intent

import (
	"sshub/ledger-assist/internal/dateutils"
	"sshub/ledger-assist/internal/textnorm"
)

// Matcher detects intents. It is safe for concurrent use.
type Matcher struct {
	clock dateutils.Clock
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithClock sets the clock used to resolve "today" and "yesterday".
func WithClock(clock dateutils.Clock) Option {
	return func(m *Matcher) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// NewMatcher creates a Matcher using the system clock unless overridden.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{clock: dateutils.SystemClock}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMatcher = NewMatcher()

// Detect classifies input with the system clock.
func Detect(input string) Result {
	return defaultMatcher.Detect(input)
}

// Detect classifies input. Matching runs on the trimmed, lower-cased text;
// parameters are extracted from the original casing.
func (m *Matcher) Detect(input string) Result {
	normalized := textnorm.ForMatch(input)
	if normalized == "" {
		return Result{Intent: Unknown}
	}
	raw := textnorm.Clean(input)

	for _, r := range rules {
		for _, pattern := range r.patterns {
			if !pattern.MatchString(normalized) {
				continue
			}
			params := &Params{
				Amount: extractAmount(raw),
				Date:   extractDate(raw, m.clock),
			}
			if r.extract != nil {
				r.extract(raw, params)
			}
			return Result{Intent: r.intent, Confidence: MatchConfidence, Params: params}
		}
	}
	return Result{Intent: Unknown}
}
