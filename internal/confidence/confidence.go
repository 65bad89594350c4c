// Package confidence implements the additive, capped scoring used to express
// how complete an extraction is.
//
// A score starts at Base, gains each present signal's weight and is clamped to
// [0, Max]. Negative weights are treated as zero, so adding a present signal
// can never lower the score.
package confidence

// Signal is one piece of evidence that was (or was not) found.
type Signal struct {
	Name    string
	Weight  int
	Present bool
}

// Scorer holds the base and ceiling of a score.
type Scorer struct {
	Base int
	Max  int
}

// Score sums the weights of the present signals on top of Base.
func (s Scorer) Score(signals ...Signal) int {
	score := s.Base
	for _, sig := range signals {
		if sig.Present && sig.Weight > 0 {
			score += sig.Weight
		}
	}
	if score > s.Max {
		score = s.Max
	}
	if score < 0 {
		score = 0
	}
	return score
}
