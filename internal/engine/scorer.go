// Package engine implements the hiring diagnostic decision engine: per
// submission risk scoring from questionnaire answers, decline guidance
// lookup, and the aggregation of all submissions for one job opening into an
// organization-wide recommendation.
//
// The engine is pure: it holds no state, performs no I/O and may be called
// concurrently.
package engine

import "fmt"

// Result is the outcome of scoring one reviewer's submission.
type Result struct {
	Score    int             `json:"score"`
	Risk     RiskLevel       `json:"risk_level"`
	Category DeclineCategory `json:"decline_category,omitempty"`
	Guidance []string        `json:"corrective_guidance,omitempty"`
}

// Score runs the fixed rule set for the given level over the answers and
// returns the risk classification. The suggested decline category comes from
// the last rule that fired with a suggestion. Guidance is populated only when
// the reviewer declined.
//
// Answers belonging to other levels are simply not inspected by the rules, so
// passing an unfiltered answer set is harmless.
func Score(level Level, answers Answers, decision Decision) (Result, error) {
	if !ValidDecision(decision) {
		return Result{}, fmt.Errorf("%w: %q", ErrMissingDecision, decision)
	}

	rules, ok := levelRules[level]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	var (
		score    int
		category DeclineCategory
	)
	for _, r := range rules {
		delta, suggested := r.eval(answers)
		score += delta
		if suggested != CategoryNone {
			category = suggested
		}
	}

	result := Result{
		Score:    score,
		Risk:     riskForScore(score),
		Category: category,
	}
	if decision == DecisionDecline {
		result.Guidance = GuidanceFor(category)
	}
	return result, nil
}
