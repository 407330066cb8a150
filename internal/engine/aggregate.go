package engine

import "strings"

// Assessment is the slice of a submission the aggregate engine needs: who
// reviewed (by role), how risky their submission scored, and their decision.
type Assessment struct {
	Role     Role
	Risk     RiskLevel
	Decision Decision
	Category DeclineCategory
}

// Recommendation is the final hiring recommendation shown to stakeholders.
type Recommendation struct {
	Decision   string      `json:"decision"`
	Risk       OverallRisk `json:"risk"`
	Conditions string      `json:"conditions"`
}

// Outcome is the aggregate result for one job opening.
type Outcome struct {
	OverallRisk    OverallRisk    `json:"overall_risk"`
	Recommendation Recommendation `json:"recommendation"`
}

// Aggregate computes the organization-wide risk and recommendation from the
// current set of submissions for one job opening. It is a pure function of
// its input: safe on a partial set, recomputed on demand, never cached.
func Aggregate(assessments []Assessment) Outcome {
	risk := overallRisk(assessments)
	return Outcome{
		OverallRisk:    risk,
		Recommendation: recommend(risk, assessments),
	}
}

// overallRisk applies the escalation rules in strict priority order. The
// first matching rule decides.
func overallRisk(assessments []Assessment) OverallRisk {
	if len(assessments) == 0 {
		return OverallUnknown
	}

	declines := 0
	anyElevated := false
	for _, a := range assessments {
		if EscalationRole(a.Role) && a.Risk == RiskHigh {
			return OverallHigh
		}
		if a.Decision == DecisionDecline {
			declines++
		}
		if a.Risk == RiskMedium || a.Risk == RiskHigh {
			anyElevated = true
		}
	}

	// Declines reaching half the submissions already count as a majority.
	if declines*2 >= len(assessments) {
		return OverallHigh
	}
	if anyElevated {
		return OverallMedium
	}
	return OverallLow
}

func recommend(risk OverallRisk, assessments []Assessment) Recommendation {
	switch risk {
	case OverallLow:
		return Recommendation{
			Decision:   "Proceed with hiring",
			Risk:       risk,
			Conditions: "No special conditions required",
		}
	case OverallMedium:
		return Recommendation{
			Decision:   "Proceed with conditions",
			Risk:       risk,
			Conditions: "Address medium risk areas before proceeding",
		}
	default:
		// High and unknown both withhold the hire. The conditions list the
		// distinct decline categories in first-seen order; with no declined
		// submissions it renders empty.
		return Recommendation{
			Decision:   "Delay or cancel hiring",
			Risk:       risk,
			Conditions: "Address critical issues: " + strings.Join(declineCategories(assessments), ", "),
		}
	}
}

// declineCategories collects the distinct decline categories among declined
// submissions, preserving first-seen order and skipping unset categories.
func declineCategories(assessments []Assessment) []string {
	seen := make(map[DeclineCategory]bool)
	var categories []string
	for _, a := range assessments {
		if a.Decision != DecisionDecline || a.Category == CategoryNone {
			continue
		}
		if !seen[a.Category] {
			seen[a.Category] = true
			categories = append(categories, string(a.Category))
		}
	}
	return categories
}
