package engine

import "errors"

// Sentinel errors for the engine's named failure modes.
var (
	// ErrMissingDecision is a validation error: a submission arrived without
	// an approve/decline decision.
	ErrMissingDecision = errors.New("missing or invalid decision")
	// ErrInvalidLevel is a configuration error: the level is outside {1,2,3}.
	// It should be unreachable as long as levels come from LevelForRole.
	ErrInvalidLevel = errors.New("invalid reviewer level")
	// ErrUnknownRole is a configuration error: the role is not in the fixed
	// role table.
	ErrUnknownRole = errors.New("unknown organizational role")

	// Answer validation errors.
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidGrade         = errors.New("grade must be low, medium or high")
	ErrInvalidFundingSource = errors.New("unrecognized funding source")
)

// Decision is a reviewer's binary verdict on a job opening.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionDecline Decision = "decline"
)

// ValidDecision reports whether d is one of the two allowed decisions.
func ValidDecision(d Decision) bool {
	return d == DecisionApprove || d == DecisionDecline
}

// RiskLevel is the three-tier risk classification of a single submission.
// It is always derived from the score, never set directly.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// OverallRisk is the organization-wide risk for a job opening. Unlike
// RiskLevel it has an "unknown" state for openings without any submissions.
type OverallRisk string

const (
	OverallUnknown OverallRisk = "unknown"
	OverallLow     OverallRisk = "low"
	OverallMedium  OverallRisk = "medium"
	OverallHigh    OverallRisk = "high"
)

// Grade is a low/medium/high answer on the questionnaire.
type Grade string

const (
	GradeLow    Grade = "low"
	GradeMedium Grade = "medium"
	GradeHigh   Grade = "high"
)

// ValidGrade reports whether g is a recognized grade value.
func ValidGrade(g Grade) bool {
	return g == GradeLow || g == GradeMedium || g == GradeHigh
}

// FundingSource is the CFO-specific funding source answer.
type FundingSource string

const (
	FundingOperational FundingSource = "operational"
	FundingContingency FundingSource = "contingency"
	FundingNew         FundingSource = "new_funding"
	FundingCostCenter  FundingSource = "cost_center"
)

// ValidFundingSource reports whether f is a recognized funding source.
func ValidFundingSource(f FundingSource) bool {
	switch f {
	case FundingOperational, FundingContingency, FundingNew, FundingCostCenter:
		return true
	}
	return false
}

// DeclineCategory classifies why a reviewer declined a job opening.
type DeclineCategory string

const (
	CategoryNone                DeclineCategory = ""
	CategoryBudgetConstraint    DeclineCategory = "budget_constraint"
	CategorySkillUnavailability DeclineCategory = "skill_unavailability"
	CategoryTimelineRisk        DeclineCategory = "timeline_risk"
	CategoryTeamDependency      DeclineCategory = "team_dependency"
	CategoryBusinessMisalign    DeclineCategory = "business_misalignment"
	CategoryOperationalGap      DeclineCategory = "operational_gap"
)

// ValidDeclineCategory reports whether c names one of the six categories.
func ValidDeclineCategory(c DeclineCategory) bool {
	switch c {
	case CategoryBudgetConstraint, CategorySkillUnavailability, CategoryTimelineRisk,
		CategoryTeamDependency, CategoryBusinessMisalign, CategoryOperationalGap:
		return true
	}
	return false
}
