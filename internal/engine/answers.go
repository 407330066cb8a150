package engine

// Answers is a sparse questionnaire answer set. Every field is optional; an
// absent answer never contributes to the risk score. Fields belonging to a
// different level than the reviewer's are ignored by the rules, not rejected.
type Answers struct {
	// Level 1 (founder, co_founder)
	BusinessAlignment *int   `json:"business_alignment,omitempty" db:"business_alignment"`
	FinancialRisk     *int   `json:"financial_risk,omitempty" db:"financial_risk"`
	LongTermImpact    *int   `json:"long_term_impact,omitempty" db:"long_term_impact"`
	BudgetApproval    *bool  `json:"budget_approval,omitempty" db:"budget_approval"`
	StrategicPriority *Grade `json:"strategic_priority,omitempty" db:"strategic_priority"`

	// Level 2 (ceo, cfo, cto, coo, project_head)
	SkillAvailability    *Grade `json:"skill_availability,omitempty" db:"skill_availability"`
	ExecutionFeasibility *int   `json:"execution_feasibility,omitempty" db:"execution_feasibility"`
	TeamDependency       *int   `json:"team_dependency,omitempty" db:"team_dependency"`
	TimelineRisk         *Grade `json:"timeline_risk,omitempty" db:"timeline_risk"`
	MentorAvailable      *bool  `json:"mentor_available,omitempty" db:"mentor_available"`

	// Level 3 (hr_manager, recruiter, hr_executive)
	TalentAvailability *Grade `json:"talent_availability,omitempty" db:"talent_availability"`
	CostValidation     *bool  `json:"cost_validation,omitempty" db:"cost_validation"`
	ProcessReadiness   *int   `json:"process_readiness,omitempty" db:"process_readiness"`
	OnboardingCapacity *bool  `json:"onboarding_capacity,omitempty" db:"onboarding_capacity"`
	MarketCompetition  *Grade `json:"market_competition,omitempty" db:"market_competition"`

	// Financial assessment extras, answered only by the cfo role. They are
	// recorded but carry no rule weight.
	ROIAnalysis     *int           `json:"roi_analysis,omitempty" db:"roi_analysis"`
	CashFlowImpact  *int           `json:"cash_flow_impact,omitempty" db:"cash_flow_impact"`
	BudgetAlignment *bool          `json:"budget_alignment,omitempty" db:"budget_alignment"`
	FundingSource   *FundingSource `json:"funding_source,omitempty" db:"funding_source"`
}

// ForLevel returns a copy of a keeping only the fields that belong to the
// given level. Fields from other levels are dropped silently. The CFO
// financial extras are kept only when cfoExtras is set.
func (a Answers) ForLevel(level Level, cfoExtras bool) Answers {
	var out Answers
	switch level {
	case Level1:
		out.BusinessAlignment = a.BusinessAlignment
		out.FinancialRisk = a.FinancialRisk
		out.LongTermImpact = a.LongTermImpact
		out.BudgetApproval = a.BudgetApproval
		out.StrategicPriority = a.StrategicPriority
	case Level2:
		out.SkillAvailability = a.SkillAvailability
		out.ExecutionFeasibility = a.ExecutionFeasibility
		out.TeamDependency = a.TeamDependency
		out.TimelineRisk = a.TimelineRisk
		out.MentorAvailable = a.MentorAvailable
	case Level3:
		out.TalentAvailability = a.TalentAvailability
		out.CostValidation = a.CostValidation
		out.ProcessReadiness = a.ProcessReadiness
		out.OnboardingCapacity = a.OnboardingCapacity
		out.MarketCompetition = a.MarketCompetition
	}
	if cfoExtras {
		out.ROIAnalysis = a.ROIAnalysis
		out.CashFlowImpact = a.CashFlowImpact
		out.BudgetAlignment = a.BudgetAlignment
		out.FundingSource = a.FundingSource
	}
	return out
}

// Validate checks answer value ranges: 1-5 for integer scales, recognized
// values for grades and the funding source. Absent fields are always valid.
func (a Answers) Validate() error {
	for _, rating := range []*int{
		a.BusinessAlignment, a.FinancialRisk, a.LongTermImpact,
		a.ExecutionFeasibility, a.TeamDependency, a.ProcessReadiness,
		a.ROIAnalysis, a.CashFlowImpact,
	} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return ErrInvalidRating
		}
	}
	for _, grade := range []*Grade{
		a.StrategicPriority, a.SkillAvailability, a.TimelineRisk,
		a.TalentAvailability, a.MarketCompetition,
	} {
		if grade != nil && !ValidGrade(*grade) {
			return ErrInvalidGrade
		}
	}
	if a.FundingSource != nil && !ValidFundingSource(*a.FundingSource) {
		return ErrInvalidFundingSource
	}
	return nil
}
