package engine

// rule is one weighted scoring rule. Its eval func inspects the answer set
// and returns a score delta plus an optional decline category suggestion
// (CategoryNone when the rule does not suggest one, or did not fire).
//
// Rules run in declaration order and a later category suggestion overwrites
// an earlier one. That last-writer-wins behavior is load-bearing: rule order
// encodes category priority, so never reorder a level's rules.
type rule struct {
	name string
	eval func(a Answers) (delta int, category DeclineCategory)
}

var levelRules = map[Level][]rule{
	Level1: {
		{name: "budget_approval", eval: func(a Answers) (int, DeclineCategory) {
			if a.BudgetApproval != nil && !*a.BudgetApproval {
				return 3, CategoryBudgetConstraint
			}
			return 0, CategoryNone
		}},
		{name: "financial_risk", eval: func(a Answers) (int, DeclineCategory) {
			if a.FinancialRisk != nil && *a.FinancialRisk >= 4 {
				return 2, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "strategic_priority", eval: func(a Answers) (int, DeclineCategory) {
			if a.StrategicPriority == nil {
				return 0, CategoryNone
			}
			switch *a.StrategicPriority {
			case GradeLow:
				return 1, CategoryBusinessMisalign
			case GradeHigh:
				return -1, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "business_alignment", eval: func(a Answers) (int, DeclineCategory) {
			if a.BusinessAlignment != nil && *a.BusinessAlignment <= 2 {
				return 2, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "long_term_impact", eval: func(a Answers) (int, DeclineCategory) {
			if a.LongTermImpact != nil && *a.LongTermImpact <= 2 {
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
	},
	Level2: {
		{name: "skill_availability", eval: func(a Answers) (int, DeclineCategory) {
			if a.SkillAvailability == nil {
				return 0, CategoryNone
			}
			switch *a.SkillAvailability {
			case GradeLow:
				return 2, CategorySkillUnavailability
			case GradeMedium:
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "timeline_risk", eval: func(a Answers) (int, DeclineCategory) {
			if a.TimelineRisk == nil {
				return 0, CategoryNone
			}
			switch *a.TimelineRisk {
			case GradeHigh:
				return 2, CategoryTimelineRisk
			case GradeMedium:
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "mentor_available", eval: func(a Answers) (int, DeclineCategory) {
			if a.MentorAvailable != nil && !*a.MentorAvailable {
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "team_dependency", eval: func(a Answers) (int, DeclineCategory) {
			if a.TeamDependency != nil && *a.TeamDependency >= 4 {
				return 1, CategoryTeamDependency
			}
			return 0, CategoryNone
		}},
		{name: "execution_feasibility", eval: func(a Answers) (int, DeclineCategory) {
			if a.ExecutionFeasibility != nil && *a.ExecutionFeasibility <= 2 {
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
	},
	Level3: {
		{name: "talent_availability", eval: func(a Answers) (int, DeclineCategory) {
			if a.TalentAvailability == nil {
				return 0, CategoryNone
			}
			switch *a.TalentAvailability {
			case GradeLow:
				return 2, CategorySkillUnavailability
			case GradeMedium:
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "cost_validation", eval: func(a Answers) (int, DeclineCategory) {
			if a.CostValidation != nil && !*a.CostValidation {
				return 2, CategoryBudgetConstraint
			}
			return 0, CategoryNone
		}},
		{name: "market_competition", eval: func(a Answers) (int, DeclineCategory) {
			if a.MarketCompetition != nil && *a.MarketCompetition == GradeHigh {
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
		{name: "process_readiness", eval: func(a Answers) (int, DeclineCategory) {
			if a.ProcessReadiness != nil && *a.ProcessReadiness <= 2 {
				return 1, CategoryOperationalGap
			}
			return 0, CategoryNone
		}},
		{name: "onboarding_capacity", eval: func(a Answers) (int, DeclineCategory) {
			if a.OnboardingCapacity != nil && !*a.OnboardingCapacity {
				return 1, CategoryNone
			}
			return 0, CategoryNone
		}},
	},
}

// riskForScore maps a numeric score to the three-tier risk level. The mapping
// is the same for every level.
func riskForScore(score int) RiskLevel {
	switch {
	case score >= 3:
		return RiskHigh
	case score >= 1:
		return RiskMedium
	default:
		return RiskLow
	}
}
