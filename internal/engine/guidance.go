package engine

// guidanceByCategory is the fixed remediation table. The texts are part of
// the product's policy wording and are shown verbatim to stakeholders.
var guidanceByCategory = map[DeclineCategory][]string{
	CategoryBudgetConstraint: {
		"Increase budget allocation",
		"Reduce role scope or responsibilities",
		"Consider contract or part-time hiring",
	},
	CategorySkillUnavailability: {
		"Revise skill requirements",
		"Provide training for existing team",
		"Consider outsourcing specific tasks",
	},
	CategoryTimelineRisk: {
		"Delay hiring timeline",
		"Hire contract resource for immediate needs",
		"Redistribute workload temporarily",
	},
	CategoryTeamDependency: {
		"Assign experienced mentor",
		"Restructure team responsibilities",
		"Provide cross-training",
	},
	CategoryBusinessMisalign: {
		"Re-evaluate business strategy",
		"Conduct market analysis",
		"Re-align role with business goals",
	},
	CategoryOperationalGap: {
		"Improve onboarding process",
		"Set up necessary infrastructure",
		"Define clear processes first",
	},
}

// genericGuidance is returned for an unset or unrecognized category.
var genericGuidance = []string{"Review specific concerns"}

// GuidanceFor returns the corrective guidance for a decline category. The
// lookup is total: every input yields at least one suggestion.
func GuidanceFor(category DeclineCategory) []string {
	suggestions, ok := guidanceByCategory[category]
	if !ok {
		suggestions = genericGuidance
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
