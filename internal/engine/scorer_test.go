package engine

import (
	"errors"
	"testing"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func gradePtr(v Grade) *Grade { return &v }

func TestScoreEmptyAnswersIsLowRisk(t *testing.T) {
	for _, level := range []Level{Level1, Level2, Level3} {
		result, err := Score(level, Answers{}, DecisionApprove)
		if err != nil {
			t.Fatalf("Level %d: unexpected error: %v", level, err)
		}
		if result.Score != 0 {
			t.Errorf("Level %d: expected score 0, got %d", level, result.Score)
		}
		if result.Risk != RiskLow {
			t.Errorf("Level %d: expected low risk, got %s", level, result.Risk)
		}
		if result.Category != CategoryNone {
			t.Errorf("Level %d: expected no category, got %s", level, result.Category)
		}
		if result.Guidance != nil {
			t.Errorf("Level %d: expected no guidance on approve, got %v", level, result.Guidance)
		}
	}
}

func TestScoreLevel1BudgetNotApproved(t *testing.T) {
	answers := Answers{BudgetApproval: boolPtr(false)}

	result, err := Score(Level1, answers, DecisionDecline)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 3 {
		t.Errorf("Expected score 3, got %d", result.Score)
	}
	if result.Risk != RiskHigh {
		t.Errorf("Expected high risk, got %s", result.Risk)
	}
	if result.Category != CategoryBudgetConstraint {
		t.Errorf("Expected budget_constraint, got %s", result.Category)
	}
	if len(result.Guidance) == 0 {
		t.Error("Expected guidance for declined submission")
	}
}

func TestScoreLevel1StrategicPriorityHighReducesScore(t *testing.T) {
	answers := Answers{StrategicPriority: gradePtr(GradeHigh)}

	result, err := Score(Level1, answers, DecisionApprove)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != -1 {
		t.Errorf("Expected score -1, got %d", result.Score)
	}
	if result.Risk != RiskLow {
		t.Errorf("Expected low risk, got %s", result.Risk)
	}
}

func TestScoreLevel1AllRules(t *testing.T) {
	answers := Answers{
		BudgetApproval:    boolPtr(false),     // +3
		FinancialRisk:     intPtr(5),          // +2
		StrategicPriority: gradePtr(GradeLow), // +1
		BusinessAlignment: intPtr(1),          // +2
		LongTermImpact:    intPtr(2),          // +1
	}

	result, err := Score(Level1, answers, DecisionDecline)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 9 {
		t.Errorf("Expected score 9, got %d", result.Score)
	}
	// strategic_priority runs after budget_approval, so its suggestion wins
	if result.Category != CategoryBusinessMisalign {
		t.Errorf("Expected business_misalignment, got %s", result.Category)
	}
}

func TestScoreLevel2LastCategoryWins(t *testing.T) {
	answers := Answers{
		SkillAvailability: gradePtr(GradeLow),  // +2, skill_unavailability
		TimelineRisk:      gradePtr(GradeHigh), // +2, timeline_risk
		MentorAvailable:   boolPtr(false),      // +1
	}

	result, err := Score(Level2, answers, DecisionDecline)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 5 {
		t.Errorf("Expected score 5, got %d", result.Score)
	}
	if result.Risk != RiskHigh {
		t.Errorf("Expected high risk, got %s", result.Risk)
	}
	// timeline_risk is evaluated after skill_availability and overwrites it
	if result.Category != CategoryTimelineRisk {
		t.Errorf("Expected timeline_risk, got %s", result.Category)
	}
}

func TestScoreLevel2MediumGrades(t *testing.T) {
	answers := Answers{
		SkillAvailability: gradePtr(GradeMedium), // +1, no category
		TimelineRisk:      gradePtr(GradeMedium), // +1, no category
	}

	result, err := Score(Level2, answers, DecisionApprove)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 2 {
		t.Errorf("Expected score 2, got %d", result.Score)
	}
	if result.Risk != RiskMedium {
		t.Errorf("Expected medium risk, got %s", result.Risk)
	}
	if result.Category != CategoryNone {
		t.Errorf("Medium grades should not suggest a category, got %s", result.Category)
	}
}

func TestScoreLevel3CostNotValidated(t *testing.T) {
	answers := Answers{CostValidation: boolPtr(false)}

	result, err := Score(Level3, answers, DecisionDecline)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 2 {
		t.Errorf("Expected score 2, got %d", result.Score)
	}
	if result.Risk != RiskMedium {
		t.Errorf("Expected medium risk, got %s", result.Risk)
	}
	if result.Category != CategoryBudgetConstraint {
		t.Errorf("Expected budget_constraint, got %s", result.Category)
	}
}

func TestScoreLevel3CategoryOverwrite(t *testing.T) {
	answers := Answers{
		TalentAvailability: gradePtr(GradeLow), // +2, skill_unavailability
		CostValidation:     boolPtr(false),     // +2, budget_constraint
		ProcessReadiness:   intPtr(1),          // +1, operational_gap
	}

	result, err := Score(Level3, answers, DecisionDecline)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 5 {
		t.Errorf("Expected score 5, got %d", result.Score)
	}
	if result.Category != CategoryOperationalGap {
		t.Errorf("Expected operational_gap, got %s", result.Category)
	}
}

func TestScoreIgnoresOtherLevelFields(t *testing.T) {
	// A level 1 reviewer carrying level 2/3 answers must not be scored on them.
	answers := Answers{
		SkillAvailability:  gradePtr(GradeLow),
		CostValidation:     boolPtr(false),
		TalentAvailability: gradePtr(GradeLow),
	}

	result, err := Score(Level1, answers, DecisionApprove)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("Expected score 0, got %d", result.Score)
	}
}

func TestScoreMissingDecision(t *testing.T) {
	_, err := Score(Level1, Answers{}, "")
	if !errors.Is(err, ErrMissingDecision) {
		t.Errorf("Expected ErrMissingDecision, got %v", err)
	}

	_, err = Score(Level1, Answers{}, "maybe")
	if !errors.Is(err, ErrMissingDecision) {
		t.Errorf("Expected ErrMissingDecision for unknown decision, got %v", err)
	}
}

func TestScoreInvalidLevel(t *testing.T) {
	_, err := Score(Level(0), Answers{}, DecisionApprove)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Expected ErrInvalidLevel, got %v", err)
	}

	_, err = Score(Level(4), Answers{}, DecisionApprove)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Expected ErrInvalidLevel for level 4, got %v", err)
	}
}

func TestGuidanceLookupIsTotal(t *testing.T) {
	categories := []DeclineCategory{
		CategoryBudgetConstraint,
		CategorySkillUnavailability,
		CategoryTimelineRisk,
		CategoryTeamDependency,
		CategoryBusinessMisalign,
		CategoryOperationalGap,
	}

	for _, cat := range categories {
		suggestions := GuidanceFor(cat)
		if len(suggestions) == 0 {
			t.Errorf("Category %s should have at least one suggestion", cat)
		}
		for _, s := range suggestions {
			if s == "" {
				t.Errorf("Category %s has an empty suggestion", cat)
			}
		}
	}

	// Unset and unrecognized categories fall back to the generic suggestion
	for _, cat := range []DeclineCategory{CategoryNone, "not_a_category"} {
		suggestions := GuidanceFor(cat)
		if len(suggestions) != 1 {
			t.Errorf("Category %q: expected single generic suggestion, got %v", cat, suggestions)
		}
	}
}

func TestLevelForRole(t *testing.T) {
	cases := []struct {
		role  Role
		level Level
	}{
		{RoleFounder, Level1},
		{RoleCoFounder, Level1},
		{RoleCEO, Level2},
		{RoleCFO, Level2},
		{RoleCTO, Level2},
		{RoleCOO, Level2},
		{RoleProjectHead, Level2},
		{RoleHRManager, Level3},
		{RoleRecruiter, Level3},
		{RoleHRExecutive, Level3},
	}

	for _, c := range cases {
		level, err := LevelForRole(c.role)
		if err != nil {
			t.Fatalf("Role %s: unexpected error: %v", c.role, err)
		}
		if level != c.level {
			t.Errorf("Role %s: expected level %d, got %d", c.role, c.level, level)
		}
	}

	if _, err := LevelForRole("intern"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
}

func TestAnswersForLevelFiltersForeignFields(t *testing.T) {
	full := Answers{
		BudgetApproval:     boolPtr(true),
		SkillAvailability:  gradePtr(GradeLow),
		TalentAvailability: gradePtr(GradeHigh),
		ROIAnalysis:        intPtr(4),
	}

	l2 := full.ForLevel(Level2, false)
	if l2.BudgetApproval != nil || l2.TalentAvailability != nil || l2.ROIAnalysis != nil {
		t.Error("Level 2 filter should drop level 1, level 3 and CFO fields")
	}
	if l2.SkillAvailability == nil {
		t.Error("Level 2 filter should keep skill_availability")
	}

	cfo := full.ForLevel(Level2, true)
	if cfo.ROIAnalysis == nil {
		t.Error("CFO filter should keep financial extras")
	}
}

func TestAnswersValidate(t *testing.T) {
	if err := (Answers{}).Validate(); err != nil {
		t.Errorf("Empty answers should validate, got %v", err)
	}

	bad := Answers{BusinessAlignment: intPtr(6)}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("Expected ErrInvalidRating, got %v", err)
	}

	badGrade := Grade("extreme")
	if err := (Answers{TimelineRisk: &badGrade}).Validate(); !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("Expected ErrInvalidGrade, got %v", err)
	}

	badSource := FundingSource("loans")
	if err := (Answers{FundingSource: &badSource}).Validate(); !errors.Is(err, ErrInvalidFundingSource) {
		t.Errorf("Expected ErrInvalidFundingSource, got %v", err)
	}
}
