package engine

import (
	"reflect"
	"strings"
	"testing"
)

func TestAggregateEmptySet(t *testing.T) {
	outcome := Aggregate(nil)

	if outcome.OverallRisk != OverallUnknown {
		t.Errorf("Expected unknown risk, got %s", outcome.OverallRisk)
	}
	if outcome.Recommendation.Decision != "Delay or cancel hiring" {
		t.Errorf("Unexpected decision: %s", outcome.Recommendation.Decision)
	}
}

func TestAggregateEscalationTierHighWins(t *testing.T) {
	assessments := []Assessment{
		{Role: RoleCFO, Risk: RiskHigh, Decision: DecisionApprove},
		{Role: RoleRecruiter, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleCTO, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleHRManager, Risk: RiskLow, Decision: DecisionApprove},
	}

	outcome := Aggregate(assessments)
	if outcome.OverallRisk != OverallHigh {
		t.Errorf("Expected high risk, got %s", outcome.OverallRisk)
	}
}

func TestAggregateNonEscalationHighIsNotAutomatic(t *testing.T) {
	// A high-risk submission from outside the escalation tier only reaches
	// the medium rule when declines stay below half.
	assessments := []Assessment{
		{Role: RoleCTO, Risk: RiskHigh, Decision: DecisionApprove},
		{Role: RoleRecruiter, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleHRManager, Risk: RiskLow, Decision: DecisionApprove},
	}

	outcome := Aggregate(assessments)
	if outcome.OverallRisk != OverallMedium {
		t.Errorf("Expected medium risk, got %s", outcome.OverallRisk)
	}
}

func TestAggregateDeclineMajority(t *testing.T) {
	// Exactly half declining already trips the majority rule.
	assessments := []Assessment{
		{Role: RoleCTO, Risk: RiskLow, Decision: DecisionDecline, Category: CategoryTimelineRisk},
		{Role: RoleRecruiter, Risk: RiskLow, Decision: DecisionDecline, Category: CategoryBudgetConstraint},
		{Role: RoleHRManager, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleCOO, Risk: RiskLow, Decision: DecisionApprove},
	}

	outcome := Aggregate(assessments)
	if outcome.OverallRisk != OverallHigh {
		t.Errorf("Expected high risk, got %s", outcome.OverallRisk)
	}

	conditions := outcome.Recommendation.Conditions
	if !strings.Contains(conditions, "timeline_risk") || !strings.Contains(conditions, "budget_constraint") {
		t.Errorf("Conditions should list decline categories, got %q", conditions)
	}
}

func TestAggregateConditionsDeduplicated(t *testing.T) {
	assessments := []Assessment{
		{Role: RoleCTO, Risk: RiskLow, Decision: DecisionDecline, Category: CategoryTimelineRisk},
		{Role: RoleCOO, Risk: RiskLow, Decision: DecisionDecline, Category: CategoryTimelineRisk},
	}

	outcome := Aggregate(assessments)
	if got, want := outcome.Recommendation.Conditions, "Address critical issues: timeline_risk"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAggregateHighWithoutDeclineCategories(t *testing.T) {
	// Declines without a category render an empty list, which is acceptable.
	assessments := []Assessment{
		{Role: RoleCTO, Risk: RiskLow, Decision: DecisionDecline},
		{Role: RoleCOO, Risk: RiskLow, Decision: DecisionApprove},
	}

	outcome := Aggregate(assessments)
	if outcome.OverallRisk != OverallHigh {
		t.Errorf("Expected high risk, got %s", outcome.OverallRisk)
	}
	if got, want := outcome.Recommendation.Conditions, "Address critical issues: "; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAggregateMediumPresent(t *testing.T) {
	assessments := []Assessment{
		{Role: RoleFounder, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleCTO, Risk: RiskMedium, Decision: DecisionApprove},
		{Role: RoleRecruiter, Risk: RiskLow, Decision: DecisionApprove},
	}

	outcome := Aggregate(assessments)
	if outcome.OverallRisk != OverallMedium {
		t.Errorf("Expected medium risk, got %s", outcome.OverallRisk)
	}
	if outcome.Recommendation.Decision != "Proceed with conditions" {
		t.Errorf("Unexpected decision: %s", outcome.Recommendation.Decision)
	}
}

func TestAggregateAllLowNoDeclines(t *testing.T) {
	assessments := []Assessment{
		{Role: RoleFounder, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleCTO, Risk: RiskLow, Decision: DecisionApprove},
		{Role: RoleRecruiter, Risk: RiskLow, Decision: DecisionApprove},
	}

	outcome := Aggregate(assessments)
	if outcome.OverallRisk != OverallLow {
		t.Errorf("Expected low risk, got %s", outcome.OverallRisk)
	}
	if outcome.Recommendation.Decision != "Proceed with hiring" {
		t.Errorf("Unexpected decision: %s", outcome.Recommendation.Decision)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	assessments := []Assessment{
		{Role: RoleFounder, Risk: RiskMedium, Decision: DecisionApprove},
		{Role: RoleCTO, Risk: RiskLow, Decision: DecisionDecline, Category: CategoryTeamDependency},
		{Role: RoleRecruiter, Risk: RiskLow, Decision: DecisionApprove},
	}

	first := Aggregate(assessments)
	second := Aggregate(assessments)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate should be deterministic: %+v vs %+v", first, second)
	}
}

func TestEscalationRoleSet(t *testing.T) {
	for _, role := range []Role{RoleFounder, RoleCoFounder, RoleCEO, RoleCFO} {
		if !EscalationRole(role) {
			t.Errorf("Role %s should be in the escalation tier", role)
		}
	}
	for _, role := range []Role{RoleCTO, RoleCOO, RoleProjectHead, RoleHRManager, RoleRecruiter, RoleHRExecutive} {
		if EscalationRole(role) {
			t.Errorf("Role %s should not be in the escalation tier", role)
		}
	}
}
