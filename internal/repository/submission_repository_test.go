package repository_test

import (
	"errors"
	"testing"

	"hiregate/internal/engine"
	"hiregate/internal/models"
	"hiregate/internal/repository"
	"hiregate/internal/testutil"
)

func intPtr(v int) *int                               { return &v }
func boolPtr(v bool) *bool                            { return &v }
func gradePtr(v engine.Grade) *engine.Grade           { return &v }
func fundingPtr(v engine.FundingSource) *engine.FundingSource { return &v }

func TestSubmissionCreateAndGet(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	repo := repository.NewSubmissionRepository(containers.DB)

	founder := fixtures.User(engine.RoleFounder)

	sub := &models.Submission{
		JobOpeningID: fixtures.Job.ID,
		UserID:       founder.ID,
		Answers: engine.Answers{
			BusinessAlignment: intPtr(8),
			FinancialRisk:     intPtr(3),
			LongTermImpact:    intPtr(7),
			BudgetApproval:    boolPtr(true),
			StrategicPriority: gradePtr(engine.GradeHigh),
		},
		Decision:  engine.DecisionApprove,
		RiskScore: 1,
		RiskLevel: engine.RiskLow,
	}

	if err := repo.Create(sub); err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}
	if sub.ID == 0 {
		t.Error("Expected submission ID to be set after create")
	}
	if sub.SubmittedAt.IsZero() {
		t.Error("Expected SubmittedAt to be set after create")
	}

	got, err := repo.GetByJobAndUser(fixtures.Job.ID, founder.ID)
	if err != nil {
		t.Fatalf("Failed to get submission: %v", err)
	}

	if got.Decision != engine.DecisionApprove {
		t.Errorf("Expected decision %q, got %q", engine.DecisionApprove, got.Decision)
	}
	if got.RiskLevel != engine.RiskLow {
		t.Errorf("Expected risk level %q, got %q", engine.RiskLow, got.RiskLevel)
	}
	if got.Answers.BusinessAlignment == nil || *got.Answers.BusinessAlignment != 8 {
		t.Errorf("Expected business_alignment 8, got %v", got.Answers.BusinessAlignment)
	}
	if got.Answers.StrategicPriority == nil || *got.Answers.StrategicPriority != engine.GradeHigh {
		t.Errorf("Expected strategic_priority %q, got %v", engine.GradeHigh, got.Answers.StrategicPriority)
	}
	if got.Answers.BudgetApproval == nil || !*got.Answers.BudgetApproval {
		t.Errorf("Expected budget_approval true, got %v", got.Answers.BudgetApproval)
	}

	// Columns for the other questionnaire levels stay NULL
	if got.Answers.SkillAvailability != nil {
		t.Errorf("Expected skill_availability to be nil, got %v", *got.Answers.SkillAvailability)
	}
	if got.Answers.ROIAnalysis != nil {
		t.Errorf("Expected roi_analysis to be nil, got %v", *got.Answers.ROIAnalysis)
	}
}

func TestSubmissionDuplicateRejected(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	repo := repository.NewSubmissionRepository(containers.DB)

	recruiter := fixtures.User(engine.RoleRecruiter)

	sub := &models.Submission{
		JobOpeningID: fixtures.Job.ID,
		UserID:       recruiter.ID,
		Answers: engine.Answers{
			TalentAvailability: gradePtr(engine.GradeMedium),
			CostValidation:     boolPtr(true),
			ProcessReadiness:   intPtr(6),
			OnboardingCapacity: boolPtr(true),
			MarketCompetition:  gradePtr(engine.GradeLow),
		},
		Decision:  engine.DecisionApprove,
		RiskScore: 0,
		RiskLevel: engine.RiskLow,
	}

	if err := repo.Create(sub); err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}

	dup := &models.Submission{
		JobOpeningID: fixtures.Job.ID,
		UserID:       recruiter.ID,
		Decision:     engine.DecisionDecline,
		RiskLevel:    engine.RiskHigh,
	}
	err := repo.Create(dup)
	if !errors.Is(err, repository.ErrAlreadySubmitted) {
		t.Errorf("Expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestSubmissionGetNotFound(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	repo := repository.NewSubmissionRepository(containers.DB)

	_, err := repo.GetByJobAndUser(fixtures.Job.ID, fixtures.User(engine.RoleCTO).ID)
	if !errors.Is(err, repository.ErrSubmissionNotFound) {
		t.Errorf("Expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestSubmissionListByJob(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	repo := repository.NewSubmissionRepository(containers.DB)

	founder := fixtures.User(engine.RoleFounder)
	cfo := fixtures.User(engine.RoleCFO)

	founderSub := &models.Submission{
		JobOpeningID: fixtures.Job.ID,
		UserID:       founder.ID,
		Answers: engine.Answers{
			BusinessAlignment: intPtr(9),
			FinancialRisk:     intPtr(2),
			LongTermImpact:    intPtr(8),
			BudgetApproval:    boolPtr(true),
			StrategicPriority: gradePtr(engine.GradeHigh),
		},
		Decision:  engine.DecisionApprove,
		RiskLevel: engine.RiskLow,
	}
	if err := repo.Create(founderSub); err != nil {
		t.Fatalf("Failed to create founder submission: %v", err)
	}

	cfoSub := &models.Submission{
		JobOpeningID: fixtures.Job.ID,
		UserID:       cfo.ID,
		Answers: engine.Answers{
			SkillAvailability:    gradePtr(engine.GradeLow),
			ExecutionFeasibility: intPtr(4),
			TeamDependency:       intPtr(8),
			TimelineRisk:         gradePtr(engine.GradeHigh),
			MentorAvailable:      boolPtr(false),
			ROIAnalysis:          intPtr(3),
			CashFlowImpact:       intPtr(7),
			BudgetAlignment:      boolPtr(false),
			FundingSource:        fundingPtr(engine.FundingContingency),
		},
		Decision:        engine.DecisionDecline,
		DeclineReason:   "Cash flow cannot absorb the hire this quarter",
		DeclineCategory: engine.CategoryBudgetConstraint,
		RiskScore:       7,
		RiskLevel:       engine.RiskHigh,
	}
	if err := repo.Create(cfoSub); err != nil {
		t.Fatalf("Failed to create cfo submission: %v", err)
	}

	subs, err := repo.ListByJob(fixtures.Job.ID)
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(subs))
	}

	byRole := make(map[engine.Role]models.SubmissionWithReviewer)
	for _, s := range subs {
		byRole[s.ReviewerRole] = s
	}

	founderView, ok := byRole[engine.RoleFounder]
	if !ok {
		t.Fatal("Expected a submission from the founder")
	}
	if founderView.ReviewerLevel != engine.Level1 {
		t.Errorf("Expected founder at level %d, got %d", engine.Level1, founderView.ReviewerLevel)
	}
	if founderView.ReviewerName != founder.FirstName+" "+founder.LastName {
		t.Errorf("Unexpected reviewer name %q", founderView.ReviewerName)
	}

	cfoView, ok := byRole[engine.RoleCFO]
	if !ok {
		t.Fatal("Expected a submission from the cfo")
	}
	if cfoView.ReviewerLevel != engine.Level2 {
		t.Errorf("Expected cfo at level %d, got %d", engine.Level2, cfoView.ReviewerLevel)
	}
	if cfoView.DeclineCategory != engine.CategoryBudgetConstraint {
		t.Errorf("Expected decline category %q, got %q", engine.CategoryBudgetConstraint, cfoView.DeclineCategory)
	}
	if cfoView.Answers.FundingSource == nil || *cfoView.Answers.FundingSource != engine.FundingContingency {
		t.Errorf("Expected funding source %q, got %v", engine.FundingContingency, cfoView.Answers.FundingSource)
	}

	count, err := repo.CountByJob(fixtures.Job.ID)
	if err != nil {
		t.Fatalf("Failed to count submissions: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}
