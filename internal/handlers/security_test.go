package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"hiregate/internal/auth"
	"hiregate/internal/config"
	"hiregate/internal/engine"
	"hiregate/internal/middleware"
	"hiregate/internal/models"
	"hiregate/internal/repository"
	"hiregate/internal/service"
	"hiregate/internal/testutil"
	"hiregate/internal/vault"
)

// TestSubmissionIsolation verifies that a reviewer's submission is tied to
// their own user id and never leaks into another reviewer's view
func TestSubmissionIsolation(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)

	reviewer1 := fixtures.User(engine.RoleHRManager)
	reviewer2 := fixtures.User(engine.RoleRecruiter)

	_, err := containers.DB.Exec(`
		INSERT INTO submissions (job_opening_id, user_id, submitted_at, decision, risk_level)
		VALUES ($1, $2, $3, 'approve', 'low')
	`, fixtures.Job.ID, reviewer1.ID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}

	// Reviewer 2 must not see reviewer 1's submission as their own
	var count int
	err = containers.DB.QueryRow(`
		SELECT COUNT(*) FROM submissions
		WHERE job_opening_id = $1 AND user_id = $2
	`, fixtures.Job.ID, reviewer2.ID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query submissions: %v", err)
	}

	if count != 0 {
		t.Errorf("❌ SECURITY VIOLATION: Reviewer 2 should have no submission, but found %d", count)
	} else {
		t.Log("✅ PASS: Submission isolation verified - submissions belong to the submitting reviewer only")
	}

	// Reviewer 1 can see their own submission
	err = containers.DB.QueryRow(`
		SELECT COUNT(*) FROM submissions
		WHERE job_opening_id = $1 AND user_id = $2
	`, fixtures.Job.ID, reviewer1.ID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query submissions: %v", err)
	}

	if count != 1 {
		t.Errorf("❌ Reviewer 1 should see their own submission, but found %d", count)
	} else {
		t.Log("✅ PASS: Reviewer can see their own submission")
	}
}

// TestUnassignedReviewerCannotSubmit verifies that submitting against a job
// opening the reviewer was never assigned to is rejected
func TestUnassignedReviewerCannotSubmit(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)

	// A second job opening with no reviewer assignments
	var jobID uint
	err := containers.DB.QueryRow(`
		INSERT INTO job_openings (title, department, status, created_by, created_at, updated_at)
		VALUES ('Unassigned Opening', 'Engineering', 'active', $1, $2, $2)
		RETURNING id
	`, fixtures.User(engine.RoleFounder).ID, time.Now()).Scan(&jobID)
	if err != nil {
		t.Fatalf("Failed to create job opening: %v", err)
	}

	submissionRepo := repository.NewSubmissionRepository(containers.DB)
	assignmentRepo := repository.NewAssignmentRepository(containers.DB)
	jobRepo := repository.NewJobRepository(containers.DB)
	svc := service.NewSubmissionService(submissionRepo, assignmentRepo, jobRepo, nil)

	reviewer := fixtures.User(engine.RoleCTO)
	req := &models.SubmissionRequest{
		Decision: engine.DecisionApprove,
		Answers: engine.Answers{
			SkillAvailability:    gradePtr(engine.GradeHigh),
			ExecutionFeasibility: intPtr(8),
			TeamDependency:       intPtr(2),
			TimelineRisk:         gradePtr(engine.GradeLow),
			MentorAvailable:      boolPtr(true),
		},
	}

	_, err = svc.Submit(context.Background(), reviewer, jobID, req)
	if err != service.ErrNotAssigned {
		t.Errorf("❌ Expected ErrNotAssigned for unassigned reviewer, got %v", err)
	} else {
		t.Log("✅ PASS: Unassigned reviewers cannot submit assessments")
	}
}

// TestDeclineReasonEncryptedAtRest verifies that decline reasons are stored
// as Vault transit ciphertext and decrypted only when read through the
// service layer
func TestDeclineReasonEncryptedAtRest(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)

	vaultClient, err := vault.NewClient(&vault.Config{
		Address:      containers.VaultAddr,
		Token:        containers.VaultToken,
		TransitMount: "transit",
		KeyName:      "decline-reasons",
	})
	if err != nil {
		t.Fatalf("Failed to create vault client: %v", err)
	}

	submissionRepo := repository.NewSubmissionRepository(containers.DB)
	assignmentRepo := repository.NewAssignmentRepository(containers.DB)
	jobRepo := repository.NewJobRepository(containers.DB)
	svc := service.NewSubmissionService(submissionRepo, assignmentRepo, jobRepo, vaultClient)

	cfo := fixtures.User(engine.RoleCFO)
	plaintext := "Runway does not cover this hire before the next funding round"
	req := &models.SubmissionRequest{
		Decision:        engine.DecisionDecline,
		DeclineReason:   plaintext,
		DeclineCategory: engine.CategoryBudgetConstraint,
		Answers: engine.Answers{
			SkillAvailability:    gradePtr(engine.GradeMedium),
			ExecutionFeasibility: intPtr(5),
			TeamDependency:       intPtr(6),
			TimelineRisk:         gradePtr(engine.GradeMedium),
			MentorAvailable:      boolPtr(false),
			ROIAnalysis:          intPtr(3),
			CashFlowImpact:       intPtr(8),
			BudgetAlignment:      boolPtr(false),
			FundingSource:        fundingPtr(engine.FundingContingency),
		},
	}

	sub, err := svc.Submit(context.Background(), cfo, fixtures.Job.ID, req)
	if err != nil {
		t.Fatalf("Failed to submit assessment: %v", err)
	}

	// The raw column must hold ciphertext, never the plaintext reason
	var stored string
	err = containers.DB.QueryRow(`
		SELECT decline_reason FROM submissions WHERE id = $1
	`, sub.ID).Scan(&stored)
	if err != nil {
		t.Fatalf("Failed to read stored decline reason: %v", err)
	}

	if stored == plaintext {
		t.Error("❌ SECURITY VIOLATION: Decline reason stored in plaintext")
	} else if !strings.HasPrefix(stored, "vault:v") {
		t.Errorf("❌ Expected Vault transit ciphertext, got %q", stored)
	} else {
		t.Log("✅ PASS: Decline reason stored as ciphertext at rest")
	}

	// Reading through the service decrypts transparently
	got, err := svc.Get(context.Background(), fixtures.Job.ID, cfo.ID)
	if err != nil {
		t.Fatalf("Failed to get submission: %v", err)
	}
	if got.DeclineReason != plaintext {
		t.Errorf("Expected decrypted reason %q, got %q", plaintext, got.DeclineReason)
	}
}

// TestDecisionRestrictedToFounders verifies the aggregate recommendation
// route only admits founders and co-founders
func TestDecisionRestrictedToFounders(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	authHelper := testutil.NewAuthHelper()

	authService := auth.NewService(&config.JWTConfig{
		Secret:     string(authHelper.JWTSecret),
		Expiration: time.Hour,
	})
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware(repository.NewUserRepository(containers.DB))

	handler := authMw.Authenticate(rbacMw.RequireFounder(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	))

	cases := []struct {
		role     engine.Role
		expected int
	}{
		{engine.RoleFounder, http.StatusOK},
		{engine.RoleCoFounder, http.StatusOK},
		{engine.RoleCEO, http.StatusForbidden},
		{engine.RoleRecruiter, http.StatusForbidden},
		{engine.RoleHRManager, http.StatusForbidden},
	}

	for _, tc := range cases {
		req := authHelper.CreateAuthenticatedRequest(t, http.MethodGet, "/api/v1/jobs/1/decision", fixtures.User(tc.role))
		resp := testutil.NewTestResponse()
		handler.ServeHTTP(resp, req)
		if resp.Code != tc.expected {
			t.Errorf("❌ Role %s: expected status %d, got %d", tc.role, tc.expected, resp.Code)
		}
	}
	t.Log("✅ PASS: Aggregate recommendation is restricted to founders and co-founders")
}

// TestJobDetailRestrictedToAssignedReviewers verifies that the full job
// detail, which carries every reviewer's submission, is only visible to
// level 1 reviewers or reviewers assigned to the opening
func TestJobDetailRestrictedToAssignedReviewers(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)

	// A job opening the fixture reviewers are not assigned to
	var jobID uint
	err := containers.DB.QueryRow(`
		INSERT INTO job_openings (title, department, status, created_by, created_at, updated_at)
		VALUES ('Restricted Opening', 'Engineering', 'active', $1, $2, $2)
		RETURNING id
	`, fixtures.User(engine.RoleFounder).ID, time.Now()).Scan(&jobID)
	if err != nil {
		t.Fatalf("Failed to create job opening: %v", err)
	}

	submissionRepo := repository.NewSubmissionRepository(containers.DB)
	assignmentRepo := repository.NewAssignmentRepository(containers.DB)
	jobRepo := repository.NewJobRepository(containers.DB)
	userRepo := repository.NewUserRepository(containers.DB)
	submissionSvc := service.NewSubmissionService(submissionRepo, assignmentRepo, jobRepo, nil)
	jobSvc := service.NewJobService(jobRepo, assignmentRepo, submissionSvc, userRepo)

	ctx := context.Background()

	// Unassigned non-level-1 reviewers are rejected
	if _, err := jobSvc.GetDetail(ctx, fixtures.User(engine.RoleRecruiter), jobID); err != service.ErrNotAuthorized {
		t.Errorf("❌ SECURITY VIOLATION: Unassigned recruiter should be rejected, got %v", err)
	}
	if _, err := jobSvc.GetDetail(ctx, fixtures.User(engine.RoleCFO), jobID); err != service.ErrNotAuthorized {
		t.Errorf("❌ SECURITY VIOLATION: Unassigned cfo should be rejected, got %v", err)
	}

	// Level 1 sees every opening
	if _, err := jobSvc.GetDetail(ctx, fixtures.User(engine.RoleFounder), jobID); err != nil {
		t.Errorf("❌ Founder should see any job opening detail, got %v", err)
	}

	// Assigned reviewers see the openings they review
	if _, err := jobSvc.GetDetail(ctx, fixtures.User(engine.RoleRecruiter), fixtures.Job.ID); err != nil {
		t.Errorf("❌ Assigned recruiter should see the job opening detail, got %v", err)
	}

	t.Log("✅ PASS: Job detail is restricted to level 1 or assigned reviewers")
}

// TestSubmissionByIDVisibility verifies that a submission fetched by id is
// only visible to its author or a level 1 reviewer
func TestSubmissionByIDVisibility(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)

	submissionRepo := repository.NewSubmissionRepository(containers.DB)
	assignmentRepo := repository.NewAssignmentRepository(containers.DB)
	jobRepo := repository.NewJobRepository(containers.DB)
	svc := service.NewSubmissionService(submissionRepo, assignmentRepo, jobRepo, nil)

	hrManager := fixtures.User(engine.RoleHRManager)
	sub := &models.Submission{
		JobOpeningID: fixtures.Job.ID,
		UserID:       hrManager.ID,
		Answers: engine.Answers{
			TalentAvailability: gradePtr(engine.GradeMedium),
			CostValidation:     boolPtr(true),
			ProcessReadiness:   intPtr(7),
			OnboardingCapacity: boolPtr(true),
			MarketCompetition:  gradePtr(engine.GradeLow),
		},
		Decision:  engine.DecisionApprove,
		RiskLevel: engine.RiskLow,
	}
	if err := submissionRepo.Create(sub); err != nil {
		t.Fatalf("Failed to create submission: %v", err)
	}

	ctx := context.Background()

	// The author reads their own submission
	if _, err := svc.GetByID(ctx, hrManager, sub.ID); err != nil {
		t.Errorf("❌ Author should read their own submission, got %v", err)
	}

	// Level 1 reads anyone's submission
	if _, err := svc.GetByID(ctx, fixtures.User(engine.RoleCoFounder), sub.ID); err != nil {
		t.Errorf("❌ Co-founder should read any submission, got %v", err)
	}

	// Other reviewers are rejected
	if _, err := svc.GetByID(ctx, fixtures.User(engine.RoleRecruiter), sub.ID); err != service.ErrNotAuthorized {
		t.Errorf("❌ SECURITY VIOLATION: Recruiter should not read another reviewer's submission, got %v", err)
	}

	t.Log("✅ PASS: Submissions by id are visible to their author and level 1 only")
}

func intPtr(v int) *int                                       { return &v }
func boolPtr(v bool) *bool                                    { return &v }
func gradePtr(v engine.Grade) *engine.Grade                   { return &v }
func fundingPtr(v engine.FundingSource) *engine.FundingSource { return &v }
