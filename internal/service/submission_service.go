package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hiregate/internal/engine"
	"hiregate/internal/models"
	"hiregate/internal/repository"
	"hiregate/internal/vault"
)

var (
	ErrNotAssigned  = errors.New("reviewer is not assigned to this job opening")
	ErrJobNotActive = errors.New("job opening is not accepting submissions")
)

// SubmissionService handles assessment submission business logic. The risk
// score, risk level and corrective guidance are computed exactly once, at
// submission time, and persisted with the submission.
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
	assignmentRepo *repository.AssignmentRepository
	jobRepo        *repository.JobRepository
	vaultClient    *vault.Client
}

// NewSubmissionService creates a new submission service. vaultClient may be
// nil, in which case decline reasons are stored in plaintext.
func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	jobRepo *repository.JobRepository,
	vaultClient *vault.Client,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		jobRepo:        jobRepo,
		vaultClient:    vaultClient,
	}
}

// Submit records a reviewer's one-time assessment of a job opening and runs
// the decision engine over it. A repeat submission returns
// repository.ErrAlreadySubmitted.
func (s *SubmissionService) Submit(ctx context.Context, reviewer *models.User, jobOpeningID uint, req *models.SubmissionRequest) (*models.Submission, error) {
	job, err := s.jobRepo.GetByID(jobOpeningID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, ErrJobNotActive
	}

	if _, err := s.assignmentRepo.Get(jobOpeningID, reviewer.ID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, ErrNotAssigned
		}
		return nil, err
	}

	level, err := engine.LevelForRole(reviewer.Role)
	if err != nil {
		return nil, err
	}

	if err := req.Answers.Validate(); err != nil {
		return nil, err
	}

	// Answers outside the reviewer's questionnaire level are dropped, not
	// rejected. The CFO financial assessment is only accepted from the cfo.
	answers := req.Answers.ForLevel(level, reviewer.Role == engine.RoleCFO)

	result, err := engine.Score(level, answers, req.Decision)
	if err != nil {
		return nil, err
	}

	// An explicitly chosen decline category takes precedence over the one
	// suggested by the rules
	category := result.Category
	if engine.ValidDeclineCategory(req.DeclineCategory) {
		category = req.DeclineCategory
	}

	var guidance string
	if req.Decision == engine.DecisionDecline {
		guidance = strings.Join(engine.GuidanceFor(category), "\n")
	}

	declineReason := req.DeclineReason
	if declineReason != "" && s.vaultClient != nil {
		encrypted, err := s.vaultClient.EncryptString(ctx, declineReason)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt decline reason: %w", err)
		}
		declineReason = encrypted
	}

	sub := &models.Submission{
		JobOpeningID:       jobOpeningID,
		UserID:             reviewer.ID,
		Answers:            answers,
		Decision:           req.Decision,
		DeclineReason:      declineReason,
		DeclineCategory:    category,
		RiskScore:          result.Score,
		RiskLevel:          result.Risk,
		CorrectiveGuidance: guidance,
	}

	if err := s.submissionRepo.Create(sub); err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.MarkCompleted(jobOpeningID, reviewer.ID); err != nil {
		slog.Error("Failed to mark assignment completed",
			"job_opening_id", jobOpeningID, "user_id", reviewer.ID, "error", err)
	}

	return sub, nil
}

// Get retrieves a reviewer's submission for a job opening with the decline
// reason decrypted
func (s *SubmissionService) Get(ctx context.Context, jobOpeningID, userID uint) (*models.Submission, error) {
	sub, err := s.submissionRepo.GetByJobAndUser(jobOpeningID, userID)
	if err != nil {
		return nil, err
	}

	sub.DeclineReason = s.decryptReason(ctx, sub.DeclineReason)
	return sub, nil
}

// GetByID retrieves a submission by id with the decline reason decrypted.
// Reviewers read their own submissions; level 1 reviewers read anyone's.
func (s *SubmissionService) GetByID(ctx context.Context, viewer *models.User, submissionID uint) (*models.Submission, error) {
	sub, err := s.submissionRepo.GetByID(submissionID)
	if err != nil {
		return nil, err
	}

	if sub.UserID != viewer.ID {
		level, err := engine.LevelForRole(viewer.Role)
		if err != nil || level != engine.Level1 {
			return nil, ErrNotAuthorized
		}
	}

	sub.DeclineReason = s.decryptReason(ctx, sub.DeclineReason)
	return sub, nil
}

// ListByJob retrieves all submissions for a job opening with decline
// reasons decrypted
func (s *SubmissionService) ListByJob(ctx context.Context, jobOpeningID uint) ([]models.SubmissionWithReviewer, error) {
	submissions, err := s.submissionRepo.ListByJob(jobOpeningID)
	if err != nil {
		return nil, err
	}

	for i := range submissions {
		submissions[i].DeclineReason = s.decryptReason(ctx, submissions[i].DeclineReason)
	}

	return submissions, nil
}

// decryptReason decrypts a stored decline reason if it is a Vault
// ciphertext. Decryption failures leave the ciphertext in place rather than
// failing the whole read.
func (s *SubmissionService) decryptReason(ctx context.Context, reason string) string {
	if s.vaultClient == nil || !vault.IsCiphertext(reason) {
		return reason
	}

	plaintext, err := s.vaultClient.DecryptString(ctx, reason)
	if err != nil {
		slog.Error("Failed to decrypt decline reason", "error", err)
		return reason
	}

	return plaintext
}
