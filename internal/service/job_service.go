package service

import (
	"context"
	"errors"
	"fmt"

	"hiregate/internal/engine"
	"hiregate/internal/models"
	"hiregate/internal/repository"
)

var (
	ErrNotAuthorized     = errors.New("user is not authorized for this operation")
	ErrTitleRequired     = errors.New("job opening title is required")
	ErrInvalidTransition = errors.New("invalid job opening status transition")
)

// validTransitions lists the allowed job opening status transitions
var validTransitions = map[string][]string{
	models.JobStatusDraft:  {models.JobStatusActive, models.JobStatusCancelled},
	models.JobStatusActive: {models.JobStatusCompleted, models.JobStatusCancelled},
}

// JobService handles job opening business logic
type JobService struct {
	jobRepo        *repository.JobRepository
	assignmentRepo *repository.AssignmentRepository
	submissionSvc  *SubmissionService
	userRepo       *repository.UserRepository
}

// NewJobService creates a new job opening service
func NewJobService(
	jobRepo *repository.JobRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionSvc *SubmissionService,
	userRepo *repository.UserRepository,
) *JobService {
	return &JobService{
		jobRepo:        jobRepo,
		assignmentRepo: assignmentRepo,
		submissionSvc:  submissionSvc,
		userRepo:       userRepo,
	}
}

// Create proposes a new job opening. Only founders and co-founders may
// create job openings.
func (s *JobService) Create(creator *models.User, req *models.CreateJobOpeningRequest) (*models.JobOpening, error) {
	if !engine.CanCreateJobOpenings(creator.Role) {
		return nil, ErrNotAuthorized
	}

	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = "medium"
	}

	job := &models.JobOpening{
		Title:           req.Title,
		Department:      req.Department,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		ExperienceLevel: req.ExperienceLevel,
		BudgetRange:     req.BudgetRange,
		Urgency:         urgency,
		Status:          models.JobStatusActive,
		CreatedBy:       creator.ID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}

	return job, nil
}

// Get retrieves a job opening by ID
func (s *JobService) Get(id uint) (*models.JobOpening, error) {
	return s.jobRepo.GetByID(id)
}

// List retrieves job openings, optionally filtered by status
func (s *JobService) List(status string) ([]models.JobOpening, error) {
	if status != "" {
		return s.jobRepo.ListByStatus(status)
	}
	return s.jobRepo.List()
}

// AssignReviewers assigns reviewers to a job opening. Already-assigned
// reviewers are skipped silently.
func (s *JobService) AssignReviewers(actor *models.User, jobOpeningID uint, userIDs []uint) error {
	if !engine.CanCreateJobOpenings(actor.Role) {
		return ErrNotAuthorized
	}

	if _, err := s.jobRepo.GetByID(jobOpeningID); err != nil {
		return err
	}

	// Reject unknown or inactive reviewers before assigning anyone
	for _, userID := range userIDs {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			return fmt.Errorf("reviewer %d: %w", userID, err)
		}
		if !user.IsActive {
			return fmt.Errorf("reviewer %d: %w", userID, ErrUserInactive)
		}
	}

	return s.assignmentRepo.Assign(jobOpeningID, userIDs)
}

// UpdateStatus transitions a job opening between lifecycle states
func (s *JobService) UpdateStatus(actor *models.User, jobOpeningID uint, status string) error {
	if !engine.CanCreateJobOpenings(actor.Role) {
		return ErrNotAuthorized
	}

	job, err := s.jobRepo.GetByID(jobOpeningID)
	if err != nil {
		return err
	}

	allowed := false
	for _, next := range validTransitions[job.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, status)
	}

	return s.jobRepo.UpdateStatus(jobOpeningID, status)
}

// ListAssignments retrieves a reviewer's assignments
func (s *JobService) ListAssignments(userID uint) ([]models.ReviewAssignment, error) {
	return s.assignmentRepo.ListByUser(userID)
}

// GetDetail retrieves a job opening with assessment progress and
// submissions grouped by questionnaire level. Level 1 reviewers see every
// opening; everyone else only openings they are assigned to review, since
// the detail carries all reviewers' submissions including decline reasons.
func (s *JobService) GetDetail(ctx context.Context, viewer *models.User, jobOpeningID uint) (*models.JobOpeningDetail, error) {
	job, err := s.jobRepo.GetByID(jobOpeningID)
	if err != nil {
		return nil, err
	}

	if level, err := engine.LevelForRole(viewer.Role); err != nil || level != engine.Level1 {
		if _, err := s.assignmentRepo.Get(jobOpeningID, viewer.ID); err != nil {
			if errors.Is(err, repository.ErrAssignmentNotFound) {
				return nil, ErrNotAuthorized
			}
			return nil, err
		}
	}

	assignments, err := s.assignmentRepo.ListByJob(jobOpeningID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissionSvc.ListByJob(ctx, jobOpeningID)
	if err != nil {
		return nil, err
	}

	detail := &models.JobOpeningDetail{
		JobOpening:       *job,
		TotalAssignments: len(assignments),
	}

	for _, assignment := range assignments {
		if assignment.IsCompleted {
			detail.CompletedAssignments++
		}
	}
	if detail.TotalAssignments > 0 {
		detail.ProgressPercent = float64(detail.CompletedAssignments) / float64(detail.TotalAssignments) * 100
	}

	for _, sub := range submissions {
		switch sub.ReviewerLevel {
		case engine.Level1:
			detail.Level1Submissions = append(detail.Level1Submissions, sub)
		case engine.Level2:
			detail.Level2Submissions = append(detail.Level2Submissions, sub)
		case engine.Level3:
			detail.Level3Submissions = append(detail.Level3Submissions, sub)
		}
	}

	return detail, nil
}
