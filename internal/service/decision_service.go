package service

import (
	"hiregate/internal/engine"
	"hiregate/internal/models"
	"hiregate/internal/repository"
)

// DecisionService computes the aggregate hiring decision for a job opening.
// The aggregate is evaluated on demand from the stored submissions and is
// never persisted, so it always reflects the current submission set.
type DecisionService struct {
	jobRepo        *repository.JobRepository
	submissionRepo *repository.SubmissionRepository
}

// NewDecisionService creates a new decision service
func NewDecisionService(jobRepo *repository.JobRepository, submissionRepo *repository.SubmissionRepository) *DecisionService {
	return &DecisionService{
		jobRepo:        jobRepo,
		submissionRepo: submissionRepo,
	}
}

// Evaluate aggregates all submissions for a job opening into an overall
// risk and hiring recommendation
func (s *DecisionService) Evaluate(jobOpeningID uint) (*models.DecisionResult, error) {
	if _, err := s.jobRepo.GetByID(jobOpeningID); err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.ListByJob(jobOpeningID)
	if err != nil {
		return nil, err
	}

	assessments := make([]engine.Assessment, 0, len(submissions))
	for _, sub := range submissions {
		assessments = append(assessments, engine.Assessment{
			Role:     sub.ReviewerRole,
			Risk:     sub.RiskLevel,
			Decision: sub.Decision,
			Category: sub.DeclineCategory,
		})
	}

	outcome := engine.Aggregate(assessments)

	return &models.DecisionResult{
		JobOpeningID:    jobOpeningID,
		SubmissionCount: len(submissions),
		OverallRisk:     outcome.OverallRisk,
		Recommendation:  outcome.Recommendation,
	}, nil
}
