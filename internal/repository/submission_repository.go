package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"hiregate/internal/engine"
	"hiregate/internal/models"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadySubmitted   = errors.New("reviewer has already submitted for this job opening")
)

// SubmissionRepository handles submission database operations
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `
	job_opening_id, user_id, submitted_at,
	business_alignment, financial_risk, long_term_impact, budget_approval, strategic_priority,
	skill_availability, execution_feasibility, team_dependency, timeline_risk, mentor_available,
	talent_availability, cost_validation, process_readiness, onboarding_capacity, market_competition,
	roi_analysis, cash_flow_impact, budget_alignment, funding_source,
	decision, decline_reason, decline_category, risk_score, risk_level, corrective_guidance
`

// Create persists a submission. The unique constraint on (job_opening_id,
// user_id) makes repeat submissions fail; that failure is reported as
// ErrAlreadySubmitted so callers can treat it as a benign conflict.
func (r *SubmissionRepository) Create(sub *models.Submission) error {
	query := `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING id
	`

	now := time.Now()
	a := sub.Answers
	err := r.db.QueryRow(
		query,
		sub.JobOpeningID,
		sub.UserID,
		now,
		a.BusinessAlignment, a.FinancialRisk, a.LongTermImpact, a.BudgetApproval, a.StrategicPriority,
		a.SkillAvailability, a.ExecutionFeasibility, a.TeamDependency, a.TimelineRisk, a.MentorAvailable,
		a.TalentAvailability, a.CostValidation, a.ProcessReadiness, a.OnboardingCapacity, a.MarketCompetition,
		a.ROIAnalysis, a.CashFlowImpact, a.BudgetAlignment, a.FundingSource,
		sub.Decision,
		sub.DeclineReason,
		sub.DeclineCategory,
		sub.RiskScore,
		sub.RiskLevel,
		sub.CorrectiveGuidance,
	).Scan(&sub.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrAlreadySubmitted
		}
		return fmt.Errorf("failed to create submission: %w", err)
	}

	sub.SubmittedAt = now
	return nil
}

// GetByID retrieves a submission by its id
func (r *SubmissionRepository) GetByID(id uint) (*models.Submission, error) {
	query := `
		SELECT id, ` + submissionColumns + `
		FROM submissions
		WHERE id = $1
	`

	sub := &models.Submission{}
	err := r.db.QueryRow(query, id).Scan(submissionFields(sub)...)

	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

// GetByJobAndUser retrieves a reviewer's submission for a job opening
func (r *SubmissionRepository) GetByJobAndUser(jobOpeningID, userID uint) (*models.Submission, error) {
	query := `
		SELECT id, ` + submissionColumns + `
		FROM submissions
		WHERE job_opening_id = $1 AND user_id = $2
	`

	sub := &models.Submission{}
	err := r.db.QueryRow(query, jobOpeningID, userID).Scan(submissionFields(sub)...)

	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

// ListByJob retrieves all submissions for a job opening together with
// reviewer identity, in submission order
func (r *SubmissionRepository) ListByJob(jobOpeningID uint) ([]models.SubmissionWithReviewer, error) {
	query := `
		SELECT s.id, s.job_opening_id, s.user_id, s.submitted_at,
		       s.business_alignment, s.financial_risk, s.long_term_impact, s.budget_approval, s.strategic_priority,
		       s.skill_availability, s.execution_feasibility, s.team_dependency, s.timeline_risk, s.mentor_available,
		       s.talent_availability, s.cost_validation, s.process_readiness, s.onboarding_capacity, s.market_competition,
		       s.roi_analysis, s.cash_flow_impact, s.budget_alignment, s.funding_source,
		       s.decision, s.decline_reason, s.decline_category, s.risk_score, s.risk_level, s.corrective_guidance,
		       u.first_name, u.last_name, u.email, u.role
		FROM submissions s
		JOIN users u ON u.id = s.user_id
		WHERE s.job_opening_id = $1
		ORDER BY s.submitted_at
	`

	rows, err := r.db.Query(query, jobOpeningID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []models.SubmissionWithReviewer
	for rows.Next() {
		var sub models.SubmissionWithReviewer
		var firstName, lastName string

		dest := submissionFields(&sub.Submission)
		dest = append(dest, &firstName, &lastName, &sub.ReviewerEmail, &sub.ReviewerRole)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}

		sub.ReviewerName = firstName + " " + lastName
		if level, err := engine.LevelForRole(sub.ReviewerRole); err == nil {
			sub.ReviewerLevel = level
		}

		submissions = append(submissions, sub)
	}

	return submissions, rows.Err()
}

// CountByJob returns the number of submissions for a job opening
func (r *SubmissionRepository) CountByJob(jobOpeningID uint) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM submissions WHERE job_opening_id = $1`, jobOpeningID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

// submissionFields returns scan destinations matching submissionColumns,
// preceded by the id column
func submissionFields(sub *models.Submission) []any {
	a := &sub.Answers
	return []any{
		&sub.ID,
		&sub.JobOpeningID,
		&sub.UserID,
		&sub.SubmittedAt,
		&a.BusinessAlignment, &a.FinancialRisk, &a.LongTermImpact, &a.BudgetApproval, &a.StrategicPriority,
		&a.SkillAvailability, &a.ExecutionFeasibility, &a.TeamDependency, &a.TimelineRisk, &a.MentorAvailable,
		&a.TalentAvailability, &a.CostValidation, &a.ProcessReadiness, &a.OnboardingCapacity, &a.MarketCompetition,
		&a.ROIAnalysis, &a.CashFlowImpact, &a.BudgetAlignment, &a.FundingSource,
		&sub.Decision,
		&sub.DeclineReason,
		&sub.DeclineCategory,
		&sub.RiskScore,
		&sub.RiskLevel,
		&sub.CorrectiveGuidance,
	}
}
