package models

import (
	"time"

	"hiregate/internal/engine"
)

// User represents a reviewer or founder in the system
type User struct {
	ID           uint        `json:"id" db:"id"`
	Email        string      `json:"email" db:"email"`
	PasswordHash string      `json:"-" db:"password_hash"`
	FirstName    string      `json:"first_name" db:"first_name"`
	LastName     string      `json:"last_name" db:"last_name"`
	Role         engine.Role `json:"role" db:"role"`
	Phone        string      `json:"phone,omitempty" db:"phone"`
	IsActive     bool        `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time  `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// Job opening status values
const (
	JobStatusDraft     = "draft"
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

// JobOpening represents a proposed role to be assessed by the reviewer hierarchy
type JobOpening struct {
	ID              uint      `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Department      string    `json:"department" db:"department"`
	Description     string    `json:"description" db:"description"`
	RequiredSkills  string    `json:"required_skills" db:"required_skills"`
	ExperienceLevel string    `json:"experience_level" db:"experience_level"`
	BudgetRange     string    `json:"budget_range" db:"budget_range"`
	Urgency         string    `json:"urgency" db:"urgency"` // low, medium, high
	Status          string    `json:"status" db:"status"`
	CreatedBy       uint      `json:"created_by" db:"created_by"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewAssignment links a reviewer to a job opening they must assess
type ReviewAssignment struct {
	ID           uint       `json:"id" db:"id"`
	JobOpeningID uint       `json:"job_opening_id" db:"job_opening_id"`
	UserID       uint       `json:"user_id" db:"user_id"`
	AssignedAt   time.Time  `json:"assigned_at" db:"assigned_at"`
	IsCompleted  bool       `json:"is_completed" db:"is_completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// Submission is one reviewer's one-time assessment of a job opening. The
// risk fields are computed by the decision engine when the submission is
// created and are never recomputed.
type Submission struct {
	ID           uint      `json:"id" db:"id"`
	JobOpeningID uint      `json:"job_opening_id" db:"job_opening_id"`
	UserID       uint      `json:"user_id" db:"user_id"`
	SubmittedAt  time.Time `json:"submitted_at" db:"submitted_at"`

	Answers engine.Answers `json:"answers"`

	Decision           engine.Decision        `json:"decision" db:"decision"`
	DeclineReason      string                 `json:"decline_reason,omitempty" db:"decline_reason"`
	DeclineCategory    engine.DeclineCategory `json:"decline_category,omitempty" db:"decline_category"`
	RiskScore          int                    `json:"risk_score" db:"risk_score"`
	RiskLevel          engine.RiskLevel       `json:"risk_level" db:"risk_level"`
	CorrectiveGuidance string                 `json:"corrective_guidance,omitempty" db:"corrective_guidance"`
}

// SubmissionWithReviewer extends Submission with reviewer identity for
// display and aggregation.
type SubmissionWithReviewer struct {
	Submission
	ReviewerName  string       `json:"reviewer_name"`
	ReviewerEmail string       `json:"reviewer_email"`
	ReviewerRole  engine.Role  `json:"reviewer_role"`
	ReviewerLevel engine.Level `json:"reviewer_level"`
}

// JobOpeningDetail is the job opening together with assessment progress and
// submissions grouped by questionnaire level.
type JobOpeningDetail struct {
	JobOpening
	TotalAssignments     int                      `json:"total_assignments"`
	CompletedAssignments int                      `json:"completed_assignments"`
	ProgressPercent      float64                  `json:"progress_percent"`
	Level1Submissions    []SubmissionWithReviewer `json:"level1_submissions"`
	Level2Submissions    []SubmissionWithReviewer `json:"level2_submissions"`
	Level3Submissions    []SubmissionWithReviewer `json:"level3_submissions"`
}

// AuditLog represents an audit log entry
type AuditLog struct {
	ID        uint      `json:"id" db:"id"`
	UserID    *uint     `json:"user_id,omitempty" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Resource  string    `json:"resource" db:"resource"`
	Details   string    `json:"details,omitempty" db:"details"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DecisionResult is the on-demand aggregate output for a job opening.
type DecisionResult struct {
	JobOpeningID    uint                  `json:"job_opening_id"`
	SubmissionCount int                   `json:"submission_count"`
	OverallRisk     engine.OverallRisk    `json:"overall_risk"`
	Recommendation  engine.Recommendation `json:"recommendation"`
}

// SubmissionRequest is the decision payload a reviewer posts for a job opening.
type SubmissionRequest struct {
	Decision        engine.Decision        `json:"decision"`
	DeclineReason   string                 `json:"decline_reason,omitempty"`
	DeclineCategory engine.DeclineCategory `json:"decline_category,omitempty"`
	Answers         engine.Answers         `json:"answers"`
}

// CreateJobOpeningRequest is the payload for proposing a job opening.
type CreateJobOpeningRequest struct {
	Title           string `json:"title"`
	Department      string `json:"department"`
	Description     string `json:"description"`
	RequiredSkills  string `json:"required_skills"`
	ExperienceLevel string `json:"experience_level"`
	BudgetRange     string `json:"budget_range"`
	Urgency         string `json:"urgency"`
}

// AssignReviewersRequest names the reviewers to assign to a job opening.
type AssignReviewersRequest struct {
	UserIDs []uint `json:"user_ids"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      engine.Role `json:"role"`
	Phone     string      `json:"phone,omitempty"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}
