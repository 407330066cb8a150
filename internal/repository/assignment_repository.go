package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hiregate/internal/models"
)

var ErrAssignmentNotFound = errors.New("review assignment not found")

// AssignmentRepository handles review assignment database operations
type AssignmentRepository struct {
	db *sql.DB
}

// NewAssignmentRepository creates a new review assignment repository
func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Assign creates review assignments for the given reviewers. Assigning a
// reviewer who is already assigned is a no-op, so the call is idempotent.
func (r *AssignmentRepository) Assign(jobOpeningID uint, userIDs []uint) error {
	query := `
		INSERT INTO review_assignments (job_opening_id, user_id, assigned_at, is_completed)
		VALUES ($1, $2, $3, false)
		ON CONFLICT (job_opening_id, user_id) DO NOTHING
	`

	now := time.Now()
	for _, userID := range userIDs {
		if _, err := r.db.Exec(query, jobOpeningID, userID, now); err != nil {
			return fmt.Errorf("failed to assign reviewer %d: %w", userID, err)
		}
	}

	return nil
}

// Get retrieves the assignment for a reviewer on a job opening
func (r *AssignmentRepository) Get(jobOpeningID, userID uint) (*models.ReviewAssignment, error) {
	query := `
		SELECT id, job_opening_id, user_id, assigned_at, is_completed, completed_at
		FROM review_assignments
		WHERE job_opening_id = $1 AND user_id = $2
	`

	assignment := &models.ReviewAssignment{}
	err := r.db.QueryRow(query, jobOpeningID, userID).Scan(
		&assignment.ID,
		&assignment.JobOpeningID,
		&assignment.UserID,
		&assignment.AssignedAt,
		&assignment.IsCompleted,
		&assignment.CompletedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return assignment, nil
}

// ListByJob retrieves all assignments for a job opening
func (r *AssignmentRepository) ListByJob(jobOpeningID uint) ([]models.ReviewAssignment, error) {
	query := `
		SELECT id, job_opening_id, user_id, assigned_at, is_completed, completed_at
		FROM review_assignments
		WHERE job_opening_id = $1
		ORDER BY assigned_at
	`

	rows, err := r.db.Query(query, jobOpeningID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.ReviewAssignment
	for rows.Next() {
		var assignment models.ReviewAssignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.JobOpeningID,
			&assignment.UserID,
			&assignment.AssignedAt,
			&assignment.IsCompleted,
			&assignment.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// ListByUser retrieves all assignments for a reviewer
func (r *AssignmentRepository) ListByUser(userID uint) ([]models.ReviewAssignment, error) {
	query := `
		SELECT id, job_opening_id, user_id, assigned_at, is_completed, completed_at
		FROM review_assignments
		WHERE user_id = $1
		ORDER BY assigned_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.ReviewAssignment
	for rows.Next() {
		var assignment models.ReviewAssignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.JobOpeningID,
			&assignment.UserID,
			&assignment.AssignedAt,
			&assignment.IsCompleted,
			&assignment.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// MarkCompleted marks a reviewer's assignment as completed
func (r *AssignmentRepository) MarkCompleted(jobOpeningID, userID uint) error {
	query := `
		UPDATE review_assignments
		SET is_completed = true, completed_at = $1
		WHERE job_opening_id = $2 AND user_id = $3
	`

	result, err := r.db.Exec(query, time.Now(), jobOpeningID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark assignment completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
