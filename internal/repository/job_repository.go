package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hiregate/internal/models"
)

var ErrJobNotFound = errors.New("job opening not found")

// JobRepository handles job opening database operations
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new job opening repository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job opening
func (r *JobRepository) Create(job *models.JobOpening) error {
	query := `
		INSERT INTO job_openings (title, department, description, required_skills,
		                          experience_level, budget_range, urgency, status,
		                          created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(
		query,
		job.Title,
		job.Department,
		job.Description,
		job.RequiredSkills,
		job.ExperienceLevel,
		job.BudgetRange,
		job.Urgency,
		job.Status,
		job.CreatedBy,
		now,
		now,
	).Scan(&job.ID)

	if err != nil {
		return fmt.Errorf("failed to create job opening: %w", err)
	}

	job.CreatedAt = now
	job.UpdatedAt = now
	return nil
}

// GetByID retrieves a job opening by ID
func (r *JobRepository) GetByID(id uint) (*models.JobOpening, error) {
	query := `
		SELECT id, title, department, description, required_skills, experience_level,
		       budget_range, urgency, status, created_by, created_at, updated_at
		FROM job_openings
		WHERE id = $1
	`

	job := &models.JobOpening{}
	err := r.db.QueryRow(query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Department,
		&job.Description,
		&job.RequiredSkills,
		&job.ExperienceLevel,
		&job.BudgetRange,
		&job.Urgency,
		&job.Status,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job opening: %w", err)
	}

	return job, nil
}

// List retrieves all job openings, newest first
func (r *JobRepository) List() ([]models.JobOpening, error) {
	query := `
		SELECT id, title, department, description, required_skills, experience_level,
		       budget_range, urgency, status, created_by, created_at, updated_at
		FROM job_openings
		ORDER BY created_at DESC
	`

	return r.queryJobs(query)
}

// ListByStatus retrieves job openings with the given status, newest first
func (r *JobRepository) ListByStatus(status string) ([]models.JobOpening, error) {
	query := `
		SELECT id, title, department, description, required_skills, experience_level,
		       budget_range, urgency, status, created_by, created_at, updated_at
		FROM job_openings
		WHERE status = $1
		ORDER BY created_at DESC
	`

	return r.queryJobs(query, status)
}

// UpdateStatus transitions a job opening to a new status
func (r *JobRepository) UpdateStatus(id uint, status string) error {
	query := `UPDATE job_openings SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update job opening status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

func (r *JobRepository) queryJobs(query string, args ...any) ([]models.JobOpening, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job openings: %w", err)
	}
	defer rows.Close()

	var jobs []models.JobOpening
	for rows.Next() {
		var job models.JobOpening
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Department,
			&job.Description,
			&job.RequiredSkills,
			&job.ExperienceLevel,
			&job.BudgetRange,
			&job.Urgency,
			&job.Status,
			&job.CreatedBy,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job opening: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}
