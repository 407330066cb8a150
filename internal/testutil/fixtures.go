package testutil

import (
	"database/sql"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hiregate/internal/engine"
	"hiregate/internal/models"
)

// Fixtures holds test data: one user per organizational role and an active
// job opening with every user assigned as a reviewer
type Fixtures struct {
	DB    *sql.DB
	Users map[engine.Role]*models.User
	Job   *models.JobOpening
}

// SetupFixtures creates test data
func SetupFixtures(t *testing.T, db *sql.DB) *Fixtures {
	t.Helper()

	fixtures := &Fixtures{
		DB:    db,
		Users: make(map[engine.Role]*models.User),
	}

	for _, role := range engine.Roles() {
		fixtures.Users[role] = createUser(t, db, string(role)+"@test.com", role)
	}

	fixtures.Job = createJob(t, db, fixtures.Users[engine.RoleFounder].ID)

	for _, user := range fixtures.Users {
		assignReviewer(t, db, fixtures.Job.ID, user.ID)
	}

	return fixtures
}

// User returns the fixture user for a role
func (f *Fixtures) User(role engine.Role) *models.User {
	return f.Users[role]
}

// createUser creates a user in the database or returns the existing one
func createUser(t *testing.T, db *sql.DB, email string, role engine.Role) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  string(role),
		Role:      role,
		IsActive:  true,
	}

	err := db.QueryRow(
		"SELECT id, created_at, updated_at FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err == nil {
		return user
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash fixture password: %v", err)
	}
	user.PasswordHash = string(hash)

	now := time.Now()
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name, role, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, '', true, $6, $6)
		RETURNING id`,
		email, user.PasswordHash, user.FirstName, user.LastName, user.Role, now,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("Failed to create fixture user %s: %v", email, err)
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	return user
}

// createJob creates an active job opening
func createJob(t *testing.T, db *sql.DB, createdBy uint) *models.JobOpening {
	t.Helper()

	job := &models.JobOpening{
		Title:           "Test Engineer",
		Department:      "Engineering",
		Description:     "Fixture job opening",
		RequiredSkills:  "Go",
		ExperienceLevel: "mid",
		BudgetRange:     "50k-70k",
		Urgency:         "medium",
		Status:          models.JobStatusActive,
		CreatedBy:       createdBy,
	}

	now := time.Now()
	err := db.QueryRow(`
		INSERT INTO job_openings (title, department, description, required_skills,
		                          experience_level, budget_range, urgency, status,
		                          created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`,
		job.Title, job.Department, job.Description, job.RequiredSkills,
		job.ExperienceLevel, job.BudgetRange, job.Urgency, job.Status,
		job.CreatedBy, now,
	).Scan(&job.ID)
	if err != nil {
		t.Fatalf("Failed to create fixture job opening: %v", err)
	}

	job.CreatedAt = now
	job.UpdatedAt = now
	return job
}

// assignReviewer assigns a reviewer to a job opening, ignoring duplicates
func assignReviewer(t *testing.T, db *sql.DB, jobID, userID uint) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO review_assignments (job_opening_id, user_id, assigned_at, is_completed)
		VALUES ($1, $2, $3, false)
		ON CONFLICT (job_opening_id, user_id) DO NOTHING`,
		jobID, userID, time.Now(),
	)
	if err != nil {
		t.Fatalf("Failed to assign fixture reviewer %d: %v", userID, err)
	}
}
