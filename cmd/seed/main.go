package main

import (
	"errors"
	"log/slog"
	"os"

	"hiregate/internal/auth"
	"hiregate/internal/config"
	"hiregate/internal/database"
	"hiregate/internal/engine"
	"hiregate/internal/logger"
	"hiregate/internal/models"
	"hiregate/internal/repository"
)

// Seeds a demo account for every organizational role plus a sample job
// opening with all reviewers assigned. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
		Env:   cfg.App.Env,
	})

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db.DB)
	jobRepo := repository.NewJobRepository(db.DB)
	assignmentRepo := repository.NewAssignmentRepository(db.DB)
	authService := auth.NewService(&cfg.JWT)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		slog.Error("Failed to hash seed password", "error", err)
		os.Exit(1)
	}

	names := map[engine.Role][2]string{
		engine.RoleFounder:     {"Frida", "Founder"},
		engine.RoleCoFounder:   {"Conrad", "Cofounder"},
		engine.RoleCEO:         {"Clara", "Executive"},
		engine.RoleCFO:         {"Finn", "Numbers"},
		engine.RoleCTO:         {"Tara", "Tech"},
		engine.RoleCOO:         {"Omar", "Operations"},
		engine.RoleProjectHead: {"Petra", "Projects"},
		engine.RoleHRManager:   {"Hanna", "Resources"},
		engine.RoleRecruiter:   {"Rico", "Recruiter"},
		engine.RoleHRExecutive: {"Elsa", "Executive"},
	}

	var founderID uint
	var reviewerIDs []uint

	for _, role := range engine.Roles() {
		name := names[role]
		email := string(role) + "@hiregate.local"

		user, err := userRepo.GetByEmail(email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &models.User{
				Email:        email,
				PasswordHash: passwordHash,
				FirstName:    name[0],
				LastName:     name[1],
				Role:         role,
				IsActive:     true,
			}
			if err := userRepo.Create(user); err != nil {
				slog.Error("Failed to create seed user", "email", email, "error", err)
				os.Exit(1)
			}
			slog.Info("Seeded user", "email", email, "role", role)
		} else if err != nil {
			slog.Error("Failed to look up seed user", "email", email, "error", err)
			os.Exit(1)
		}

		if role == engine.RoleFounder {
			founderID = user.ID
		}
		reviewerIDs = append(reviewerIDs, user.ID)
	}

	jobs, err := jobRepo.ListByStatus(models.JobStatusActive)
	if err != nil {
		slog.Error("Failed to list job openings", "error", err)
		os.Exit(1)
	}
	if len(jobs) > 0 {
		slog.Info("Active job openings already exist, skipping sample job")
		return
	}

	job := &models.JobOpening{
		Title:           "Senior Backend Engineer",
		Department:      "Engineering",
		Description:     "Own the payments integration and its reliability.",
		RequiredSkills:  "Go, PostgreSQL, distributed systems",
		ExperienceLevel: "senior",
		BudgetRange:     "90k-120k",
		Urgency:         "high",
		Status:          models.JobStatusActive,
		CreatedBy:       founderID,
	}
	if err := jobRepo.Create(job); err != nil {
		slog.Error("Failed to create sample job opening", "error", err)
		os.Exit(1)
	}

	if err := assignmentRepo.Assign(job.ID, reviewerIDs); err != nil {
		slog.Error("Failed to assign reviewers", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeded sample job opening", "job_opening_id", job.ID, "reviewers", len(reviewerIDs))
}
