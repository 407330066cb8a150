package service

import (
	"errors"
	"fmt"
	"time"

	"hiregate/internal/auth"
	"hiregate/internal/engine"
	"hiregate/internal/models"
	"hiregate/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidRole        = errors.New("unknown organizational role")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo *repository.UserRepository
	authSvc  *auth.Service
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo *repository.UserRepository, authSvc *auth.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		authSvc:  authSvc,
	}
}

// Register registers a new user with an organizational role
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	if !engine.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// Check if user already exists
	existing, _ := s.userRepo.GetByEmail(req.Email)
	if existing != nil {
		return nil, repository.ErrUserExists
	}

	passwordHash, err := s.authSvc.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Phone:        req.Phone,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed JWT
func (s *AuthService) Login(email, password string) (string, time.Time, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	if err := s.authSvc.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", time.Time{}, nil, ErrUserInactive
	}

	token, expiresAt, err := s.authSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		// Non-fatal; the login itself succeeded
		return token, expiresAt, user, nil
	}

	return token, expiresAt, user, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ListUsers retrieves all active users
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}
