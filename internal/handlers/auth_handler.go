package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"

	"hiregate/internal/config"
	"hiregate/internal/models"
	"hiregate/internal/repository"
	"hiregate/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService  *service.AuthService
	auditService *service.AuditService
	config       *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, auditService *service.AuditService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
		config:       cfg,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with an organizational role
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration details"
// @Success 201 {object} models.User "Registration successful"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Registration disabled"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.config.App.EnableRegistration {
		respondWithError(w, http.StatusForbidden, "Registration is disabled")
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < 8 {
		respondWithError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		respondWithError(w, http.StatusBadRequest, "First and last name are required")
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			respondWithError(w, http.StatusBadRequest, "Unknown organizational role")
		case errors.Is(err, repository.ErrUserExists):
			respondWithError(w, http.StatusConflict, "Email is already registered")
		default:
			slog.Error("Registration failed", "email", req.Email, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	slog.Info("User registered", "user_id", user.ID, "email", user.Email, "role", user.Role)
	h.auditService.Log(user.ID, "register", "user", "Account created with role "+string(user.Role))
	respondWithJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
// @Summary Log in
// @Description Authenticate with email and password, returns a JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	token, expiresAt, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrUserInactive):
			respondWithError(w, http.StatusForbidden, "Account is inactive")
		default:
			slog.Error("Login failed", "email", req.Email, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.auditService.Log(user.ID, "login", "user", "Successful login")
	respondWithJSON(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// Profile returns the authenticated user's profile
// @Summary Get own profile
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

// ListUsers returns all active users, for reviewer assignment pickers
// @Summary List active users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers()
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}
