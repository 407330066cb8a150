package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hiregate/internal/engine"
	"hiregate/internal/models"
	"hiregate/internal/repository"
	"hiregate/internal/service"
)

// SubmissionHandler handles assessment submission requests
type SubmissionHandler struct {
	submissionService *service.SubmissionService
	authService       *service.AuthService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService, authService *service.AuthService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		authService:       authService,
	}
}

// Submit records the reviewer's assessment of a job opening
// @Summary Submit an assessment
// @Description Submit a one-time risk assessment for an assigned job opening. The decision engine scores the answers at submission time.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path int true "Job opening ID"
// @Param request body models.SubmissionRequest true "Decision and questionnaire answers"
// @Success 201 {object} models.Submission
// @Failure 400 {object} map[string]string "Invalid answers or decision"
// @Failure 403 {object} map[string]string "Not assigned to this job opening"
// @Failure 409 {object} map[string]string "Already submitted"
// @Security BearerAuth
// @Router /jobs/{id}/submissions [post]
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	jobID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidJobID)
		return
	}

	var req models.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	sub, err := h.submissionService.Submit(r.Context(), user, jobID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgJobNotFound)
		case errors.Is(err, service.ErrJobNotActive):
			respondWithError(w, http.StatusConflict, "Job opening is not accepting submissions")
		case errors.Is(err, service.ErrNotAssigned):
			respondWithError(w, http.StatusForbidden, "You are not assigned to this job opening")
		case errors.Is(err, repository.ErrAlreadySubmitted):
			respondWithError(w, http.StatusConflict, "You have already submitted for this job opening")
		case errors.Is(err, engine.ErrMissingDecision),
			errors.Is(err, engine.ErrInvalidRating),
			errors.Is(err, engine.ErrInvalidGrade),
			errors.Is(err, engine.ErrInvalidFundingSource),
			errors.Is(err, engine.ErrUnknownRole):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("Failed to create submission", "job_opening_id", jobID, "user_id", user.ID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to create submission")
		}
		return
	}

	slog.Info("Submission recorded",
		"job_opening_id", jobID,
		"user_id", user.ID,
		"decision", sub.Decision,
		"risk_level", sub.RiskLevel,
	)
	respondWithJSON(w, http.StatusCreated, sub)
}

// GetByID returns a single submission by id
// @Summary Get submission by ID
// @Description Get a submission. Reviewers see their own submissions; level 1 reviewers see anyone's.
// @Tags Submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 403 {object} map[string]string "Not your submission"
// @Failure 404 {object} map[string]string "Submission not found"
// @Security BearerAuth
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	submissionID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid submission ID")
		return
	}

	sub, err := h.submissionService.GetByID(r.Context(), user, submissionID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSubmissionNotFound):
			respondWithError(w, http.StatusNotFound, "Submission not found")
		case errors.Is(err, service.ErrNotAuthorized):
			respondWithError(w, http.StatusForbidden, ErrMsgPermissionDenied)
		default:
			slog.Error("Failed to get submission", "submission_id", submissionID, "user_id", user.ID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to get submission")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, sub)
}

// GetMine returns the reviewer's own submission for a job opening
// @Summary Get own submission
// @Tags Submissions
// @Produce json
// @Param id path int true "Job opening ID"
// @Success 200 {object} models.Submission
// @Failure 404 {object} map[string]string "No submission yet"
// @Security BearerAuth
// @Router /jobs/{id}/submissions/mine [get]
func (h *SubmissionHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	jobID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidJobID)
		return
	}

	sub, err := h.submissionService.Get(r.Context(), jobID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			respondWithError(w, http.StatusNotFound, "No submission for this job opening")
			return
		}
		slog.Error("Failed to get submission", "job_opening_id", jobID, "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to get submission")
		return
	}

	respondWithJSON(w, http.StatusOK, sub)
}
