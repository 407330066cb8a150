package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hiregate/internal/models"
	"hiregate/internal/repository"
	"hiregate/internal/service"
)

// JobHandler handles job opening requests
type JobHandler struct {
	jobService  *service.JobService
	authService *service.AuthService
}

// NewJobHandler creates a new job opening handler
func NewJobHandler(jobService *service.JobService, authService *service.AuthService) *JobHandler {
	return &JobHandler{
		jobService:  jobService,
		authService: authService,
	}
}

// Create proposes a new job opening
// @Summary Create a job opening
// @Description Propose a job opening for risk assessment. Founders and co-founders only.
// @Tags Job Openings
// @Accept json
// @Produce json
// @Param request body models.CreateJobOpeningRequest true "Job opening details"
// @Success 201 {object} models.JobOpening
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Not a founder"
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	var req models.CreateJobOpeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	job, err := h.jobService.Create(user, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			respondWithError(w, http.StatusForbidden, "Only founders can create job openings")
		case errors.Is(err, service.ErrTitleRequired):
			respondWithError(w, http.StatusBadRequest, "Title is required")
		default:
			slog.Error("Failed to create job opening", "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to create job opening")
		}
		return
	}

	slog.Info("Job opening created", "job_opening_id", job.ID, "title", job.Title, "created_by", user.ID)
	respondWithJSON(w, http.StatusCreated, job)
}

// List returns job openings, optionally filtered by status
// @Summary List job openings
// @Tags Job Openings
// @Produce json
// @Param status query string false "Filter by status" Enums(draft, active, completed, cancelled)
// @Success 200 {array} models.JobOpening
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.List(r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("Failed to list job openings", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list job openings")
		return
	}

	respondWithJSON(w, http.StatusOK, jobs)
}

// Get returns a job opening with assessment progress and submissions
// @Summary Get job opening detail
// @Description Full detail including all submissions. Level 1 reviewers only, unless assigned to the opening.
// @Tags Job Openings
// @Produce json
// @Param id path int true "Job opening ID"
// @Success 200 {object} models.JobOpeningDetail
// @Failure 403 {object} map[string]string "Not assigned to this opening"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidJobID)
		return
	}

	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	detail, err := h.jobService.GetDetail(r.Context(), user, jobID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJobNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgJobNotFound)
		case errors.Is(err, service.ErrNotAuthorized):
			respondWithError(w, http.StatusForbidden, ErrMsgPermissionDenied)
		default:
			slog.Error("Failed to get job opening", "job_opening_id", jobID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to get job opening")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// AssignReviewers assigns reviewers to a job opening
// @Summary Assign reviewers
// @Description Assign reviewers to assess a job opening. Founders and co-founders only. Already-assigned reviewers are skipped.
// @Tags Job Openings
// @Accept json
// @Produce json
// @Param id path int true "Job opening ID"
// @Param request body models.AssignReviewersRequest true "Reviewer user IDs"
// @Success 200 {object} map[string]string "Reviewers assigned"
// @Failure 403 {object} map[string]string "Not a founder"
// @Failure 404 {object} map[string]string "Job opening or reviewer not found"
// @Security BearerAuth
// @Router /jobs/{id}/reviewers [post]
func (h *JobHandler) AssignReviewers(w http.ResponseWriter, r *http.Request) {
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

	var req models.AssignReviewersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}
	if len(req.UserIDs) == 0 {
		respondWithError(w, http.StatusBadRequest, "At least one reviewer is required")
		return
	}

	if err := h.jobService.AssignReviewers(user, jobID, req.UserIDs); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			respondWithError(w, http.StatusForbidden, "Only founders can assign reviewers")
		case errors.Is(err, repository.ErrJobNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgJobNotFound)
		case errors.Is(err, repository.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgUserNotFound)
		case errors.Is(err, service.ErrUserInactive):
			respondWithError(w, http.StatusBadRequest, "Cannot assign an inactive reviewer")
		default:
			slog.Error("Failed to assign reviewers", "job_opening_id", jobID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to assign reviewers")
		}
		return
	}

	slog.Info("Reviewers assigned", "job_opening_id", jobID, "count", len(req.UserIDs))
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Reviewers assigned"})
}

// MyAssignments returns the authenticated reviewer's assignments
// @Summary List own review assignments
// @Tags Job Openings
// @Produce json
// @Success 200 {array} models.ReviewAssignment
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /assignments/mine [get]
func (h *JobHandler) MyAssignments(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.authService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	assignments, err := h.jobService.ListAssignments(user.ID)
	if err != nil {
		slog.Error("Failed to list assignments", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list assignments")
		return
	}

	respondWithJSON(w, http.StatusOK, assignments)
}

// UpdateStatus transitions a job opening between lifecycle states
// @Summary Update job opening status
// @Tags Job Openings
// @Accept json
// @Produce json
// @Param id path int true "Job opening ID"
// @Param request body object{status=string} true "New status"
// @Success 200 {object} map[string]string "Status updated"
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 403 {object} map[string]string "Not a founder"
// @Security BearerAuth
// @Router /jobs/{id}/status [put]
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := h.jobService.UpdateStatus(user, jobID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			respondWithError(w, http.StatusForbidden, "Only founders can change job opening status")
		case errors.Is(err, repository.ErrJobNotFound):
			respondWithError(w, http.StatusNotFound, ErrMsgJobNotFound)
		case errors.Is(err, service.ErrInvalidTransition):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("Failed to update job opening status", "job_opening_id", jobID, "error", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
