package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"hiregate/internal/repository"
	"hiregate/internal/service"
)

// DecisionHandler handles aggregate decision requests
type DecisionHandler struct {
	decisionService *service.DecisionService
}

// NewDecisionHandler creates a new decision handler
func NewDecisionHandler(decisionService *service.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

// Evaluate returns the aggregate hiring decision for a job opening
// @Summary Evaluate aggregate decision
// @Description Aggregate all submissions for a job opening into an overall risk and hiring recommendation. Computed on demand, never persisted.
// @Tags Decisions
// @Produce json
// @Param id path int true "Job opening ID"
// @Success 200 {object} models.DecisionResult
// @Failure 404 {object} map[string]string "Job opening not found"
// @Security BearerAuth
// @Router /jobs/{id}/decision [get]
func (h *DecisionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidJobID)
		return
	}

	result, err := h.decisionService.Evaluate(jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			respondWithError(w, http.StatusNotFound, ErrMsgJobNotFound)
			return
		}
		slog.Error("Failed to evaluate decision", "job_opening_id", jobID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to evaluate decision")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
