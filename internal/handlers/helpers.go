package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hiregate/internal/middleware"
	"hiregate/internal/models"
	"hiregate/internal/service"
)

var errMissingUser = errors.New("no authenticated user in request context")

// Helper functions shared by all handlers

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := JSONResponse(w, payload); err != nil {
		w.Write([]byte(`{"error":"Internal server error"}`))
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// pathID extracts a numeric path parameter from the request
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// currentUser resolves the authenticated user from the request context
func currentUser(r *http.Request, authSvc *service.AuthService) (*models.User, error) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		return nil, errMissingUser
	}
	return authSvc.GetUser(userID)
}
