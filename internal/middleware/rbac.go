package middleware

import (
	"net/http"

	"hiregate/internal/engine"
	"hiregate/internal/repository"
)

// RBACMiddleware enforces organizational role requirements. Every user has
// exactly one organizational role, so checks resolve the user and compare
// against the allowed set.
type RBACMiddleware struct {
	userRepo *repository.UserRepository
}

// NewRBACMiddleware creates a new RBAC middleware
func NewRBACMiddleware(userRepo *repository.UserRepository) *RBACMiddleware {
	return &RBACMiddleware{userRepo: userRepo}
}

// RequireAnyRole allows only users whose organizational role is in the list
func (m *RBACMiddleware) RequireAnyRole(roles ...engine.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "User not authenticated")
				return
			}

			user, err := m.userRepo.GetByID(userID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve user")
				return
			}

			hasRole := false
			for _, role := range roles {
				if user.Role == role {
					hasRole = true
					break
				}
			}

			if !hasRole {
				respondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireFounder allows only users who may create and manage job openings
func (m *RBACMiddleware) RequireFounder(next http.Handler) http.Handler {
	return m.RequireAnyRole(engine.RoleFounder, engine.RoleCoFounder)(next)
}
