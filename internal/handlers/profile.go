package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flexitout/workout-tracker/internal/jwt"
	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
	"github.com/flexitout/workout-tracker/internal/services"
)

// ProfileTokener defines only the methods needed by the profile handlers.
type ProfileTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID int64) (*models.UserDB, error)
}

// ProfileErrorResponse represents an error response for profile requests
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for fetching the caller's profile.
// @Summary Get user profile
// @Description Returns the profile of the authenticated user
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.UserSummary "User profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Router /api/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter, tokener ProfileTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized profile request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		user, err := svc.Get(ctx, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to get profile", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserSummary{
			ID:    user.UserID,
			Name:  user.Name,
			Email: user.Email,
			Level: user.Level,
		})
	}
}
