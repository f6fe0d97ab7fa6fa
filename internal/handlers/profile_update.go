package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
	"github.com/flexitout/workout-tracker/internal/services"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, name, level string) (*models.UserDB, error)
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Display name; empty keeps the current value
	// default: Alice
	Name string `json:"name"`

	// Experience level; empty keeps the current value
	// default: Intermediate
	Level string `json:"level"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update user profile
// @Description Updates the display name and experience level of the authenticated user
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UserSummary "Updated user profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Router /api/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, tokener ProfileTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized profile update: missing or invalid token")
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

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Update(ctx, claims.UserID, req.Name, req.Level)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to update profile", "userID", claims.UserID, "error", err)
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
