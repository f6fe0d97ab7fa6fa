package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
)

// WorkoutLister defines the interface that the service must implement.
type WorkoutLister interface {
	List(ctx context.Context, userID int64) ([]models.WorkoutDB, error)
}

// WorkoutItem represents a single workout in a list response
// swagger:model WorkoutItem
type WorkoutItem struct {
	// Workout id
	// default: 1
	ID int64 `json:"id"`

	// Exercise label
	// default: squat
	ExerciseType string `json:"exercise_type"`

	// Repetition count
	// default: 10
	Reps int `json:"reps"`

	// When the exercise happened
	// default: 2024-01-01T00:00:00
	Date string `json:"date"`
}

// NewListWorkoutsHandler returns an HTTP handler for listing the caller's workouts.
// @Summary List workouts
// @Description Returns all workouts owned by the authenticated user
// @Tags workouts
// @Produce json
// @Success 200 {array} handlers.WorkoutItem "Workouts"
// @Failure 401 {object} handlers.WorkoutErrorResponse "Unauthorized"
// @Router /api/workouts [get]
// @Security BearerAuth
func NewListWorkoutsHandler(svc WorkoutLister, tokener WorkoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized workout request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		workouts, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list workouts", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		items := make([]WorkoutItem, 0, len(workouts))
		for _, workout := range workouts {
			items = append(items, WorkoutItem{
				ID:           workout.WorkoutID,
				ExerciseType: workout.ExerciseType,
				Reps:         workout.Reps,
				Date:         workout.Date.Format(workoutDateLayout),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
