package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/flexitout/workout-tracker/internal/jwt"
	"github.com/flexitout/workout-tracker/internal/logger"
)

// workoutDateLayout matches what the original web client sends; RFC3339
// dates are accepted as well.
const workoutDateLayout = "2006-01-02T15:04:05"

// WorkoutTokener defines only the methods needed by the workout handlers.
type WorkoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WorkoutAdder defines the interface that the service must implement.
type WorkoutAdder interface {
	Add(ctx context.Context, userID int64, exerciseType string, reps int, date time.Time) (int64, error)
}

// AddWorkoutRequest represents the JSON body for logging a workout
// swagger:model AddWorkoutRequest
type AddWorkoutRequest struct {
	// Exercise label
	// required: true
	// default: squat
	ExerciseType string `json:"exercise_type"`

	// Repetition count
	// required: true
	// default: 10
	Reps int `json:"reps"`

	// When the exercise happened
	// required: true
	// default: 2024-01-01T00:00:00
	Date string `json:"date"`
}

// AddWorkoutResponse represents a successful workout creation response
// swagger:model AddWorkoutResponse
type AddWorkoutResponse struct {
	// Success message
	// default: Workout added successfully
	Message string `json:"message"`
}

// WorkoutErrorResponse represents an error response for workout requests
// swagger:model WorkoutErrorResponse
type WorkoutErrorResponse struct {
	// Error message
	// default: invalid date format
	Error string `json:"error"`
}

func parseWorkoutDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(workoutDateLayout, value)
}

// NewAddWorkoutHandler returns an HTTP handler for logging a workout.
// @Summary Log a workout
// @Description Records an exercise event for the authenticated user
// @Tags workouts
// @Accept json
// @Produce json
// @Param addWorkoutRequest body handlers.AddWorkoutRequest true "Workout request"
// @Success 201 {object} handlers.AddWorkoutResponse "Workout recorded"
// @Failure 400 {object} handlers.WorkoutErrorResponse "Invalid request body or date"
// @Failure 401 {object} handlers.WorkoutErrorResponse "Unauthorized"
// @Router /api/workouts [post]
// @Security BearerAuth
func NewAddWorkoutHandler(svc WorkoutAdder, tokener WorkoutTokener) http.HandlerFunc {
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

		var req AddWorkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Reps < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "reps must be non-negative",
			})
			return
		}

		date, err := parseWorkoutDate(req.Date)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "invalid date format",
			})
			return
		}

		if _, err := svc.Add(ctx, claims.UserID, req.ExerciseType, req.Reps, date); err != nil {
			logger.Log.Errorw("failed to add workout", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WorkoutErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddWorkoutResponse{
			Message: "Workout added successfully",
		})
	}
}
