package services

import (
	"context"
	"time"

	"github.com/flexitout/workout-tracker/internal/events"
	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
	"github.com/flexitout/workout-tracker/internal/observability"
)

// WorkoutWriter defines write operations for workouts.
type WorkoutWriter interface {
	Save(ctx context.Context, userID int64, exerciseType string, reps int, date time.Time) (int64, error)
}

// WorkoutLister defines read operations for workouts.
type WorkoutLister interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutDB, error)
}

// WorkoutEventPublisher publishes workout-logged events.
type WorkoutEventPublisher interface {
	Publish(ctx context.Context, event events.WorkoutLogged) error
}

// WorkoutService records and lists workouts for their owner.
type WorkoutService struct {
	writer    WorkoutWriter
	lister    WorkoutLister
	publisher WorkoutEventPublisher
	metrics   *observability.Metrics
}

// NewWorkoutService creates a new WorkoutService instance.
// publisher and metrics may be nil.
func NewWorkoutService(writer WorkoutWriter, lister WorkoutLister, publisher WorkoutEventPublisher, metrics *observability.Metrics) *WorkoutService {
	return &WorkoutService{
		writer:    writer,
		lister:    lister,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Add records a workout for the given user. The workout-logged event is
// published best-effort: a broker failure never fails the request.
func (svc *WorkoutService) Add(ctx context.Context, userID int64, exerciseType string, reps int, date time.Time) (int64, error) {
	workoutID, err := svc.writer.Save(ctx, userID, exerciseType, reps, date)
	if err != nil {
		logger.Log.Errorw("failed to save workout", "user_id", userID, "err", err)
		return 0, err
	}

	if svc.metrics != nil {
		svc.metrics.WorkoutsLoggedTotal.WithLabelValues(exerciseType).Inc()
	}

	if svc.publisher != nil {
		event := events.WorkoutLogged{
			WorkoutID:    workoutID,
			UserID:       userID,
			ExerciseType: exerciseType,
			Reps:         reps,
			Date:         date,
			LoggedAt:     time.Now().UTC(),
		}
		if err := svc.publisher.Publish(ctx, event); err != nil {
			logger.Log.Warnw("failed to publish workout event", "workout_id", workoutID, "err", err)
		}
	}

	return workoutID, nil
}

// List returns all workouts owned by the given user.
func (svc *WorkoutService) List(ctx context.Context, userID int64) ([]models.WorkoutDB, error) {
	workouts, err := svc.lister.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list workouts", "user_id", userID, "err", err)
		return nil, err
	}
	return workouts, nil
}
