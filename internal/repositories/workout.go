package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
)

// WorkoutWriteRepository handles workout inserts.
type WorkoutWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWorkoutWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WorkoutWriteRepository {
	return &WorkoutWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a workout for the given owner and returns the generated id.
func (r *WorkoutWriteRepository) Save(ctx context.Context, userID int64, exerciseType string, reps int, date time.Time) (int64, error) {
	query := `
		INSERT INTO workouts (user_id, exercise_type, reps, date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING workout_id
	`
	args := []any{userID, exerciseType, reps, date}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var workoutID int64
	err := sqlx.GetContext(ctx, executor, &workoutID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", workoutID,
		"error", err,
	)

	return workoutID, err
}

// WorkoutReadRepository handles workout lookups.
type WorkoutReadRepository struct {
	db *sqlx.DB
}

func NewWorkoutReadRepository(db *sqlx.DB) *WorkoutReadRepository {
	return &WorkoutReadRepository{db: db}
}

// ListByUserID returns all workouts owned by the given user in storage order.
func (r *WorkoutReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutDB, error) {
	const query = `
		SELECT workout_id, user_id, exercise_type, reps, date, created_at
		FROM workouts
		WHERE user_id = $1
	`

	var workouts []models.WorkoutDB
	err := r.db.SelectContext(ctx, &workouts, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(workouts),
		"error", err,
	)

	return workouts, err
}
