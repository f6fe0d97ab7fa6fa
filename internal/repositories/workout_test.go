package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestWorkoutWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)

	repo := NewWorkoutWriteRepository(db, nil)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO workouts").
		WithArgs(int64(1), "squat", 10, date).
		WillReturnRows(sqlmock.NewRows([]string{"workout_id"}).AddRow(int64(5)))

	workoutID, err := repo.Save(ctx, 1, "squat", 10, date)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), workoutID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)

	repo := NewWorkoutWriteRepository(db, nil)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO workouts").
		WithArgs(int64(99), "squat", 10, date).
		WillReturnError(errors.New("foreign key violation"))

	_, err := repo.Save(ctx, 99, "squat", 10, date)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutReadRepository_ListByUserID(t *testing.T) {
	db, mock := newMockDB(t)

	repo := NewWorkoutReadRepository(db)
	ctx := context.Background()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"workout_id", "user_id", "exercise_type", "reps", "date", "created_at"}).
		AddRow(int64(1), int64(1), "squat", 10, date, created).
		AddRow(int64(2), int64(1), "pushup", 20, date, created)

	mock.ExpectQuery(`SELECT (.+) FROM workouts`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	workouts, err := repo.ListByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, workouts, 2)
	assert.Equal(t, "squat", workouts[0].ExerciseType)
	assert.Equal(t, 10, workouts[0].Reps)
	assert.Equal(t, int64(1), workouts[0].UserID)
	assert.Equal(t, "pushup", workouts[1].ExerciseType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutReadRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	repo := NewWorkoutReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT (.+) FROM workouts`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"workout_id", "user_id", "exercise_type", "reps", "date", "created_at"}))

	workouts, err := repo.ListByUserID(ctx, 3)
	assert.NoError(t, err)
	assert.Empty(t, workouts)

	assert.NoError(t, mock.ExpectationsWereMet())
}
