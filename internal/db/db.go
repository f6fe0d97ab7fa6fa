package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/flexitout/workout-tracker/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// schema is applied at startup so a fresh database is usable immediately.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(120) NOT NULL UNIQUE,
	password_hash VARCHAR(60) NOT NULL,
	level VARCHAR(20) NOT NULL DEFAULT 'Beginner',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS workouts (
	workout_id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(user_id),
	exercise_type VARCHAR(50) NOT NULL,
	reps INTEGER NOT NULL CHECK (reps >= 0),
	date TIMESTAMP NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// Connect opens a pooled connection to PostgreSQL, retrying while the
// database is still coming up.
func Connect(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err == nil {
			break
		}
		logger.Log.Warnw("postgres connection failed",
			"attempt", i+1,
			"max_attempts", maxRetries,
			"error", err,
		)
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// EnsureSchema creates the users and workouts tables if they are absent.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to apply schema", "error", err)
	}
	return err
}
