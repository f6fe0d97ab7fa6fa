package models

import "time"

// WorkoutDB represents a logged exercise event in the database.
type WorkoutDB struct {
	WorkoutID    int64     `json:"id" db:"workout_id"`             // Primary key
	UserID       int64     `json:"user_id" db:"user_id"`           // Owning user
	ExerciseType string    `json:"exercise_type" db:"exercise_type"` // Free-text exercise label
	Reps         int       `json:"reps" db:"reps"`                 // Repetition count
	Date         time.Time `json:"date" db:"date"`                 // When the exercise happened
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Row creation timestamp
}
