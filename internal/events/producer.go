package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// WorkoutLoggedTopic is the topic workout events are published to.
const WorkoutLoggedTopic = "workout.logged"

// WorkoutLogged is the event emitted when a workout is recorded.
type WorkoutLogged struct {
	WorkoutID    int64     `json:"workout_id"`
	UserID       int64     `json:"user_id"`
	ExerciseType string    `json:"exercise_type"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
	LoggedAt     time.Time `json:"logged_at"`
}

// Message builds the Kafka message for the event, keyed by user id so
// events for one user stay in one partition.
func (e WorkoutLogged) Message() (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(e.UserID, 10)),
		Value: value,
	}, nil
}

// WorkoutProducer publishes workout events to Kafka.
type WorkoutProducer struct {
	writer *kafka.Writer
}

// NewWorkoutProducer creates a producer for the workout.logged topic.
func NewWorkoutProducer(brokers []string) *WorkoutProducer {
	return &WorkoutProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        WorkoutLoggedTopic,
			RequiredAcks: kafka.RequireOne,
			Balancer:     &kafka.Hash{},
		},
	}
}

// Publish writes the event to the topic.
func (p *WorkoutProducer) Publish(ctx context.Context, event WorkoutLogged) error {
	msg, err := event.Message()
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close releases the underlying writer.
func (p *WorkoutProducer) Close() error {
	return p.writer.Close()
}
