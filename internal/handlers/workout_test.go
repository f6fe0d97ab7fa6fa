package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/flexitout/workout-tracker/internal/jwt"
	"github.com/flexitout/workout-tracker/internal/models"
)

func TestAddWorkoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success with client date format",
			body: AddWorkoutRequest{ExerciseType: "squat", Reps: 10, Date: "2024-01-01T00:00:00"},
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
				svc.EXPECT().
					Add(gomock.Any(), int64(1), "squat", 10, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
					Return(int64(5), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "Workout added successfully"},
		},
		{
			name: "success with RFC3339 date",
			body: AddWorkoutRequest{ExerciseType: "pushup", Reps: 20, Date: "2024-02-01T10:30:00Z"},
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
				svc.EXPECT().
					Add(gomock.Any(), int64(1), "pushup", 20, time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)).
					Return(int64(6), nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "Workout added successfully"},
		},
		{
			name: "invalid date",
			body: AddWorkoutRequest{ExerciseType: "squat", Reps: 10, Date: "yesterday"},
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid date format"},
		},
		{
			name: "negative reps",
			body: AddWorkoutRequest{ExerciseType: "squat", Reps: -1, Date: "2024-01-01T00:00:00"},
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "reps must be non-negative"},
		},
		{
			name:    "invalid json",
			rawBody: "{invalid json}",
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
		{
			name: "missing token",
			body: AddWorkoutRequest{ExerciseType: "squat", Reps: 10, Date: "2024-01-01T00:00:00"},
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Unauthorized"},
		},
		{
			name: "service error",
			body: AddWorkoutRequest{ExerciseType: "squat", Reps: 10, Date: "2024-01-01T00:00:00"},
			mockSetup: func(tokener *MockWorkoutTokener, svc *MockWorkoutAdder) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
				svc.EXPECT().
					Add(gomock.Any(), int64(1), "squat", 10, gomock.Any()).
					Return(int64(0), errors.New("db error"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockWorkoutTokener(ctrl)
			mockSvc := NewMockWorkoutAdder(ctrl)
			tt.mockSetup(mockTokener, mockSvc)

			handler := NewAddWorkoutHandler(mockSvc, mockTokener)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/workouts", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/workouts", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestListWorkoutsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns owner workouts", func(t *testing.T) {
		mockTokener := NewMockWorkoutTokener(ctrl)
		mockSvc := NewMockWorkoutLister(ctrl)

		workouts := []models.WorkoutDB{
			{WorkoutID: 1, UserID: 1, ExerciseType: "squat", Reps: 10, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{WorkoutID: 2, UserID: 1, ExerciseType: "pushup", Reps: 20, Date: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)},
		}

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
		mockSvc.EXPECT().List(gomock.Any(), int64(1)).Return(workouts, nil)

		handler := NewListWorkoutsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var items []WorkoutItem
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
		assert.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0].ID)
		assert.Equal(t, "squat", items[0].ExerciseType)
		assert.Equal(t, 10, items[0].Reps)
		assert.Equal(t, "2024-01-01T00:00:00", items[0].Date)
		assert.Equal(t, "2024-01-02T12:00:00", items[1].Date)
	})

	t.Run("empty list encodes as empty array", func(t *testing.T) {
		mockTokener := NewMockWorkoutTokener(ctrl)
		mockSvc := NewMockWorkoutLister(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 2}, nil)
		mockSvc.EXPECT().List(gomock.Any(), int64(2)).Return(nil, nil)

		handler := NewListWorkoutsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		mockTokener := NewMockWorkoutTokener(ctrl)
		mockSvc := NewMockWorkoutLister(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("authorization header missing"))

		handler := NewListWorkoutsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 401, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockTokener := NewMockWorkoutTokener(ctrl)
		mockSvc := NewMockWorkoutLister(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "tok").Return(&jwt.Claims{UserID: 1}, nil)
		mockSvc.EXPECT().List(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		handler := NewListWorkoutsHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
	})
}
