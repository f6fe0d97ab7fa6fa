package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/flexitout/workout-tracker/internal/models"
	"github.com/flexitout/workout-tracker/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			userName: "Alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "email already registered",
			userName:     "Bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: 1, Email: "bob@example.com"},
			wantErr:      services.ErrEmailAlreadyRegistered,
		},
		{
			name:      "reader error",
			userName:  "Eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			userName:  "Mallory",
			email:     "mallory@example.com",
			password:  "pass123",
			writerErr: errors.New("insert failed"),
			wantErr:   errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.readerErr == nil && tt.existingUser == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.userName, tt.email, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, passwordHash string) (int64, error) {
						// The stored digest must verify against the plaintext
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
						return int64(1), tt.writerErr
					})
			}

			err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	storedUser := &models.UserDB{
		UserID:       7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Level:        "Beginner",
	}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "correct-password",
			user:     storedUser,
			jwtToken: "signed-token",
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "whatever",
			wantErr:  services.ErrUserDoesNotExist,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			user:     storedUser,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "correct-password",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt error",
			email:    "alice@example.com",
			password: "correct-password",
			user:     storedUser,
			jwtErr:   errors.New("signing failed"),
			wantErr:  errors.New("signing failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.password == "correct-password" {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.jwtToken, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.jwtToken, token)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}
