package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flexitout/workout-tracker/internal/logger"
	"github.com/flexitout/workout-tracker/internal/models"
)

// ProfileWriter defines write operations for user profiles.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID int64, name, level string) error
}

// ProfileCacher defines the cache used for profile reads.
type ProfileCacher interface {
	Get(ctx context.Context, userID int64) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
	Invalidate(ctx context.Context, userID int64) error
}

// ProfileService serves profile reads and updates with a cache in front
// of the credential store.
type ProfileService struct {
	reader UserReader
	writer ProfileWriter
	cache  ProfileCacher
}

// NewProfileService creates a new ProfileService instance. cache may be nil.
func NewProfileService(reader UserReader, writer ProfileWriter, cache ProfileCacher) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Get returns the profile of the given user. Cache errors degrade to a
// database read, never to a request failure.
func (svc *ProfileService) Get(ctx context.Context, userID int64) (*models.UserDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("profile cache read failed", "user_id", userID, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("profile cache write failed", "user_id", userID, "err", err)
		}
	}

	return user, nil
}

// Update changes name and level of the given user and returns the updated
// record. Empty fields keep their current value.
func (svc *ProfileService) Update(ctx context.Context, userID int64, name, level string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if name == "" {
		name = user.Name
	}
	if level == "" {
		level = user.Level
	}

	if err := svc.writer.UpdateProfile(ctx, userID, name, level); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("profile cache invalidation failed", "user_id", userID, "err", err)
		}
	}

	user.Name = name
	user.Level = level
	return user, nil
}
