package postgres

import (
	"context"
	"fmt"
	"time"

	"opportunity-recommender/internal/models"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"
)

func (s *Store) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var profile models.UserProfile

	err := s.sess.
		Select("*").
		From("user_profiles").
		Where("user_id = ?", userID).
		LoadOneContext(ctx, &profile)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get profile",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

func (s *Store) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, skills, education, preferences, location, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			preferences = EXCLUDED.preferences,
			location = EXCLUDED.location,
			updated_at = NOW()
	`

	_, err := s.sess.
		InsertBySql(query,
			profile.UserID,
			profile.Skills,
			profile.Education,
			profile.Prefs,
			profile.Location,
		).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to save profile",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("save profile: %w", err)
	}

	profile.UpdatedAt = time.Now()

	s.logger.Info("profile saved", zap.Int64("user_id", profile.UserID))
	return nil
}
