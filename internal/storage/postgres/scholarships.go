package postgres

import (
	"context"
	"fmt"

	"opportunity-recommender/internal/models"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"
)

func (s *Store) ListScholarships(ctx context.Context) ([]models.Scholarship, error) {
	var scholarships []models.Scholarship

	_, err := s.sess.
		Select("*").
		From("scholarships").
		OrderBy("id").
		LoadContext(ctx, &scholarships)

	if err != nil {
		s.logger.Error("failed to list scholarships", zap.Error(err))
		return nil, fmt.Errorf("list scholarships: %w", err)
	}

	return scholarships, nil
}

func (s *Store) UpsertScholarship(ctx context.Context, scholarship *models.Scholarship) error {
	query := `
		INSERT INTO scholarships (
			id, title, provider, location, course, degree_level,
			nationality, gpa, amount, deadline, overview, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			provider = EXCLUDED.provider,
			location = EXCLUDED.location,
			course = EXCLUDED.course,
			degree_level = EXCLUDED.degree_level,
			nationality = EXCLUDED.nationality,
			gpa = EXCLUDED.gpa,
			amount = EXCLUDED.amount,
			deadline = EXCLUDED.deadline,
			overview = EXCLUDED.overview
	`

	_, err := s.sess.
		InsertBySql(query,
			scholarship.ID,
			scholarship.Title,
			scholarship.Provider,
			scholarship.Location,
			scholarship.Course,
			scholarship.DegreeLevel,
			scholarship.Nationality,
			scholarship.GPA,
			scholarship.Amount,
			scholarship.Deadline,
			scholarship.Overview,
		).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to upsert scholarship",
			zap.Int64("scholarship_id", scholarship.ID),
			zap.Error(err),
		)
		return fmt.Errorf("upsert scholarship: %w", err)
	}

	return nil
}

func (s *Store) GetScholarshipProfile(ctx context.Context, userID int64) (*models.ScholarshipProfile, error) {
	var profile models.ScholarshipProfile

	err := s.sess.
		Select("*").
		From("scholarship_profiles").
		Where("user_id = ?", userID).
		LoadOneContext(ctx, &profile)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get scholarship profile",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get scholarship profile: %w", err)
	}

	return &profile, nil
}

func (s *Store) SaveScholarshipProfile(ctx context.Context, profile *models.ScholarshipProfile) error {
	query := `
		INSERT INTO scholarship_profiles (
			user_id, gpa, location, course, degree_level,
			nationality, financial_need, eligibility_tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			gpa = EXCLUDED.gpa,
			location = EXCLUDED.location,
			course = EXCLUDED.course,
			degree_level = EXCLUDED.degree_level,
			nationality = EXCLUDED.nationality,
			financial_need = EXCLUDED.financial_need,
			eligibility_tags = EXCLUDED.eligibility_tags
	`

	_, err := s.sess.
		InsertBySql(query,
			profile.UserID,
			profile.GPA,
			profile.Location,
			profile.Course,
			profile.DegreeLevel,
			profile.Nationality,
			profile.FinancialNeed,
			profile.EligibilityTags,
		).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to save scholarship profile",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("save scholarship profile: %w", err)
	}

	return nil
}
