package postgres

import (
	"context"
	"fmt"
	"time"

	"opportunity-recommender/internal/models"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"
)

// UpsertOpportunity inserts or replaces an opportunity by id. Callers are
// responsible for flushing recommendation caches afterwards.
func (s *Store) UpsertOpportunity(ctx context.Context, opp *models.Opportunity) error {
	query := `
		INSERT INTO opportunities (
			id, title, type, organization, category_slug, tags, location,
			is_remote, experience_level, skills_required, eligibility_criteria,
			deadline, created_at, is_featured, is_active, view_count, application_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			type = EXCLUDED.type,
			organization = EXCLUDED.organization,
			category_slug = EXCLUDED.category_slug,
			tags = EXCLUDED.tags,
			location = EXCLUDED.location,
			is_remote = EXCLUDED.is_remote,
			experience_level = EXCLUDED.experience_level,
			skills_required = EXCLUDED.skills_required,
			eligibility_criteria = EXCLUDED.eligibility_criteria,
			deadline = EXCLUDED.deadline,
			is_featured = EXCLUDED.is_featured,
			is_active = EXCLUDED.is_active
	`

	createdAt := opp.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sess.
		InsertBySql(query,
			opp.ID,
			opp.Title,
			opp.Type,
			opp.Organization,
			opp.CategorySlug,
			opp.Tags,
			opp.Location,
			opp.IsRemote,
			opp.ExperienceLevel,
			opp.SkillsRequired,
			opp.Eligibility,
			opp.Deadline,
			createdAt,
			opp.IsFeatured,
			opp.IsActive,
			opp.ViewCount,
			opp.ApplicationCount,
		).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to upsert opportunity",
			zap.Int64("opportunity_id", opp.ID),
			zap.Error(err),
		)
		return fmt.Errorf("upsert opportunity: %w", err)
	}

	return nil
}

func (s *Store) GetOpportunity(ctx context.Context, opportunityID int64) (*models.Opportunity, error) {
	var opp models.Opportunity

	err := s.sess.
		Select("*").
		From("opportunities").
		Where("id = ?", opportunityID).
		LoadOneContext(ctx, &opp)

	if err == dbr.ErrNotFound {
		return nil, nil
	}

	if err != nil {
		s.logger.Error("failed to get opportunity",
			zap.Int64("opportunity_id", opportunityID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get opportunity: %w", err)
	}

	return &opp, nil
}

// Candidates returns active opportunities for the matching engine. Expired
// listings are excluded unless showExpired is set; finer narrowing happens
// in-memory inside the engine.
func (s *Store) Candidates(ctx context.Context, showExpired bool) ([]models.Opportunity, error) {
	stmt := s.sess.
		Select("*").
		From("opportunities").
		Where("is_active = TRUE")

	if !showExpired {
		stmt = stmt.Where("deadline >= CURRENT_DATE")
	}

	var opportunities []models.Opportunity
	_, err := stmt.OrderBy("id").LoadContext(ctx, &opportunities)
	if err != nil {
		s.logger.Error("failed to load candidate opportunities", zap.Error(err))
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	return opportunities, nil
}

// SearchOpportunities performs a keyword search over title, organization and
// the required skills list.
func (s *Store) SearchOpportunities(ctx context.Context, query string, limit int) ([]models.Opportunity, error) {
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + query + "%"
	var opportunities []models.Opportunity
	_, err := s.sess.
		Select("*").
		From("opportunities").
		Where("is_active = TRUE AND deadline >= CURRENT_DATE").
		Where("title ILIKE ? OR organization ILIKE ? OR skills_required::text ILIKE ?", pattern, pattern, pattern).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		LoadContext(ctx, &opportunities)

	if err != nil {
		s.logger.Error("failed to search opportunities",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, fmt.Errorf("search opportunities: %w", err)
	}

	return opportunities, nil
}

func (s *Store) IncrementViewCount(ctx context.Context, opportunityID int64) error {
	_, err := s.sess.
		Update("opportunities").
		Set("view_count", dbr.Expr("view_count + 1")).
		Where("id = ?", opportunityID).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to increment view count",
			zap.Int64("opportunity_id", opportunityID),
			zap.Error(err),
		)
		return fmt.Errorf("increment view count: %w", err)
	}

	return nil
}

// RecordApplication registers a user's application, enforcing one application
// per user per opportunity, and bumps the denormalized counter.
func (s *Store) RecordApplication(ctx context.Context, userID, opportunityID int64) error {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.RollbackUnlessCommitted()

	result, err := tx.
		InsertBySql(`
			INSERT INTO opportunity_applications (user_id, opportunity_id, applied_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id, opportunity_id) DO NOTHING`,
			userID, opportunityID,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("record application: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("record application: %w", err)
	}
	if inserted == 0 {
		return ErrAlreadyApplied
	}

	_, err = tx.
		Update("opportunities").
		Set("application_count", dbr.Expr("application_count + 1")).
		Where("id = ?", opportunityID).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("bump application count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit application: %w", err)
	}

	s.logger.Info("application recorded",
		zap.Int64("user_id", userID),
		zap.Int64("opportunity_id", opportunityID),
	)

	return nil
}

// DeactivateExpired marks past-deadline opportunities inactive and returns
// how many rows changed.
func (s *Store) DeactivateExpired(ctx context.Context) (int64, error) {
	result, err := s.sess.
		Update("opportunities").
		Set("is_active", false).
		Where("is_active = TRUE AND deadline < CURRENT_DATE").
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to deactivate expired opportunities", zap.Error(err))
		return 0, fmt.Errorf("deactivate expired: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deactivate expired: %w", err)
	}

	return affected, nil
}

// ErrAlreadyApplied is returned when a user applies to the same opportunity twice.
var ErrAlreadyApplied = fmt.Errorf("already applied to this opportunity")
