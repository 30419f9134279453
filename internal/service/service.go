// Package service ties the matching engine to storage: it resolves profiles,
// delegates ranking to the engine, and keeps the recommendation cache honest
// by flushing it on every opportunity mutation.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"opportunity-recommender/internal/matching"
	"opportunity-recommender/internal/models"
	"opportunity-recommender/internal/storage/postgres"
	"opportunity-recommender/internal/storage/redis"
)

// ErrProfileNotFound is returned when the user has no stored profile.
var ErrProfileNotFound = fmt.Errorf("user profile not found")

type Service struct {
	store  *postgres.Store
	cache  *redis.Cache
	engine *matching.Engine
	logger *zap.Logger
}

func New(store *postgres.Store, cache *redis.Cache, engine *matching.Engine, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		engine: engine,
		logger: logger,
	}
}

// Recommendations returns a ranked page of opportunities for the user. The
// engine drops sub-threshold results before ranking, so pagination counts
// only relevant matches.
func (s *Service) Recommendations(ctx context.Context, userID int64, spec *matching.FilterSpec, ordering string, page, pageSize int) (*matching.RecommendationPage, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.GetRecommendations(ctx, *profile, spec, ordering, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("get recommendations: %w", err)
	}

	return result, nil
}

// MatchScholarships ranks all stored scholarships against the user's
// scholarship profile. This path is computed fresh every call.
func (s *Service) MatchScholarships(ctx context.Context, userID int64) ([]matching.ScoredScholarship, error) {
	profile, err := s.scholarshipProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	scholarships, err := s.store.ListScholarships(ctx)
	if err != nil {
		return nil, err
	}

	return matching.RankScholarships(*profile, scholarships, time.Now()), nil
}

// SaveOpportunity creates or updates a listing and eagerly flushes every
// memoized recommendation list.
func (s *Service) SaveOpportunity(ctx context.Context, opp *models.Opportunity) error {
	if !models.IsValidType(opp.Type) {
		return fmt.Errorf("unknown opportunity type %q", opp.Type)
	}

	if err := s.store.UpsertOpportunity(ctx, opp); err != nil {
		return err
	}

	s.invalidateRecommendations(ctx)
	return nil
}

// Apply records a user's application and flushes recommendation caches,
// since application_count feeds back into stored listings.
func (s *Service) Apply(ctx context.Context, userID, opportunityID int64) error {
	if err := s.store.RecordApplication(ctx, userID, opportunityID); err != nil {
		return err
	}

	s.invalidateRecommendations(ctx)
	return nil
}

// View returns a single opportunity and bumps its view counter. A failed
// counter bump is logged, not surfaced.
func (s *Service) View(ctx context.Context, opportunityID int64) (*models.Opportunity, error) {
	opp, err := s.store.GetOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, nil
	}

	if err := s.store.IncrementViewCount(ctx, opportunityID); err != nil {
		s.logger.Warn("view count bump failed",
			zap.Int64("opportunity_id", opportunityID),
			zap.Error(err),
		)
	}

	return opp, nil
}

// Search performs a keyword search over active listings.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]models.Opportunity, error) {
	return s.store.SearchOpportunities(ctx, query, limit)
}

// SaveScholarship creates or updates a scholarship listing. Scholarship
// rankings are computed fresh on every match, so no cache flush is needed.
func (s *Service) SaveScholarship(ctx context.Context, scholarship *models.Scholarship) error {
	return s.store.UpsertScholarship(ctx, scholarship)
}

// SaveScholarshipProfile stores the user's scholarship profile and drops the
// cached copy.
func (s *Service) SaveScholarshipProfile(ctx context.Context, profile *models.ScholarshipProfile) error {
	if err := s.store.SaveScholarshipProfile(ctx, profile); err != nil {
		return err
	}

	if err := s.cache.InvalidateScholarshipProfile(ctx, profile.UserID); err != nil {
		s.logger.Warn("scholarship profile cache invalidation failed",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
	}

	return nil
}

// SaveProfile stores the user's profile and drops both the cached profile
// copy and their memoized recommendations.
func (s *Service) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return err
	}

	if err := s.cache.InvalidateProfile(ctx, profile.UserID); err != nil {
		s.logger.Warn("profile cache invalidation failed",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
	}

	s.invalidateRecommendations(ctx)
	return nil
}

// profile loads the user profile, preferring the cached copy.
func (s *Service) profile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	cached, err := s.cache.GetCachedProfile(ctx, userID)
	if err != nil {
		s.logger.Warn("profile cache read failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.cache.SetCachedProfile(ctx, profile); err != nil {
		s.logger.Warn("profile cache write failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	return profile, nil
}

func (s *Service) scholarshipProfile(ctx context.Context, userID int64) (*models.ScholarshipProfile, error) {
	cached, err := s.cache.GetCachedScholarshipProfile(ctx, userID)
	if err != nil {
		s.logger.Warn("scholarship profile cache read failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := s.store.GetScholarshipProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.cache.SetCachedScholarshipProfile(ctx, profile); err != nil {
		s.logger.Warn("scholarship profile cache write failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	return profile, nil
}

// invalidateRecommendations is best-effort: a failed flush means briefly
// stale recommendations, which the TTL bounds anyway.
func (s *Service) invalidateRecommendations(ctx context.Context) {
	if err := s.engine.InvalidateAll(ctx); err != nil {
		s.logger.Warn("recommendation cache flush failed", zap.Error(err))
	}
}
