package redis

import (
	"context"
	"fmt"
	"time"

	"opportunity-recommender/internal/models"
)

const (
	UserProfileCacheTTL        = 2 * time.Hour
	ScholarshipProfileCacheTTL = 2 * time.Hour
)

func UserProfileKey(userID int64) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

func ScholarshipProfileKey(userID int64) string {
	return fmt.Sprintf("profile:scholarship:%d", userID)
}

func (c *Cache) GetCachedProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var profile models.UserProfile
	found, err := c.Get(ctx, UserProfileKey(userID), &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (c *Cache) SetCachedProfile(ctx context.Context, profile *models.UserProfile) error {
	return c.Set(ctx, UserProfileKey(profile.UserID), profile, UserProfileCacheTTL)
}

func (c *Cache) InvalidateProfile(ctx context.Context, userID int64) error {
	return c.Delete(ctx, UserProfileKey(userID))
}

func (c *Cache) GetCachedScholarshipProfile(ctx context.Context, userID int64) (*models.ScholarshipProfile, error) {
	var profile models.ScholarshipProfile
	found, err := c.Get(ctx, ScholarshipProfileKey(userID), &profile)
	if err != nil || !found {
		return nil, err
	}
	return &profile, nil
}

func (c *Cache) SetCachedScholarshipProfile(ctx context.Context, profile *models.ScholarshipProfile) error {
	return c.Set(ctx, ScholarshipProfileKey(profile.UserID), profile, ScholarshipProfileCacheTTL)
}

func (c *Cache) InvalidateScholarshipProfile(ctx context.Context, userID int64) error {
	return c.Delete(ctx, ScholarshipProfileKey(userID))
}
