package matching

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"opportunity-recommender/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MinRelevantScore drops noise from recommendation lists: results
	// scoring at or below it never enter the ranking, so pagination counts
	// only relevant matches.
	MinRelevantScore = 10

	// RecommendationTTL bounds how stale a memoized ranking may get before
	// it is recomputed.
	RecommendationTTL = 30 * time.Minute

	recommendationKeyPrefix = "recommendations:"
	defaultOrdering         = "-score"
)

// Source supplies candidate opportunities. The engine treats the fetch as a
// single synchronous call returning a materialized collection; timeouts and
// retries belong to the implementation.
type Source interface {
	Candidates(ctx context.Context, showExpired bool) ([]models.Opportunity, error)
}

// Cache memoizes computed recommendation lists. Implementations must support
// TTL expiry and pattern deletion. Get reports whether the key was present.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// RecommendationPage is one page of a ranked recommendation list.
type RecommendationPage struct {
	Results    []ScoredResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}

type Pagination struct {
	Count       int  `json:"count"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	PageSize    int  `json:"page_size"`
	Next        bool `json:"next"`
	Previous    bool `json:"previous"`
}

// Engine orchestrates the recommendation pipeline: consult cache, filter
// candidates, score, sort, memoize, paginate.
type Engine struct {
	source Source
	cache  Cache
	scorer *Scorer
	logger *zap.Logger
}

func NewEngine(source Source, cache Cache, scorer *Scorer, logger *zap.Logger) *Engine {
	return &Engine{
		source: source,
		cache:  cache,
		scorer: scorer,
		logger: logger,
	}
}

// GetRecommendations returns a page of opportunities ranked for the profile.
// Results at or below MinRelevantScore are dropped before ranking. The full
// sorted list is memoized under a key derived from (user, filters, ordering);
// pagination is applied after the cache, so every page of the same query
// shares one computation. Cache failures degrade to an uncached recompute,
// never an error.
func (e *Engine) GetRecommendations(ctx context.Context, profile models.UserProfile, spec *FilterSpec, ordering string, page, pageSize int) (*RecommendationPage, error) {
	if spec == nil {
		spec = &FilterSpec{}
	}
	ordering = normalizeOrdering(ordering)

	key := recommendationKey(profile.UserID, spec, ordering)

	var cached []ScoredResult
	found, err := e.cache.Get(ctx, key, &cached)
	if err != nil {
		e.logger.Warn("recommendation cache read failed, recomputing",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
	}
	if found && err == nil {
		return paginate(cached, page, pageSize), nil
	}

	candidates, err := e.source.Candidates(ctx, spec.ShowExpired)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := ApplyFilters(candidates, spec, now)

	results := make([]ScoredResult, 0, len(filtered))
	for _, opp := range filtered {
		if opp.ID == 0 {
			e.logger.Warn("skipping opportunity without id", zap.String("title", opp.Title))
			continue
		}
		scored := e.scorer.Score(opp, profile, now)
		if scored.Score <= MinRelevantScore {
			continue
		}
		results = append(results, scored)
	}

	sortResults(results, ordering)

	if err := e.cache.Set(ctx, key, results, RecommendationTTL); err != nil {
		e.logger.Warn("recommendation cache write failed",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
	}

	return paginate(results, page, pageSize), nil
}

// InvalidateAll flushes every memoized recommendation list. Called on any
// opportunity mutation: correctness is prioritized over cache efficiency.
func (e *Engine) InvalidateAll(ctx context.Context) error {
	return e.cache.DeleteByPattern(ctx, recommendationKeyPrefix+"*")
}

// normalizeOrdering validates the requested sort field against a whitelist,
// silently falling back to the default for anything unknown.
func normalizeOrdering(ordering string) string {
	if ordering == "" {
		return defaultOrdering
	}
	field := strings.TrimPrefix(ordering, "-")
	switch field {
	case "score", "deadline", "title":
		return ordering
	}
	return defaultOrdering
}

// sortResults orders results by the requested field. Ties always break by
// opportunity id ascending so paginated output is stable.
func sortResults(results []ScoredResult, ordering string) {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		var less, equal bool
		switch field {
		case "deadline":
			less = a.Opportunity.Deadline.Before(b.Opportunity.Deadline)
			equal = a.Opportunity.Deadline.Equal(b.Opportunity.Deadline)
		case "title":
			less = a.Opportunity.Title < b.Opportunity.Title
			equal = a.Opportunity.Title == b.Opportunity.Title
		default:
			less = a.Score < b.Score
			equal = a.Score == b.Score
		}

		if equal {
			return a.Opportunity.ID < b.Opportunity.ID
		}
		if desc {
			return !less
		}
		return less
	})
}

func paginate(results []ScoredResult, page, pageSize int) *RecommendationPage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	count := len(results)
	totalPages := (count + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return &RecommendationPage{
		Results: results[start:end],
		Pagination: Pagination{
			Count:       count,
			CurrentPage: page,
			TotalPages:  totalPages,
			PageSize:    pageSize,
			Next:        page < totalPages,
			Previous:    page > 1,
		},
	}
}

// recommendationKey derives the deterministic cache key for one query. The
// filter spec is normalized (tag and skill sets sorted) before hashing so
// equivalent specs share an entry.
func recommendationKey(userID int64, spec *FilterSpec, ordering string) string {
	normalized := *spec
	normalized.Tags = sortedCopy(spec.Tags)
	normalized.Skills = sortedCopy(spec.Skills)

	payload, _ := json.Marshal(struct {
		UserID   int64       `json:"user_id"`
		Filters  *FilterSpec `json:"filters"`
		Ordering string      `json:"ordering"`
	}{userID, &normalized, ordering})

	digest := sha256.Sum256(payload)
	return recommendationKeyPrefix + hex.EncodeToString(digest[:])
}

func sortedCopy(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
