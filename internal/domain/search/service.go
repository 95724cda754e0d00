package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/cache"
	"github.com/hms/hms/internal/platform/cyborg"
)

const defaultTopK = 10

// ErrEmptyQuery is returned when a search is attempted without a query.
var ErrEmptyQuery = errors.New("query is required")

// Searcher is the slice of the index client the service needs.
type Searcher interface {
	Search(ctx context.Context, query string, hospitalIDs []uuid.UUID, topK int) ([]cyborg.SearchResult, error)
}

type Service struct {
	searcher Searcher
	local    LocalRepository
	cache    cache.Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewService(searcher Searcher, local LocalRepository, c cache.Cache, cacheTTL time.Duration, logger zerolog.Logger) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &Service{
		searcher: searcher,
		local:    local,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// CrossTenant queries the index across all hospitals and redacts results
// belonging to hospitals other than the requester. Responses are cached
// post-redaction, keyed by requester, so a cached entry is only ever served
// back to the hospital it was redacted for.
func (s *Service) CrossTenant(ctx context.Context, requesterHospitalID uuid.UUID, query string, topK int) ([]cyborg.SearchResult, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	key := fmt.Sprintf("hms:search:%s:%d:%s", requesterHospitalID, topK, query)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var cached []cyborg.SearchResult
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	} else if err != nil {
		s.logger.Warn().Err(err).Msg("search cache read failed")
	}

	// An empty hospital filter means all hospitals.
	results, err := s.searcher.Search(ctx, query, nil, topK)
	if err != nil {
		return nil, err
	}

	redacted := Redact(requesterHospitalID, results)

	if raw, err := json.Marshal(redacted); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("search cache write failed")
		}
	}
	return redacted, nil
}

// Local runs the hospital-scoped substring search across clinical records.
func (s *Service) Local(ctx context.Context, hospitalID uuid.UUID, query string, limit int) (*LocalResults, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.local.Search(ctx, hospitalID, query, limit)
}
