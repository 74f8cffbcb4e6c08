package dashboardsvc

import (
	"context"
	"encoding/json"
	"time"

	statsrepo "lendify/repository/stats"
	"lendify/util/cache"
)

const (
	summaryKey = "lendify:dashboard:summary"
	summaryTTL = 15 * time.Second
)

type Service interface {
	Summary(ctx context.Context) (*statsrepo.Summary, error)
}

type service struct {
	r statsrepo.Repo
	c *cache.Cache
}

func New(r statsrepo.Repo, c *cache.Cache) Service { return &service{r: r, c: c} }

// Summary serves aggregate counts through a short-TTL cache. Stale
// values are fine here: dashboard reads are display-only and never
// feed borrow/return decisions.
func (s *service) Summary(ctx context.Context) (*statsrepo.Summary, error) {
	if raw, ok := s.c.Get(ctx, summaryKey); ok {
		sum := &statsrepo.Summary{}
		if err := json.Unmarshal([]byte(raw), sum); err == nil {
			return sum, nil
		}
	}

	sum, err := s.r.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(sum); err == nil {
		s.c.Set(ctx, summaryKey, string(raw), summaryTTL)
	}
	return sum, nil
}
