package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/report"
)

const reportTTL = 5 * time.Minute

// ReportCache stores rendered dashboards keyed by visibility scope.
// Key format: report:<scope> where scope is "all" or "village:<name>".
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached dashboard for a scope, or nil on a miss.
func (c *ReportCache) Get(ctx context.Context, scope string) (*report.Dashboard, error) {
	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var d report.Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	return &d, nil
}

// Set stores a dashboard for a scope (expires after reportTTL).
func (c *ReportCache) Set(ctx context.Context, scope string, d *report.Dashboard) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(scope), raw, reportTTL).Err()
}

// Invalidate drops the unrestricted scope and each given village scope.
// Every contribution write goes through here, keeping cached dashboards
// no staler than the last write.
func (c *ReportCache) Invalidate(ctx context.Context, villages ...domain.Village) error {
	keys := []string{c.key("all")}
	for _, v := range villages {
		keys = append(keys, c.key("village:"+string(v)))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *ReportCache) key(scope string) string {
	return "report:" + scope
}
