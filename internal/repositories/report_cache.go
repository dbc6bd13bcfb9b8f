package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// ReportCacheRepository keeps rendered reports in Redis
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached reports
}

// NewReportCacheRepository creates a new repository instance with the given TTL
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func reportKey(username string) string {
	return fmt.Sprintf("report:%s", username)
}

// Get fetches the cached report of a user
func (r *ReportCacheRepository) Get(ctx context.Context, username string) (*models.DailyReport, error) {
	key := reportKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrReportNotCached
		}
		return nil, err
	}

	var report models.DailyReport
	if err := json.Unmarshal(val, &report); err != nil {
		logger.Log.Infow("cache get", "key", key, "size", len(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "size", len(val), "error", nil)

	return &report, nil
}

// Set caches the report of a user with expiration
func (r *ReportCacheRepository) Set(ctx context.Context, report *models.DailyReport) error {
	key := reportKey(report.Username)

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "size", len(data), "ttl", r.exp, "error", err)

	return err
}

// Invalidate drops the cached report of a user
func (r *ReportCacheRepository) Invalidate(ctx context.Context, username string) error {
	key := reportKey(username)

	removed, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow("cache del", "key", key, "removed", removed, "error", err)

	return err
}
