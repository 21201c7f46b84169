package geo

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
	"github.com/roadassist/dispatch/pkg/metrics"
)

const garageGeoKey = "garages:approved"

// searchRadiusKm bounds the candidate prefilter. Garages beyond this are
// not realistic dispatch candidates; the caller falls back to a full scan
// when the index errors or returns a result at capacity.
const searchRadiusKm = 500

type RedisGarageIndex struct {
	client  *redis.Client
	logger  logger.Logger
	metrics metrics.Metrics
}

func NewRedisGarageIndex(client *redis.Client, log logger.Logger, m metrics.Metrics) *RedisGarageIndex {
	return &RedisGarageIndex{client: client, logger: log, metrics: m}
}

func (r *RedisGarageIndex) Add(ctx context.Context, garageID string, location entity.Location) error {
	r.logger.Debug(ctx, "Redis GeoAdd",
		logger.String("garage_id", garageID),
		logger.Float64("lat", location.Latitude()),
		logger.Float64("lng", location.Longitude()),
	)

	err := r.client.GeoAdd(ctx, garageGeoKey, &redis.GeoLocation{
		Name:      garageID,
		Longitude: location.Longitude(),
		Latitude:  location.Latitude(),
	}).Err()
	if err != nil {
		r.logger.Error(ctx, "Redis GeoAdd failed", logger.WithError(err))
		return fmt.Errorf("geo index add: %w", err)
	}
	return nil
}

func (r *RedisGarageIndex) Remove(ctx context.Context, garageID string) error {
	err := r.client.ZRem(ctx, garageGeoKey, garageID).Err()
	if err != nil {
		r.logger.Error(ctx, "Redis ZRem failed", logger.WithError(err))
		return fmt.Errorf("geo index remove: %w", err)
	}
	return nil
}

func (r *RedisGarageIndex) Nearest(ctx context.Context, origin entity.Location, limit int) ([]string, error) {
	r.logger.Debug(ctx, "Redis GeoSearch query",
		logger.Float64("lat", origin.Latitude()),
		logger.Float64("lng", origin.Longitude()),
		logger.Int("limit", limit),
	)

	results, err := r.client.GeoSearch(ctx, garageGeoKey, &redis.GeoSearchQuery{
		Latitude:   origin.Latitude(),
		Longitude:  origin.Longitude(),
		Radius:     searchRadiusKm,
		RadiusUnit: "km",
		Sort:       "ASC",
		Count:      limit,
	}).Result()
	if err != nil {
		// An index miss sends the caller down the full-scan path.
		r.metrics.IncGeoIndexFallback()
		r.logger.Error(ctx, "Redis GeoSearch failed", logger.WithError(err))
		return nil, fmt.Errorf("geo index search: %w", err)
	}
	return results, nil
}
