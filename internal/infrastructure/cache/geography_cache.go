package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/pizzeria/backend/internal/domain/geography"
)

// Cache keys for the administrative-geography proxy
const (
	geoProvincesKey    = "geo:provinces"
	geoDistrictsKey    = "geo:districts:"
	geoWardsKey        = "geo:wards:"
	defaultGeoCacheTTL = 24 * time.Hour
)

// CachedDirectory wraps a geography.Directory with a keyed cache.
// Administrative units change rarely, so entries live under a long
// TTL. Cache failures are logged and the request falls through to
// the upstream directory.
type CachedDirectory struct {
	next   geography.Directory
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedDirectory decorates next with the given cache store
func NewCachedDirectory(next geography.Directory, store Store, ttl time.Duration, logger *zap.Logger) *CachedDirectory {
	if ttl <= 0 {
		ttl = defaultGeoCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedDirectory{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Provinces lists all provinces, served from cache when possible
func (d *CachedDirectory) Provinces(ctx context.Context) ([]geography.Province, error) {
	return cachedFetch(ctx, d, geoProvincesKey, d.next.Provinces)
}

// Districts lists the districts of a province
func (d *CachedDirectory) Districts(ctx context.Context, provinceCode string) ([]geography.District, error) {
	return cachedFetch(ctx, d, geoDistrictsKey+provinceCode, func(ctx context.Context) ([]geography.District, error) {
		return d.next.Districts(ctx, provinceCode)
	})
}

// Wards lists the wards of a district
func (d *CachedDirectory) Wards(ctx context.Context, districtCode string) ([]geography.Ward, error) {
	return cachedFetch(ctx, d, geoWardsKey+districtCode, func(ctx context.Context) ([]geography.Ward, error) {
		return d.next.Wards(ctx, districtCode)
	})
}

// cachedFetch serves key from the store, falling back to fetch on a
// miss and writing the result back under the directory TTL
func cachedFetch[T any](ctx context.Context, d *CachedDirectory, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if raw, ok, err := d.store.Get(ctx, key); err != nil {
		d.logger.Warn("geography cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var cached []T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// A corrupt entry is dropped and refetched.
		_ = d.store.Delete(ctx, key)
	}

	fetched, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(fetched); err == nil {
		if err := d.store.Set(ctx, key, raw, d.ttl); err != nil {
			d.logger.Warn("geography cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return fetched, nil
}

var _ geography.Directory = (*CachedDirectory)(nil)
