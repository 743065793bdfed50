package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"flagquiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	poolKey      = "countries:pool"
	updatedAtKey = "countries:updated_at"
)

// DefaultFreshness is how long a cached country dataset stays valid.
const DefaultFreshness = 24 * time.Hour

// CountryLoader fetches the country reference dataset from a backing
// store (e.g., Postgres or a static file).
type CountryLoader interface {
	LoadCountries(ctx context.Context) ([]domain.CountryRecord, error)
}

// CountryRepository caches the country dataset in Redis as a JSON blob
// with a generation timestamp, falling back to the loader on miss.
// Stored as: SET countries:pool {json}  /  SET countries:updated_at {rfc3339}
type CountryRepository struct {
	client *redis.Client
	loader CountryLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCountryRepository(client *redis.Client, loader CountryLoader, ttl time.Duration) *CountryRepository {
	if ttl <= 0 {
		ttl = DefaultFreshness
	}
	return &CountryRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CountryRepository) GetCountries(ctx context.Context) ([]domain.CountryRecord, error) {
	if countries, ok := r.fromCache(ctx); ok {
		return countries, nil
	}

	result, err, _ := r.sf.Do(poolKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if countries, ok := r.fromCache(ctx); ok {
			return countries, nil
		}

		countries, err := r.loader.LoadCountries(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(countries)
		if err != nil {
			return nil, err
		}
		ttl := r.ttlWithJitter()
		pipe := r.client.Pipeline()
		pipe.Set(ctx, poolKey, data, ttl)
		pipe.Set(ctx, updatedAtKey, time.Now().UTC().Format(time.RFC3339), ttl)
		_, _ = pipe.Exec(ctx)

		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.CountryRecord), nil
}

// UpdatedAt returns the generation timestamp of the cached dataset, or
// the zero time when nothing is cached.
func (r *CountryRepository) UpdatedAt(ctx context.Context) time.Time {
	raw, err := r.client.Get(ctx, updatedAtKey).Result()
	if err != nil {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func (r *CountryRepository) fromCache(ctx context.Context) ([]domain.CountryRecord, bool) {
	raw, err := r.client.Get(ctx, poolKey).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	var countries []domain.CountryRecord
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, false
	}
	return countries, len(countries) > 0
}

func (r *CountryRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
