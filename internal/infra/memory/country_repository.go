package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"flagquiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CountryLoader fetches the country reference dataset from a backing
// store (e.g., Postgres or a static file).
type CountryLoader interface {
	LoadCountries(ctx context.Context) ([]domain.CountryRecord, error)
}

// CountryRepository caches the dataset with a TTL so the loader is not
// hit on every session start.
type CountryRepository struct {
	loader CountryLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cache     []domain.CountryRecord
	expiresAt time.Time
}

func NewCountryRepository(loader CountryLoader, ttl time.Duration) *CountryRepository {
	return &CountryRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CountryRepository) GetCountries(ctx context.Context) ([]domain.CountryRecord, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cache != nil && r.expiresAt.After(now) {
		countries := r.cache
		r.mu.RUnlock()
		return countries, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("countries", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cache != nil && r.expiresAt.After(now) {
			countries := r.cache
			r.mu.RUnlock()
			return countries, nil
		}
		r.mu.RUnlock()

		countries, err := r.loader.LoadCountries(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache = countries
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.CountryRecord), nil
}

func (r *CountryRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCountryLoader serves a fixed dataset; it backs tests, the play
// command, and deployments without a configured database.
type StaticCountryLoader struct {
	countries []domain.CountryRecord
}

func NewStaticCountryLoader(countries []domain.CountryRecord) *StaticCountryLoader {
	return &StaticCountryLoader{countries: countries}
}

func (l *StaticCountryLoader) LoadCountries(_ context.Context) ([]domain.CountryRecord, error) {
	if len(l.countries) == 0 {
		return nil, domain.ErrDataUnavailable
	}
	return l.countries, nil
}
