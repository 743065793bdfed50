package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"flagquiz-service/internal/domain"
)

func TestCountryRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CountryLoader: NewStaticCountryLoader(sampleCountries()),
	}
	repo := NewCountryRepository(loader, time.Minute)

	countries, err := repo.GetCountries(context.Background())
	if err != nil {
		t.Fatalf("get countries: %v", err)
	}
	if len(countries) != 5 {
		t.Fatalf("expected 5 countries, got %d", len(countries))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCountries(context.Background()); err != nil {
		t.Fatalf("get countries 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestCountryRepositoryReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{
		CountryLoader: NewStaticCountryLoader(sampleCountries()),
	}
	repo := NewCountryRepository(loader, time.Nanosecond)

	if _, err := repo.GetCountries(context.Background()); err != nil {
		t.Fatalf("get countries: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := repo.GetCountries(context.Background()); err != nil {
		t.Fatalf("get countries after expiry: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls %d", loader.calls)
	}
}

func TestStaticLoaderSignalsDataUnavailable(t *testing.T) {
	repo := NewCountryRepository(NewStaticCountryLoader(nil), time.Minute)
	_, err := repo.GetCountries(context.Background())
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

type countingLoader struct {
	CountryLoader
	calls int
}

func (l *countingLoader) LoadCountries(ctx context.Context) ([]domain.CountryRecord, error) {
	l.calls++
	return l.CountryLoader.LoadCountries(ctx)
}

func sampleCountries() []domain.CountryRecord {
	return []domain.CountryRecord{
		{ID: "FR", Names: map[string]string{"en": "France"}, Region: "Europe", Population: 67750000},
		{ID: "DE", Names: map[string]string{"en": "Germany"}, Region: "Europe", Population: 83200000},
		{ID: "BR", Names: map[string]string{"en": "Brazil"}, Region: "Americas", Population: 214300000},
		{ID: "JP", Names: map[string]string{"en": "Japan"}, Region: "Asia", Population: 125700000},
		{ID: "KE", Names: map[string]string{"en": "Kenya"}, Region: "Africa", Population: 53010000},
	}
}
