package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"flagquiz-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CountryLoader loads country JSONB rows from Postgres.
type CountryLoader struct {
	pool *pgxpool.Pool
}

func NewCountryLoader(pool *pgxpool.Pool) *CountryLoader {
	return &CountryLoader{pool: pool}
}

func (l *CountryLoader) LoadCountries(ctx context.Context) ([]domain.CountryRecord, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM countries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	defer rows.Close()

	var countries []domain.CountryRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		var record domain.CountryRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("unmarshal country: %w", err)
		}
		countries = append(countries, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	if len(countries) == 0 {
		return nil, domain.ErrDataUnavailable
	}
	return countries, nil
}
