package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"service-fxrates/internal/models"
	"service-fxrates/internal/rates"
)

// RateStorage keeps the dated history of fetched rate tables. One row per
// base/quote/day; refreshing within a day overwrites that day's row.
type RateStorage struct {
	pgpool *pgxpool.Pool
}

func NewRateStorage(pgpool *pgxpool.Pool) *RateStorage {
	return &RateStorage{pgpool: pgpool}
}

// UpsertTable stores one parsed table as the rates of record for asOf's
// date. The whole table lands in a single transaction.
func (s *RateStorage) UpsertTable(ctx context.Context, base string, asOf time.Time, table rates.Table) error {
	baseCode, err := rates.NormalizeCode(base)
	if err != nil {
		return fmt.Errorf("base currency: %w", err)
	}
	if asOf.IsZero() {
		return fmt.Errorf("as_of time is zero")
	}
	day := asOf.UTC().Format("2006-01-02")

	tx, err := s.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, quote := range table.Codes() {
		if quote == baseCode {
			continue
		}
		rate, _ := table.Rate(quote)

		_, err := tx.Exec(ctx, `
insert into fx_rate (base_ccy, quote_ccy, as_of_date, rate, fetched_at)
values ($1, $2, $3::date, $4::numeric, now())
on conflict (base_ccy, quote_ccy, as_of_date)
do update set
  rate = excluded.rate,
  fetched_at = now();
`, baseCode, quote, day, decimal.NewFromFloat(rate).String())
		if err != nil {
			return fmt.Errorf("upsert %s/%s @%s: %w", baseCode, quote, day, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetLatest returns the most recent stored rate for each requested quote.
// With no quotes it returns every quote stored for base.
func (s *RateStorage) GetLatest(ctx context.Context, base string, quotes []string) ([]models.StoredRate, error) {
	baseCode, err := rates.NormalizeCode(base)
	if err != nil {
		return nil, fmt.Errorf("base currency: %w", err)
	}

	if len(quotes) == 0 {
		rows, err := s.pgpool.Query(ctx, `
select distinct on (quote_ccy)
  base_ccy,
  quote_ccy,
  rate::text,
  to_char(as_of_date, 'YYYY-MM-DD') as as_of_date,
  fetched_at
from fx_rate
where base_ccy = $1
order by quote_ccy, as_of_date desc, fetched_at desc;
`, baseCode)
		if err != nil {
			return nil, fmt.Errorf("query latest rates: %w", err)
		}
		return collectRates(rows)
	}

	norm := make([]string, 0, len(quotes))
	for _, quote := range quotes {
		code, err := rates.NormalizeCode(quote)
		if err != nil {
			return nil, fmt.Errorf("quote currency: %w", err)
		}
		if code != baseCode {
			norm = append(norm, code)
		}
	}

	rows, err := s.pgpool.Query(ctx, `
select distinct on (quote_ccy)
  base_ccy,
  quote_ccy,
  rate::text,
  to_char(as_of_date, 'YYYY-MM-DD') as as_of_date,
  fetched_at
from fx_rate
where base_ccy = $1 and quote_ccy = any($2)
order by quote_ccy, as_of_date desc, fetched_at desc;
`, baseCode, norm)
	if err != nil {
		return nil, fmt.Errorf("query latest rates: %w", err)
	}
	return collectRates(rows)
}

func collectRates(rows pgx.Rows) ([]models.StoredRate, error) {
	defer rows.Close()

	var out []models.StoredRate
	for rows.Next() {
		var r models.StoredRate
		var rate string
		if err := rows.Scan(&r.BaseCCY, &r.QuoteCCY, &rate, &r.AsOfDate, &r.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.BaseCCY = strings.TrimSpace(r.BaseCCY)
		r.QuoteCCY = strings.TrimSpace(r.QuoteCCY)

		parsed, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("rate %s/%s: %w", r.BaseCCY, r.QuoteCCY, err)
		}
		r.Rate = parsed
		out = append(out, r)
	}
	return out, rows.Err()
}
