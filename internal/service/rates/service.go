// Package rates answers pair-rate queries from stored history. Storage
// only holds quotes against one source currency; every other pair is
// derived by inverting or dividing those quotes.
package rates

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"service-fxrates/internal/models"
	ratecore "service-fxrates/internal/rates"
)

// Derived rates keep the scale of the stored quotes.
const rateScale int32 = 10

type Storage interface {
	GetLatest(ctx context.Context, base string, quotes []string) ([]models.StoredRate, error)
}

type Service struct {
	st     Storage
	source string
}

// New builds a converter over storage whose rows are quoted against
// source.
func New(st Storage, source string) *Service {
	return &Service{st: st, source: source}
}

func (s *Service) GetPairRate(ctx context.Context, base, quote string) (*models.PairRate, error) {
	from, err := ratecore.NormalizeCode(base)
	if err != nil {
		return nil, models.BizError("invalid_currency", "base: %v", err)
	}
	to, err := ratecore.NormalizeCode(quote)
	if err != nil {
		return nil, models.BizError("invalid_currency", "quote: %v", err)
	}
	if from == to {
		return nil, models.BizError("same_currency", "base and quote must be different")
	}

	source, err := ratecore.NormalizeCode(s.source)
	if err != nil {
		return nil, fmt.Errorf("source currency: %w", err)
	}

	// 1) source to any: the stored quote as is
	if from == source {
		r, err := s.latestQuote(ctx, source, to)
		if err != nil {
			return nil, err
		}
		return &models.PairRate{
			Base:  from,
			Quote: to,
			Rate:  r.Rate,
			Date:  &r.AsOfDate,
		}, nil
	}

	// 2) any to source: invert the stored quote
	if to == source {
		r, err := s.latestQuote(ctx, source, from)
		if err != nil {
			return nil, err
		}
		if r.Rate.IsZero() {
			return nil, fmt.Errorf("rate %s/%s is zero, cannot invert", source, from)
		}
		return &models.PairRate{
			Base:  from,
			Quote: to,
			Rate:  decimal.NewFromInt(1).DivRound(r.Rate, rateScale),
			Date:  &r.AsOfDate,
		}, nil
	}

	// 3) any to any: divide the two stored quotes
	rFrom, err := s.latestQuote(ctx, source, from)
	if err != nil {
		return nil, err
	}
	rTo, err := s.latestQuote(ctx, source, to)
	if err != nil {
		return nil, err
	}
	if rFrom.Rate.IsZero() {
		return nil, fmt.Errorf("rate %s/%s is zero, cannot divide", source, from)
	}

	return &models.PairRate{
		Base:  from,
		Quote: to,
		Rate:  rTo.Rate.DivRound(rFrom.Rate, rateScale),
		Date:  &rFrom.AsOfDate,
	}, nil
}

func (s *Service) latestQuote(ctx context.Context, source, quote string) (*models.StoredRate, error) {
	rows, err := s.st.GetLatest(ctx, source, []string{quote})
	if err != nil {
		return nil, fmt.Errorf("get latest %s/%s: %w", source, quote, err)
	}
	if len(rows) == 0 {
		return nil, models.BizError("rate_not_available", "latest rate %s/%s not found", source, quote)
	}
	r := rows[0]
	return &r, nil
}
