// Package refresh runs the fetch-parse-store cycle: query the live
// endpoint once, parse the reply into a table, publish it to the
// in-memory cache and record it in history.
package refresh

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"service-fxrates/internal/logger"
	"service-fxrates/internal/rates"
)

const queryTimeout = 10 * time.Second

type Service struct {
	provider   RatesProvider
	parser     *rates.Parser
	cache      *rates.Cache
	history    HistoryStorage
	snapshots  SnapshotStore
	currencies []string
}

// New wires a refresher. snapshots may be nil when saving raw replies is
// turned off.
func New(
	provider RatesProvider,
	parser *rates.Parser,
	cache *rates.Cache,
	history HistoryStorage,
	snapshots SnapshotStore,
	currencies []string,
) *Service {
	return &Service{
		provider:   provider,
		parser:     parser,
		cache:      cache,
		history:    history,
		snapshots:  snapshots,
		currencies: currencies,
	}
}

// RefreshOnce performs one cycle. A fetch failure leaves the cache and
// history untouched; once the reply is parsed the cache is always
// freshened, even when recording history fails afterwards.
func (s *Service) RefreshOnce(ctx context.Context) error {
	defer func(started time.Time) {
		refreshDuration.Observe(time.Since(started).Seconds())
	}(time.Now())

	reqCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	fetchedAt := time.Now()
	data, err := s.provider.Live(reqCtx, s.currencies)
	if err != nil {
		return fmt.Errorf("live rates: %w", err)
	}

	table := s.parser.ParseAll(data)
	s.cache.Set(table)
	ratesLoaded.Set(float64(table.Len()))
	logger.Info("rates refreshed",
		zap.String("base", s.parser.Base()),
		zap.Int("quotes", table.Len()))

	if s.snapshots != nil {
		if name, err := s.snapshots.Save(data); err != nil {
			logger.Warn("could not save snapshot", zap.Error(err))
		} else {
			logger.Info("snapshot saved", zap.String("file", name))
		}
	}

	if err := s.history.UpsertTable(ctx, s.parser.Base(), fetchedAt, table); err != nil {
		return fmt.Errorf("save rates: %w", err)
	}
	return nil
}
