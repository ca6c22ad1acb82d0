package refresh

import (
	"context"
	"time"

	"service-fxrates/internal/rates"
)

type RatesProvider interface {
	Live(ctx context.Context, currencies []string) (string, error)
}

type HistoryStorage interface {
	UpsertTable(ctx context.Context, base string, asOf time.Time, table rates.Table) error
}

type SnapshotStore interface {
	Save(data string) (string, error)
}
