package rates

import (
	"context"

	"service-fxrates/internal/models"
)

type RatesCache interface {
	Latest() (models.LatestRates, bool)
}

type RateConverter interface {
	GetPairRate(ctx context.Context, base, quote string) (*models.PairRate, error)
}
