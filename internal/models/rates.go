package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoredRate is one base/quote rate row as kept in history storage.
// AsOfDate is the day the rate was quoted for, formatted YYYY-MM-DD.
type StoredRate struct {
	BaseCCY   string
	QuoteCCY  string
	Rate      decimal.Decimal
	AsOfDate  string
	FetchedAt time.Time
}

// LatestRates is the in-memory rate table as served over HTTP.
type LatestRates struct {
	Base      string             `json:"base"`
	FetchedAt time.Time          `json:"fetched_at"`
	Rates     map[string]float64 `json:"rates"`
}

// PairRate is one computed base/quote rate with the quote date it was
// derived from, when known.
type PairRate struct {
	Base  string          `json:"base"`
	Quote string          `json:"quote"`
	Rate  decimal.Decimal `json:"rate"`
	Date  *string         `json:"date,omitempty"`
}
