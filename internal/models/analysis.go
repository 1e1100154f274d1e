package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Urgency tiers for advisory classification. Tier 1 sorts first in reports.
const (
	TierUrgent = 1
	TierReview = 2
	TierHold   = 3
)

// AnalysisResult is the per-holding output of one report cycle. It is a pure
// derivation from the ledger and live market data and is never persisted.
type AnalysisResult struct {
	Holding Holding

	// CurrentPrice is the price used for valuation, in native currency.
	// When PriceStale is true this is the cost basis standing in for a
	// missing live quote, which pins the profit rate at exactly 0%.
	CurrentPrice decimal.Decimal
	PriceStale   bool

	// ProfitRatePct is (current - cost) / cost * 100.
	ProfitRatePct float64

	// Indicator is the 14-period RSI, or nil when the price history was
	// too short (always nil for local-market holdings).
	Indicator *float64

	Label string
	Tier  int

	// Normalized values are in the reporting currency (KRW).
	NormalizedValue decimal.Decimal
	NormalizedCost  decimal.Decimal
}

// Report is the full output of one report cycle, positions already sorted
// by (tier, profit rate).
type Report struct {
	GeneratedAt        time.Time
	FXRate             decimal.Decimal
	FXRateStale        bool
	TotalValue         decimal.Decimal
	TotalCost          decimal.Decimal
	TotalProfitRatePct float64
	Positions          []AnalysisResult
}
