package models

import "github.com/shopspring/decimal"

// PriceQuote is the per-holding result of a market lookup. It is never
// persisted; a provider failure is represented by a nil Price, not an error,
// so one bad symbol cannot abort a report cycle.
type PriceQuote struct {
	// Price is the current price in the holding's native currency,
	// or nil when the provider could not supply one.
	Price *decimal.Decimal

	// History holds daily closing prices, oldest first. Populated only for
	// foreign-market holdings and may be shorter than the indicator window.
	History []float64
}

// HasPrice reports whether a live price was obtained.
func (q *PriceQuote) HasPrice() bool {
	return q != nil && q.Price != nil
}
