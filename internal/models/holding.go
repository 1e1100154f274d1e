// Package models defines data structures for Tansu
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Market identifies which currency domain a holding trades in.
type Market string

const (
	// MarketLocal is the KRX domestic market; prices are already in the
	// reporting currency (KRW).
	MarketLocal Market = "KR"
	// MarketForeign is the US market; prices are in USD and converted to
	// KRW using the current exchange rate.
	MarketForeign Market = "US"
)

// ClassifySymbol infers the market for a previously-unseen symbol.
// KRX instrument codes are exactly six digits (e.g. "035720" for Kakao);
// anything else is treated as a US ticker.
func ClassifySymbol(symbol string) Market {
	if len(symbol) == 6 && strings.IndexFunc(symbol, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1 {
		return MarketLocal
	}
	return MarketForeign
}

// Holding represents one ledger position with an average cost basis.
type Holding struct {
	Name      string          `json:"name"`
	Market    Market          `json:"market"`
	Symbol    string          `json:"symbol"`
	CostBasis decimal.Decimal `json:"cost_basis"` // weighted-average buy price per unit, native currency
	Quantity  decimal.Decimal `json:"quantity"`   // fractional units allowed; always > 0 while present
}

// Matches reports whether the holding answers to the given trade key.
// Symbol is checked before name.
func (h *Holding) Matches(key string) bool {
	return h.Symbol == key || h.Name == key
}

// Ledger is the ordered collection of holdings. Order is preserved across
// load/save cycles and defines first-match semantics for trade lookup.
type Ledger struct {
	Holdings []Holding `json:"holdings"`
}

// Find returns the index of the first holding matching key in ledger order,
// or -1 when no holding matches.
func (l *Ledger) Find(key string) int {
	for i := range l.Holdings {
		if l.Holdings[i].Matches(key) {
			return i
		}
	}
	return -1
}

// Remove deletes the holding at index i, preserving the order of the rest.
func (l *Ledger) Remove(i int) {
	l.Holdings = append(l.Holdings[:i], l.Holdings[i+1:]...)
}
