// Package interfaces defines service contracts for Tansu
package interfaces

import (
	"context"

	"github.com/hyeonlee/tansu/internal/models"
)

// PriceProvider resolves a live quote for one holding. Absence of data is
// part of the contract: a failed lookup returns a quote with a nil price
// (and an error for logging), never a panic or a poisoned report.
type PriceProvider interface {
	// GetQuote returns the current price and, for foreign-market symbols,
	// a chronological daily close history.
	GetQuote(ctx context.Context, symbol string, market models.Market) (*models.PriceQuote, error)
}

// RateProvider supplies the reporting-currency exchange rate.
type RateProvider interface {
	// GetUSDKRW returns the current KRW-per-USD rate.
	GetUSDKRW(ctx context.Context) (float64, error)
}

// NewsProvider supplies headline text for the news digest.
type NewsProvider interface {
	// TopHeadlines returns up to limit economy headlines, most prominent first.
	TopHeadlines(ctx context.Context, limit int) ([]string, error)
}

// MarketOverview supplies index-level context for the daily briefing.
type MarketOverview interface {
	// GetKOSPI returns the current KOSPI index level.
	GetKOSPI(ctx context.Context) (float64, error)
}

// Summarizer condenses headline text into a short free-text digest.
type Summarizer interface {
	Summarize(ctx context.Context, headlines []string) (string, error)
}

// Notifier delivers rendered text to the user. Delivery failure is logged
// by callers and otherwise ignored.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// UpdateSource yields incoming chat messages.
type UpdateSource interface {
	// Poll blocks up to the configured long-poll timeout and returns any
	// new message texts received since the previous call.
	Poll(ctx context.Context) ([]string, error)
}
