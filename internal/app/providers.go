package app

import (
	"context"

	"github.com/hyeonlee/tansu/internal/interfaces"
	"github.com/hyeonlee/tansu/internal/models"
)

// marketRouter dispatches price lookups to the per-market provider.
// It implements interfaces.PriceProvider.
type marketRouter struct {
	local   interfaces.PriceProvider // KRX via Naver
	foreign interfaces.PriceProvider // US via Yahoo
}

func (r *marketRouter) GetQuote(ctx context.Context, symbol string, market models.Market) (*models.PriceQuote, error) {
	if market == models.MarketLocal {
		return r.local.GetQuote(ctx, symbol, market)
	}
	return r.foreign.GetQuote(ctx, symbol, market)
}
