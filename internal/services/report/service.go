// Package report builds and renders the priority-sorted portfolio report.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
	"github.com/hyeonlee/tansu/internal/models"
	"github.com/hyeonlee/tansu/internal/services/analysis"
	"github.com/hyeonlee/tansu/internal/services/ledger"
)

// Service implements ReportService. Each report cycle reads the ledger,
// reprices every holding sequentially, classifies it, and sorts the result.
// Per-holding lookup failures degrade that holding only; the report always
// completes.
type Service struct {
	store  interfaces.LedgerStore
	prices interfaces.PriceProvider
	rates  interfaces.RateProvider
	logger *common.Logger

	indicatorWindow int
	fallbackFXRate  decimal.Decimal
	now             func() time.Time // injectable clock for testing
}

// NewService creates a new report service.
func NewService(store interfaces.LedgerStore, prices interfaces.PriceProvider, rates interfaces.RateProvider, logger *common.Logger, config *common.ReportConfig) *Service {
	window := config.IndicatorWindow
	if window <= 0 {
		window = analysis.DefaultRSIWindow
	}
	return &Service{
		store:           store,
		prices:          prices,
		rates:           rates,
		logger:          logger,
		indicatorWindow: window,
		fallbackFXRate:  decimal.NewFromFloat(config.FallbackFXRate),
		now:             time.Now,
	}
}

// BuildReport runs the full analysis pipeline over the current ledger.
func (s *Service) BuildReport(ctx context.Context) (*models.Report, error) {
	led, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	rate, rateStale := s.resolveFXRate(ctx)

	rep := &models.Report{
		GeneratedAt: s.now(),
		FXRate:      rate,
		FXRateStale: rateStale,
	}

	for i := range led.Holdings {
		result := s.analyzeHolding(ctx, &led.Holdings[i], rate)
		rep.TotalValue = rep.TotalValue.Add(result.NormalizedValue)
		rep.TotalCost = rep.TotalCost.Add(result.NormalizedCost)
		rep.Positions = append(rep.Positions, result)
	}

	// Primary key: urgency tier, most urgent first. Secondary key: profit
	// rate ascending, so the most distressed positions lead their tier.
	// SliceStable keeps ledger order for equal tuples.
	sort.SliceStable(rep.Positions, func(i, j int) bool {
		a, b := rep.Positions[i], rep.Positions[j]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.ProfitRatePct < b.ProfitRatePct
	})

	rep.TotalProfitRatePct = aggregateProfitPct(rep.TotalValue, rep.TotalCost)
	return rep, nil
}

// resolveFXRate fetches the live USD/KRW rate, substituting the configured
// fallback when the provider fails. Analysis never aborts for a missing rate.
func (s *Service) resolveFXRate(ctx context.Context) (decimal.Decimal, bool) {
	live, err := s.rates.GetUSDKRW(ctx)
	if err != nil || live <= 0 {
		s.logger.Warn().Err(err).
			Str("fallback", s.fallbackFXRate.String()).
			Msg("Exchange rate unavailable, using fallback")
		return s.fallbackFXRate, true
	}
	return decimal.NewFromFloat(live), false
}

// analyzeHolding prices and classifies one position. A failed quote falls
// back to the cost basis, pinning the profit rate at exactly 0% for that
// entry — visible via PriceStale rather than silently hidden.
func (s *Service) analyzeHolding(ctx context.Context, h *models.Holding, rate decimal.Decimal) models.AnalysisResult {
	result := models.AnalysisResult{Holding: *h}

	quote, err := s.prices.GetQuote(ctx, h.Symbol, h.Market)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", h.Symbol).Msg("Quote lookup failed")
	}

	if quote.HasPrice() {
		result.CurrentPrice = *quote.Price
	} else {
		result.CurrentPrice = h.CostBasis
		result.PriceStale = true
	}

	result.ProfitRatePct = profitRatePct(result.CurrentPrice, h.CostBasis)

	if quote != nil && len(quote.History) > 0 {
		if v, ok := analysis.RSI(quote.History, s.indicatorWindow); ok {
			result.Indicator = &v
		}
	}

	result.Label, result.Tier = analysis.Classify(result.ProfitRatePct, result.Indicator)

	result.NormalizedValue = ledger.Normalize(result.CurrentPrice.Mul(h.Quantity), h.Market, rate)
	result.NormalizedCost = ledger.Normalize(h.CostBasis.Mul(h.Quantity), h.Market, rate)
	return result
}

// profitRatePct returns (price - cost) / cost * 100. A zero cost basis has
// no defined profit rate; it reports 0 rather than dividing by zero.
func profitRatePct(price, cost decimal.Decimal) float64 {
	if cost.Sign() == 0 {
		return 0
	}
	rate, _ := price.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}

// aggregateProfitPct returns the portfolio-level profit rate, or 0 when the
// total cost is zero (empty ledger).
func aggregateProfitPct(value, cost decimal.Decimal) float64 {
	if cost.Sign() <= 0 {
		return 0
	}
	rate, _ := value.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100)).Float64()
	return rate
}
