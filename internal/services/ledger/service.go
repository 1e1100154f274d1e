// Package ledger applies trade instructions to the holdings ledger.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
	"github.com/hyeonlee/tansu/internal/models"
)

// Trade-level errors. Both leave the ledger untouched.
var (
	ErrUnknownHolding       = errors.New("no holding matches the given symbol or name")
	ErrInsufficientQuantity = errors.New("sell quantity exceeds held quantity")
	ErrInvalidTrade         = errors.New("trade quantity and price must be positive")
)

// Service implements LedgerService with weighted-average cost accounting.
type Service struct {
	store  interfaces.LedgerStore
	logger *common.Logger
}

// NewService creates a new ledger service.
func NewService(store interfaces.LedgerStore, logger *common.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ApplyTrade executes one buy or sell against the persisted ledger.
// The sequence is load → mutate → save; a failed validation returns before
// any mutation so the persisted state is never partially written.
func (s *Service) ApplyTrade(ctx context.Context, trade *models.TradeInstruction) (string, error) {
	if trade.Quantity.Sign() <= 0 || trade.Price.Sign() <= 0 {
		return "", ErrInvalidTrade
	}

	led, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load ledger: %w", err)
	}

	var msg string
	switch trade.Side {
	case models.SideBuy:
		msg = s.applyBuy(led, trade)
	case models.SideSell:
		msg, err = s.applySell(led, trade)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown trade side %q", trade.Side)
	}

	if err := s.store.Save(ctx, led); err != nil {
		return "", fmt.Errorf("failed to persist ledger: %w", err)
	}

	s.logger.Info().
		Str("key", trade.Key).
		Str("side", string(trade.Side)).
		Str("qty", trade.Quantity.String()).
		Str("price", trade.Price.String()).
		Msg("Trade applied")

	return msg, nil
}

// applyBuy folds the purchase into an existing position's weighted-average
// cost basis, or opens a new position for an unseen symbol.
func (s *Service) applyBuy(led *models.Ledger, trade *models.TradeInstruction) string {
	i := led.Find(trade.Key)
	if i < 0 {
		market := models.ClassifySymbol(trade.Key)
		led.Holdings = append(led.Holdings, models.Holding{
			Name:      trade.Key,
			Market:    market,
			Symbol:    trade.Key,
			CostBasis: trade.Price,
			Quantity:  trade.Quantity,
		})
		return fmt.Sprintf("Opened %s (%s): %s units @ %s",
			trade.Key, market, trade.Quantity, trade.Price)
	}

	h := &led.Holdings[i]

	// new_cost = (old_cost*old_qty + price*qty) / (old_qty + qty)
	// Decimal arithmetic keeps repeated averaging drift-free.
	oldValue := h.CostBasis.Mul(h.Quantity)
	addValue := trade.Price.Mul(trade.Quantity)
	newQty := h.Quantity.Add(trade.Quantity)

	h.CostBasis = oldValue.Add(addValue).DivRound(newQty, 8)
	h.Quantity = newQty

	return fmt.Sprintf("Bought %s: now %s units, avg cost %s",
		h.Name, h.Quantity, h.CostBasis)
}

// applySell decrements quantity, removing the holding when it reaches
// exactly zero. Cost basis is unchanged on a partial disposal.
func (s *Service) applySell(led *models.Ledger, trade *models.TradeInstruction) (string, error) {
	i := led.Find(trade.Key)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownHolding, trade.Key)
	}

	h := &led.Holdings[i]
	switch h.Quantity.Cmp(trade.Quantity) {
	case -1:
		return "", fmt.Errorf("%w: have %s, tried to sell %s",
			ErrInsufficientQuantity, h.Quantity, trade.Quantity)
	case 0:
		name := h.Name
		led.Remove(i)
		return fmt.Sprintf("Sold out of %s: position closed", name), nil
	default:
		h.Quantity = h.Quantity.Sub(trade.Quantity)
		return fmt.Sprintf("Sold %s: %s units remain, avg cost %s",
			h.Name, h.Quantity, h.CostBasis), nil
	}
}
