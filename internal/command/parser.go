// Package command parses free-text chat messages into structured commands,
// keeping all text handling at the transport boundary.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hyeonlee/tansu/internal/models"
)

// ErrMalformedCommand is returned for any message that is not a recognized
// command. It is raised before any ledger access.
var ErrMalformedCommand = errors.New("unrecognized command")

// verbs maps both English and Korean command words onto their kind.
var verbs = map[string]models.CommandKind{
	"report": models.CommandReport,
	"리포트":    models.CommandReport,
	"포트폴리오":  models.CommandReport,
	"news":   models.CommandNews,
	"뉴스":     models.CommandNews,
}

var tradeVerbs = map[string]models.TradeSide{
	"buy":  models.SideBuy,
	"매수":   models.SideBuy,
	"sell": models.SideSell,
	"매도":   models.SideSell,
}

// Parse converts one chat message into a Command.
//
// Grammar:
//
//	report | news
//	buy  <symbol-or-name> <qty> <price>
//	sell <symbol-or-name> <qty> <price>
func Parse(text string) (*models.Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty message", ErrMalformedCommand)
	}

	verb := strings.ToLower(fields[0])

	if kind, ok := verbs[verb]; ok {
		if len(fields) != 1 {
			return nil, fmt.Errorf("%w: %q takes no arguments", ErrMalformedCommand, verb)
		}
		return &models.Command{Kind: kind}, nil
	}

	side, ok := tradeVerbs[verb]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedCommand, fields[0])
	}

	trade, err := parseTrade(fields[1:], side)
	if err != nil {
		return nil, err
	}
	return &models.Command{Kind: models.CommandTrade, Trade: trade}, nil
}

func parseTrade(args []string, side models.TradeSide) (*models.TradeInstruction, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("%w: expected <symbol> <qty> <price>", ErrMalformedCommand)
	}

	qty, err := decimal.NewFromString(args[1])
	if err != nil || qty.Sign() <= 0 {
		return nil, fmt.Errorf("%w: quantity %q must be a positive number", ErrMalformedCommand, args[1])
	}

	price, err := decimal.NewFromString(args[2])
	if err != nil || price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price %q must be a positive number", ErrMalformedCommand, args[2])
	}

	return &models.TradeInstruction{
		Key:      args[0],
		Quantity: qty,
		Price:    price,
		Side:     side,
	}, nil
}
