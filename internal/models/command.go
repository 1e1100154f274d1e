package models

import "github.com/shopspring/decimal"

// TradeSide distinguishes buys from sells.
type TradeSide string

const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// CommandKind tags the parsed command union.
type CommandKind string

const (
	CommandReport CommandKind = "report"
	CommandNews   CommandKind = "news"
	CommandTrade  CommandKind = "trade"
)

// Command is the structured form of an incoming chat message. Parsing happens
// at the transport boundary so services never see raw text.
type Command struct {
	Kind  CommandKind
	Trade *TradeInstruction // set only when Kind == CommandTrade
}

// TradeInstruction carries one buy or sell request.
type TradeInstruction struct {
	Key      string // symbol or display name
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Side     TradeSide
}
