package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifySymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   Market
	}{
		{symbol: "035720", want: MarketLocal},
		{symbol: "379810", want: MarketLocal},
		{symbol: "TSLA", want: MarketForeign},
		{symbol: "QQQ", want: MarketForeign},
		{symbol: "12345", want: MarketForeign},   // five digits
		{symbol: "1234567", want: MarketForeign}, // seven digits
		{symbol: "03572A", want: MarketForeign},  // digit-like with letter
		{symbol: "", want: MarketForeign},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySymbol(tt.symbol))
		})
	}
}

func TestLedgerFind(t *testing.T) {
	led := Ledger{Holdings: []Holding{
		{Name: "Kakao", Symbol: "035720"},
		{Name: "035720", Symbol: "005930"}, // pathological: name equals another's symbol
		{Name: "Tesla", Symbol: "TSLA"},
	}}

	// First match in ledger order wins, symbol checked before name per holding.
	assert.Equal(t, 0, led.Find("035720"))
	assert.Equal(t, 0, led.Find("Kakao"))
	assert.Equal(t, 2, led.Find("TSLA"))
	assert.Equal(t, 2, led.Find("Tesla"))
	assert.Equal(t, -1, led.Find("NVDA"))
}

func TestLedgerRemove(t *testing.T) {
	led := Ledger{Holdings: []Holding{
		{Symbol: "A", Quantity: decimal.NewFromInt(1)},
		{Symbol: "B", Quantity: decimal.NewFromInt(2)},
		{Symbol: "C", Quantity: decimal.NewFromInt(3)},
	}}

	led.Remove(1)

	assert.Len(t, led.Holdings, 2)
	assert.Equal(t, "A", led.Holdings[0].Symbol)
	assert.Equal(t, "C", led.Holdings[1].Symbol)
}
