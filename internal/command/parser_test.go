package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonlee/tansu/internal/models"
)

func TestParseSimpleCommands(t *testing.T) {
	tests := []struct {
		text string
		kind models.CommandKind
	}{
		{text: "report", kind: models.CommandReport},
		{text: "REPORT", kind: models.CommandReport},
		{text: "리포트", kind: models.CommandReport},
		{text: "포트폴리오", kind: models.CommandReport},
		{text: "news", kind: models.CommandNews},
		{text: "뉴스", kind: models.CommandNews},
		{text: "  report  ", kind: models.CommandReport},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Nil(t, cmd.Trade)
		})
	}
}

func TestParseTrade(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		qty  string
		side models.TradeSide
	}{
		{name: "english buy", text: "buy TSLA 0.5 450.04", key: "TSLA", qty: "0.5", side: models.SideBuy},
		{name: "korean buy", text: "매수 035720 1 61360", key: "035720", qty: "1", side: models.SideBuy},
		{name: "english sell", text: "sell QQQ 0.172 607.82", key: "QQQ", qty: "0.172", side: models.SideSell},
		{name: "korean sell", text: "매도 NVDA 0.2 186.20", key: "NVDA", qty: "0.2", side: models.SideSell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.text)
			require.NoError(t, err)
			require.Equal(t, models.CommandTrade, cmd.Kind)
			require.NotNil(t, cmd.Trade)
			assert.Equal(t, tt.key, cmd.Trade.Key)
			assert.Equal(t, tt.side, cmd.Trade.Side)
			assert.Equal(t, tt.qty, cmd.Trade.Quantity.String())
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   "},
		{name: "unknown verb", text: "hello there"},
		{name: "report with arguments", text: "report now"},
		{name: "trade missing fields", text: "buy TSLA 1"},
		{name: "trade extra fields", text: "buy TSLA 1 100 extra"},
		{name: "non-numeric quantity", text: "buy TSLA one 100"},
		{name: "zero quantity", text: "buy TSLA 0 100"},
		{name: "negative quantity", text: "buy TSLA -1 100"},
		{name: "non-numeric price", text: "sell TSLA 1 cheap"},
		{name: "zero price", text: "sell TSLA 1 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, ErrMalformedCommand)
		})
	}
}
