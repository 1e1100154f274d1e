package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyeonlee/tansu/internal/models"
)

func TestNormalize(t *testing.T) {
	rate := dec("1432.50")

	tests := []struct {
		name     string
		amount   string
		market   models.Market
		expected string
	}{
		{name: "local passes through", amount: "61360", market: models.MarketLocal, expected: "61360"},
		{name: "foreign converts", amount: "100", market: models.MarketForeign, expected: "143250"},
		{name: "zero stays zero", amount: "0", market: models.MarketForeign, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(dec(tt.amount), tt.market, rate)
			assert.True(t, got.Equal(dec(tt.expected)), "got %s", got)
		})
	}
}
