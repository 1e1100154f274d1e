package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/hyeonlee/tansu/internal/models"
)

// Normalize converts a native-currency amount into the reporting currency.
// Local-market amounts pass through unchanged; foreign-market amounts are
// multiplied by the KRW-per-USD rate. The caller supplies a fallback rate
// when the live one is unavailable, so a missing rate never aborts analysis.
func Normalize(amount decimal.Decimal, market models.Market, usdkrw decimal.Decimal) decimal.Decimal {
	if market == models.MarketForeign {
		return amount.Mul(usdkrw)
	}
	return amount
}
