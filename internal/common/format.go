package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKRW renders a reporting-currency amount with thousands separators
// and no decimal places (KRW has no minor unit in practice).
func FormatKRW(v decimal.Decimal) string {
	return groupDigits(v.Round(0).String()) + " KRW"
}

// FormatSignedPct renders a percentage with an explicit sign, e.g. "+3.25%".
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatQty renders a quantity trimming trailing zeros ("2", "0.547").
func FormatQty(v decimal.Decimal) string {
	return v.String()
}

// groupDigits inserts comma separators into the integer part of s.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
