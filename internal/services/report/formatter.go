package report

import (
	"fmt"
	"strings"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/models"
)

var tierHeadings = map[int]string{
	models.TierUrgent: "🚨 Act now",
	models.TierReview: "🔔 Review",
	models.TierHold:   "✅ Hold",
}

// RenderReport formats a report for chat delivery. Positions arrive already
// sorted by (tier, profit rate); rendering only groups them under tier
// headings.
func (s *Service) RenderReport(rep *models.Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[Portfolio Report — %s]\n", rep.GeneratedAt.Format("2006-01-02 15:04")))

	if len(rep.Positions) == 0 {
		sb.WriteString("No holdings in the ledger.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Total value: %s\n", common.FormatKRW(rep.TotalValue)))
	sb.WriteString(fmt.Sprintf("Total cost:  %s\n", common.FormatKRW(rep.TotalCost)))
	sb.WriteString(fmt.Sprintf("Overall P&L: %s\n", common.FormatSignedPct(rep.TotalProfitRatePct)))
	if rep.FXRateStale {
		sb.WriteString(fmt.Sprintf("(FX rate unavailable — using fallback %s KRW/USD)\n", rep.FXRate))
	}

	lastTier := 0
	for _, pos := range rep.Positions {
		if pos.Tier != lastTier {
			sb.WriteString(fmt.Sprintf("\n%s\n", tierHeadings[pos.Tier]))
			lastTier = pos.Tier
		}
		sb.WriteString(formatPosition(&pos))
	}

	return sb.String()
}

func formatPosition(pos *models.AnalysisResult) string {
	h := pos.Holding

	line := fmt.Sprintf("- %s (%s) %s | %s",
		h.Name, h.Symbol,
		common.FormatSignedPct(pos.ProfitRatePct),
		common.FormatKRW(pos.NormalizedValue))

	if pos.Indicator != nil {
		line += fmt.Sprintf(" | RSI %.1f", *pos.Indicator)
	}
	if pos.PriceStale {
		line += " | price unavailable, shown at cost"
	}

	return line + "\n  " + pos.Label + "\n"
}
