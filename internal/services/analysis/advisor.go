package analysis

import "github.com/hyeonlee/tansu/internal/models"

// Decision-table thresholds. Indicator extremity always outranks profit,
// so an oversold or overbought signal lands in tier 1 regardless of P&L.
const (
	oversoldBelow   = 30.0
	overboughtAbove = 70.0
	deepLossPct     = -10.0
	stopLossPct     = -15.0
	takeProfitPct   = 15.0
)

// Classify maps (profit rate, indicator-or-absent) to an advisory label and
// urgency tier. Rules are evaluated top to bottom; first match wins.
// Local-market holdings never carry an indicator, so they only reach the
// profit-only branches.
func Classify(profitRatePct float64, indicator *float64) (string, int) {
	if indicator != nil {
		switch {
		case *indicator < oversoldBelow:
			if profitRatePct < deepLossPct {
				return "Oversold — buy-the-dip opportunity", models.TierUrgent
			}
			return "Oversold — basing", models.TierUrgent
		case *indicator > overboughtAbove:
			if profitRatePct > 0 {
				return "Overbought — consider taking profit", models.TierUrgent
			}
			return "Overbought — short-term spike, consider trim/stop-loss", models.TierUrgent
		default:
			return "Hold — neutral watch", models.TierHold
		}
	}

	switch {
	case profitRatePct < stopLossPct:
		return "Urgent — stop-loss / reassess position", models.TierUrgent
	case profitRatePct > takeProfitPct:
		return "Consider realizing gains", models.TierReview
	default:
		return "Hold", models.TierHold
	}
}
