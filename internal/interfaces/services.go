// Package interfaces defines service contracts for Tansu
package interfaces

import (
	"context"

	"github.com/hyeonlee/tansu/internal/models"
)

// LedgerService applies trade instructions to the ledger.
type LedgerService interface {
	// ApplyTrade executes a buy or sell and persists the ledger on success.
	// The returned string is a user-facing status message.
	ApplyTrade(ctx context.Context, trade *models.TradeInstruction) (string, error)
}

// ReportService builds the priority-sorted portfolio report.
type ReportService interface {
	// BuildReport reprices all holdings, classifies each position, and
	// returns the sorted report model.
	BuildReport(ctx context.Context) (*models.Report, error)

	// RenderReport formats a report for delivery.
	RenderReport(report *models.Report) string
}

// NewsService produces the free-text news digest.
type NewsService interface {
	// Digest fetches headlines and returns a summarized briefing block.
	Digest(ctx context.Context) (string, error)
}
