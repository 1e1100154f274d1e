// Package interfaces defines service contracts for Tansu
package interfaces

import (
	"context"

	"github.com/hyeonlee/tansu/internal/models"
)

// LedgerStore owns the durable holdings list. It carries no business logic:
// load, replace, save. Writes are atomic so readers never observe a
// partially-written ledger.
type LedgerStore interface {
	// Load returns the current ledger. A missing file yields an empty
	// ledger, not an error.
	Load(ctx context.Context) (*models.Ledger, error)

	// Save replaces the persisted ledger with the given one.
	Save(ctx context.Context, ledger *models.Ledger) error
}
