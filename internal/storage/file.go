// Package storage provides file-based JSON persistence for the ledger.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/models"
)

const ledgerFileName = "portfolio.json"

// FileLedgerStore persists the ledger as a single JSON array of holdings,
// matching the original portfolio.json layout. Writes go through a temp
// file + rename so a crash mid-write never corrupts the ledger.
type FileLedgerStore struct {
	basePath string
	logger   *common.Logger
}

// NewFileLedgerStore creates the store and ensures the data directory exists.
func NewFileLedgerStore(logger *common.Logger, config *common.LedgerConfig) (*FileLedgerStore, error) {
	if err := os.MkdirAll(config.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", config.Path, err)
	}

	fs := &FileLedgerStore{
		basePath: config.Path,
		logger:   logger,
	}

	logger.Debug().Str("path", config.Path).Msg("Ledger store opened")
	return fs, nil
}

func (fs *FileLedgerStore) filePath() string {
	return filepath.Join(fs.basePath, ledgerFileName)
}

// Load reads the persisted ledger. A missing file is an empty ledger.
func (fs *FileLedgerStore) Load(_ context.Context) (*models.Ledger, error) {
	data, err := os.ReadFile(fs.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Ledger{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	var holdings []models.Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		return nil, fmt.Errorf("failed to parse ledger: %w", err)
	}

	return &models.Ledger{Holdings: holdings}, nil
}

// Save atomically replaces the persisted ledger.
func (fs *FileLedgerStore) Save(_ context.Context, ledger *models.Ledger) error {
	holdings := ledger.Holdings
	if holdings == nil {
		holdings = []models.Holding{}
	}

	jsonData, err := json.MarshalIndent(holdings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	jsonData = append(jsonData, '\n')

	tmpFile, err := os.CreateTemp(fs.basePath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(jsonData); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, fs.filePath()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace ledger: %w", err)
	}

	fs.logger.Debug().Int("holdings", len(holdings)).Msg("Ledger saved")
	return nil
}
