// Package app wires configuration, clients, and services into the running bot.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyeonlee/tansu/internal/clients/gemini"
	"github.com/hyeonlee/tansu/internal/clients/naver"
	"github.com/hyeonlee/tansu/internal/clients/telegram"
	"github.com/hyeonlee/tansu/internal/clients/yahoo"
	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
	"github.com/hyeonlee/tansu/internal/services/ledger"
	"github.com/hyeonlee/tansu/internal/services/news"
	"github.com/hyeonlee/tansu/internal/services/report"
	"github.com/hyeonlee/tansu/internal/storage"
)

// App holds all initialized services and clients.
type App struct {
	Config *common.Config
	Logger *common.Logger

	Store         interfaces.LedgerStore
	NaverClient   *naver.Client
	YahooClient   *yahoo.Client
	Telegram      *telegram.Client
	LedgerService interfaces.LedgerService
	ReportService interfaces.ReportService
	NewsService   interfaces.NewsService
}

// NewApp initializes everything from the given config path. An empty path
// falls back to TANSU_CONFIG, then tansu.toml beside the binary.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	if configPath == "" {
		configPath = os.Getenv("TANSU_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binaryDir(), "tansu.toml")
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := common.NewLogger(config.Logging.Level)

	store, err := storage.NewFileLedgerStore(logger, &config.Ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}

	naverClient := naver.NewClient(
		naver.WithBaseURL(config.Clients.Naver.BaseURL),
		naver.WithRateLimit(config.Clients.Naver.RateLimit),
		naver.WithTimeout(config.Clients.Naver.GetTimeout()),
		naver.WithLogger(logger),
	)

	yahooClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithRange(config.Clients.Yahoo.Range),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
		yahoo.WithLogger(logger),
	)

	telegramClient := telegram.NewClient(
		config.Clients.Telegram.Token,
		config.Clients.Telegram.ChatID,
		telegram.WithPollTimeout(config.Clients.Telegram.GetPollTimeout()),
		telegram.WithLogger(logger),
	)

	// Gemini is optional: without a key the news digest is headlines only.
	var summarizer interfaces.Summarizer
	if config.Clients.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(ctx, config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini unavailable, news digests will not be summarized")
		} else {
			summarizer = geminiClient
		}
	}

	prices := &marketRouter{local: naverClient, foreign: yahooClient}

	a := &App{
		Config:        config,
		Logger:        logger,
		Store:         store,
		NaverClient:   naverClient,
		YahooClient:   yahooClient,
		Telegram:      telegramClient,
		LedgerService: ledger.NewService(store, logger),
		ReportService: report.NewService(store, prices, naverClient, logger, &config.Report),
		NewsService:   news.NewService(naverClient, summarizer, logger),
	}

	logger.Info().Str("version", common.GetFullVersion()).Msg("Tansu initialized")
	return a, nil
}

func binaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
