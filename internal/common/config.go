// Package common provides shared utilities for Tansu
package common

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Tansu
type Config struct {
	Ledger   LedgerConfig   `toml:"ledger"`
	Clients  ClientsConfig  `toml:"clients"`
	Report   ReportConfig   `toml:"report"`
	Logging  LoggingConfig  `toml:"logging"`
	Briefing BriefingConfig `toml:"briefing"`
}

// LedgerConfig holds ledger persistence configuration
type LedgerConfig struct {
	Path string `toml:"path"`
}

// ReportConfig holds analysis tuning
type ReportConfig struct {
	IndicatorWindow int     `toml:"indicator_window"` // RSI window, default 14
	FallbackFXRate  float64 `toml:"fallback_fx_rate"` // KRW per USD when the live rate is unavailable
}

// BriefingConfig holds the scheduled morning briefing settings
type BriefingConfig struct {
	Enabled bool   `toml:"enabled"`
	Cron    string `toml:"cron"` // cron expression, evaluated in Asia/Seoul
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Telegram TelegramConfig `toml:"telegram"`
	Naver    NaverConfig    `toml:"naver"`
	Yahoo    YahooConfig    `toml:"yahoo"`
	Gemini   GeminiConfig   `toml:"gemini"`
}

// TelegramConfig holds the bot transport configuration
type TelegramConfig struct {
	Token       string `toml:"token"`
	ChatID      string `toml:"chat_id"`
	PollTimeout string `toml:"poll_timeout"` // long-poll duration string
}

// GetPollTimeout parses and returns the long-poll timeout
func (c *TelegramConfig) GetPollTimeout() time.Duration {
	d, err := time.ParseDuration(c.PollTimeout)
	if err != nil {
		return 25 * time.Second
	}
	return d
}

// NaverConfig holds the Naver Finance scraper configuration
type NaverConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *NaverConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// YahooConfig holds the Yahoo Finance chart API configuration
type YahooConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	Range     string `toml:"range"` // history range, e.g. "3mo"
}

// GetTimeout parses and returns the timeout duration
func (c *YahooConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Ledger: LedgerConfig{Path: "data"},
		Report: ReportConfig{
			IndicatorWindow: 14,
			FallbackFXRate:  1450,
		},
		Briefing: BriefingConfig{
			Enabled: true,
			Cron:    "30 8 * * *",
		},
		Clients: ClientsConfig{
			Telegram: TelegramConfig{PollTimeout: "25s"},
			Naver: NaverConfig{
				BaseURL:   "https://finance.naver.com",
				RateLimit: 2,
				Timeout:   "15s",
			},
			Yahoo: YahooConfig{
				BaseURL:   "https://query1.finance.yahoo.com",
				RateLimit: 2,
				Timeout:   "15s",
				Range:     "3mo",
			},
			Gemini: GeminiConfig{Model: "gemini-2.0-flash"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML config file, applies defaults for missing fields,
// then applies environment overrides for secrets.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No file: run on defaults + environment
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides lets secrets come from the environment so they never
// need to live in the config file.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("TANSU_TELEGRAM_TOKEN"); v != "" {
		config.Clients.Telegram.Token = v
	}
	if v := os.Getenv("TANSU_TELEGRAM_CHAT_ID"); v != "" {
		config.Clients.Telegram.ChatID = v
	}
	if v := os.Getenv("TANSU_GEMINI_API_KEY"); v != "" {
		config.Clients.Gemini.APIKey = v
	}
	if v := os.Getenv("TANSU_LEDGER_PATH"); v != "" {
		config.Ledger.Path = v
	}
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.Clients.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (set clients.telegram.token or TANSU_TELEGRAM_TOKEN)")
	}
	if c.Clients.Telegram.ChatID == "" {
		return fmt.Errorf("telegram chat_id is required (set clients.telegram.chat_id or TANSU_TELEGRAM_CHAT_ID)")
	}
	if c.Report.IndicatorWindow <= 0 {
		return fmt.Errorf("report.indicator_window must be positive")
	}
	if c.Report.FallbackFXRate <= 0 {
		return fmt.Errorf("report.fallback_fx_rate must be positive")
	}
	return nil
}
