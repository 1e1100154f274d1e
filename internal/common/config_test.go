package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tansu.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, 14, config.Report.IndicatorWindow)
	assert.Equal(t, 1450.0, config.Report.FallbackFXRate)
	assert.Equal(t, "30 8 * * *", config.Briefing.Cron)
	assert.Equal(t, "https://finance.naver.com", config.Clients.Naver.BaseURL)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
[ledger]
path = "/var/lib/tansu"

[report]
indicator_window = 7
fallback_fx_rate = 1300.0

[clients.telegram]
token = "abc"
chat_id = "123"
poll_timeout = "10s"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/tansu", config.Ledger.Path)
	assert.Equal(t, 7, config.Report.IndicatorWindow)
	assert.Equal(t, 1300.0, config.Report.FallbackFXRate)
	assert.Equal(t, "abc", config.Clients.Telegram.Token)
	assert.Equal(t, 10.0, config.Clients.Telegram.GetPollTimeout().Seconds())

	// Unspecified sections keep defaults
	assert.Equal(t, "https://query1.finance.yahoo.com", config.Clients.Yahoo.BaseURL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TANSU_TELEGRAM_TOKEN", "env-token")
	t.Setenv("TANSU_TELEGRAM_CHAT_ID", "env-chat")

	path := writeConfig(t, `
[clients.telegram]
token = "file-token"
chat_id = "file-chat"
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", config.Clients.Telegram.Token)
	assert.Equal(t, "env-chat", config.Clients.Telegram.ChatID)
}

func TestValidate(t *testing.T) {
	config := NewDefaultConfig()
	assert.Error(t, config.Validate(), "telegram credentials are required")

	config.Clients.Telegram.Token = "t"
	config.Clients.Telegram.ChatID = "c"
	assert.NoError(t, config.Validate())

	config.Report.IndicatorWindow = 0
	assert.Error(t, config.Validate())
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "not toml [[[")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
