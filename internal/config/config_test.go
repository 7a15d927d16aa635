package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5001", c.APIBaseURL)
	assert.Equal(t, "asia.db", c.DatabasePath)
	assert.Equal(t, 60*time.Second, c.HistoryPollInterval)
	assert.Equal(t, 400*time.Millisecond, c.RefreshDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5001", cfg.APIBaseURL)
	assert.Equal(t, 60*time.Second, cfg.HistoryPollInterval)
}
