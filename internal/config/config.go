package config

import "time"

// Config holds runtime settings for the A.S.I.A. terminal client.
//
// Fields:
//   - APIBaseURL: base URL of the conversational backend (POST /chat, GET /history).
//   - DatabasePath: path of the local SQLite file holding accounts and the session.
//   - HistoryPollInterval: how often the history panel is refreshed while signed in.
//   - RefreshDelay: how long after an authenticated send the one-shot history
//     refresh is scheduled, giving the backend time to record the exchange.
type Config struct {
	APIBaseURL          string
	DatabasePath        string
	HistoryPollInterval time.Duration
	RefreshDelay        time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5001"
	c.DatabasePath = "asia.db"
	c.HistoryPollInterval = 60 * time.Second
	c.RefreshDelay = 400 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
