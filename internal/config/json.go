package config

import (
	"encoding/json"
	"os"

	"github.com/pixelstudio/asia/internal/flagx"
	"github.com/pixelstudio/asia/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "60s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	DatabasePath        string          `json:"database_path"`
	HistoryPollInterval *timex.Duration `json:"history_poll_interval"`
	RefreshDelay        *timex.Duration `json:"refresh_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Fields absent from the JSON file keep their current values. Read or
// unmarshal errors panic; LoadConfig runs before any UI exists, so a broken
// config file should stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.HistoryPollInterval != nil {
		cfg.HistoryPollInterval = jc.HistoryPollInterval.Duration
	}
	if jc.RefreshDelay != nil {
		cfg.RefreshDelay = jc.RefreshDelay.Duration
	}
}
