// Package config loads runtime configuration for the A.S.I.A. terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the conversational backend
//	-d string   path of the local SQLite database file
//	-i int      history poll interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:5001",
//	  "database_path": "asia.db",
//	  "history_poll_interval": "60s",
//	  "refresh_delay": "400ms"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
