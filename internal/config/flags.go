package config

import (
	"flag"
	"os"
	"time"

	"github.com/pixelstudio/asia/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend (default from Config)
//	-d string   path of the local SQLite database
//	-i int      history poll interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	pollInterval := fs.Int("i", int(cfg.HistoryPollInterval.Seconds()), "history poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HistoryPollInterval = time.Duration(*pollInterval) * time.Second
}
