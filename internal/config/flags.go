package config

import (
	"flag"

	"github.com/hitec/nhplus/internal/flagx"
)

var ownFlags = []string{"-t", "-d", "-r", "-l", "-f", "-q"}

// parseFlags populates Config from the flags it owns in args; other
// arguments are ignored. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("nhplus", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "t", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.IntVar(&cfg.RetentionYears, "r", cfg.RetentionYears, "retention period in years")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text or json)")
	fs.IntVar(&cfg.QueueSize, "q", cfg.QueueSize, "task queue size")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		panic(err)
	}
}
