package config

import (
	"os"

	"github.com/hitec/nhplus/internal/retention"
)

// Config holds runtime settings for NHPlus.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	RetentionYears int
	LogLevel       string
	LogFormat      string
	QueueSize      int
}

// LoadDefaults populates c with the defaults of a local installation.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "db/nursingHome.db"
	c.RetentionYears = retention.MinYears
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.QueueSize = 16
}

// LoadConfig builds a Config from defaults, environment, JSON file and flags
// taken from os.Args. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
