package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hitec/nhplus/internal/flagx"
)

const (
	EnvDriver         = "NHPLUS_DB_DRIVER"
	EnvDSN            = "NHPLUS_DB_DSN"
	EnvRetentionYears = "NHPLUS_RETENTION_YEARS"
	EnvLogLevel       = "NHPLUS_LOG_LEVEL"
	EnvLogFormat      = "NHPLUS_LOG_FORMAT"
	EnvQueueSize      = "NHPLUS_QUEUE_SIZE"
)

const defaultEnvFile = ".env"

var envKeys = []string{EnvDriver, EnvDSN, EnvRetentionYears, EnvLogLevel, EnvLogFormat, EnvQueueSize}

// parseEnv overlays Config with NHPLUS_* variables. A missing default .env
// file is ignored; a missing file named on the command line panics.
func parseEnv(cfg *Config, args []string) {
	path := flagx.EnvFile(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		vals = map[string]string{}
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			vals[k] = v
		}
	}

	if v, ok := vals[EnvDriver]; ok {
		cfg.DatabaseDriver = v
	}
	if v, ok := vals[EnvDSN]; ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := vals[EnvRetentionYears]; ok {
		cfg.RetentionYears = mustAtoi(EnvRetentionYears, v)
	}
	if v, ok := vals[EnvLogLevel]; ok {
		cfg.LogLevel = v
	}
	if v, ok := vals[EnvLogFormat]; ok {
		cfg.LogFormat = v
	}
	if v, ok := vals[EnvQueueSize]; ok {
		cfg.QueueSize = mustAtoi(EnvQueueSize, v)
	}
}

func mustAtoi(key, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(key + ": " + err.Error())
	}
	return n
}
