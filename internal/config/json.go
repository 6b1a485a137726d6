package config

import (
	"encoding/json"
	"os"

	"github.com/hitec/nhplus/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key apart from a zero value.
type JsonConfig struct {
	DatabaseDriver *string `json:"database_driver"`
	DatabaseDSN    *string `json:"database_dsn"`
	RetentionYears *int    `json:"retention_years"`
	LogLevel       *string `json:"log_level"`
	LogFormat      *string `json:"log_format"`
	QueueSize      *int    `json:"queue_size"`
}

// parseJson overlays Config with the JSON file named by -c / -config, if any.
// Read or unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDriver != nil {
		cfg.DatabaseDriver = *jc.DatabaseDriver
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.RetentionYears != nil {
		cfg.RetentionYears = *jc.RetentionYears
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.QueueSize != nil {
		cfg.QueueSize = *jc.QueueSize
	}
}
