// Package config loads runtime configuration for the NHPlus binaries.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally read from a dotenv file. The file is
//     ".env" in the working directory unless -e / -env names another one;
//     variables already set in the process environment win over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Supported flags
//
//	-t string   database driver: sqlite or pgx
//	-d string   database DSN (SQLite file path or PostgreSQL URL)
//	-r int      retention period in years
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//	-q int      task queue size
//
// # Environment
//
//	NHPLUS_DB_DRIVER, NHPLUS_DB_DSN, NHPLUS_RETENTION_YEARS,
//	NHPLUS_LOG_LEVEL, NHPLUS_LOG_FORMAT, NHPLUS_QUEUE_SIZE
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "db/nursingHome.db",
//	  "retention_years": 10,
//	  "log_level": "info",
//	  "log_format": "text",
//	  "queue_size": 16
//	}
//
// Fields missing from the JSON file keep their earlier value. Malformed
// input in any source panics, as there is nothing sensible to run with.
package config
