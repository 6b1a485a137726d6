// Command setupdb drops every table of the configured database, recreates the
// schema and loads the demo data. It reads the same configuration as nhplus.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/hitec/nhplus/internal/config"
	"github.com/hitec/nhplus/internal/cryptox"
	"github.com/hitec/nhplus/internal/database"
	"github.com/hitec/nhplus/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	db, dialect, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	if err := database.Reset(ctx, db, dialect); err != nil {
		log.Fatalf("%v", err)
	}

	if err := database.Seed(ctx, db, dialect, cryptox.NewArgon2Hasher(cryptox.DefaultParams), time.Now()); err != nil {
		log.Fatalf("%v", err)
	}

	logger.Info(ctx, "database reset and seeded", "driver", cfg.DatabaseDriver, "dsn", cfg.DatabaseDSN)
}
