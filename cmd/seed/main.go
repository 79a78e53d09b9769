// Command seed applies the schema and loads sample catalog, news, user and
// order data into the configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"customer-portal/internal/config"
	"customer-portal/internal/database"
	"customer-portal/internal/logger"

	"go.uber.org/zap"
)

type options struct {
	reset      bool
	status     bool
	schemaOnly bool
}

func main() {
	var opts options
	flag.BoolVar(&opts.reset, "reset", false, "roll back every migration before applying them again")
	flag.BoolVar(&opts.status, "status", false, "print migration status and exit")
	flag.BoolVar(&opts.schemaOnly, "schema-only", false, "apply migrations without loading sample data")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db := database.New(cfg.Database, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = run(ctx, db, log, opts)
	cancel()
	db.Close()

	if err != nil {
		log.Error("Seeding failed", zap.Error(err))
		os.Exit(1)
	}
}

// run applies migrations and sample data to db. It never closes db.
func run(ctx context.Context, db database.Service, log *zap.Logger, opts options) error {
	sqlDB, err := db.StdDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	if opts.status {
		return database.GetMigrationStatus(sqlDB)
	}

	if opts.reset {
		if err := database.ResetMigrations(sqlDB, log); err != nil {
			return err
		}
	}

	if err := database.RunMigrations(sqlDB, log); err != nil {
		return err
	}

	if opts.schemaOnly {
		log.Info("Schema applied; sample data skipped")
		return nil
	}

	if err := database.Seed(ctx, db, log); err != nil {
		return err
	}

	log.Info("Database setup completed")
	return nil
}
