package main

import (
	"context"
	"flag"
	"log"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database/migration"
	dbpostgres "resume-match/internal/database/postgres"
	"resume-match/internal/database/seeder"
	"resume-match/internal/logger"

	"go.uber.org/zap"
)

// seed applies pending migrations and loads the built-in reference data
// (the course catalog). Safe to run repeatedly.
func main() {
	migrationsDir := flag.String("migrations", "migrations", "directory holding versioned SQL migrations")
	skipSeed := flag.Bool("skip-seed", false, "apply migrations only")
	withDemo := flag.Bool("demo", false, "also load a sample resume and jobs")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	mig := migration.Runner{Dir: *migrationsDir}
	if err := mig.Run(ctx, db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	zl.Info("migrations applied")

	if *skipSeed {
		return
	}

	seeders := seeder.Defaults()
	if *withDemo {
		seeders = append(seeders, seeder.DemoSeeder{})
	}

	sr := seeder.Runner{Seeders: seeders}
	if err := sr.Run(ctx, db); err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
	zl.Info("seed data applied", zap.Int("seeders", len(seeders)))
}
