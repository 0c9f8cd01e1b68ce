package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"job-board/internal/app"
	"job-board/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "load demo companies, accounts and jobs")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if err := run(cfg, *seed || cfg.Database.RunSeeders, logger); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}

func run(cfg config.Config, seed bool, logger *log.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Printf("[Migration] close store: %v", err)
		}
	}()
	logger.Printf("[Migration] schema up to date driver=%s", cfg.Database.Driver)

	if !seed {
		return nil
	}
	return store.Seed(ctx, logger)
}
