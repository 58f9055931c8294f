package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/outfitgen/internal/application/handlers"
	"github.com/ersonp/outfitgen/internal/domain/services"
	"github.com/ersonp/outfitgen/internal/infrastructure/config"
	"github.com/ersonp/outfitgen/internal/infrastructure/filesystem"
	"github.com/ersonp/outfitgen/internal/infrastructure/logging"
	"github.com/ersonp/outfitgen/internal/infrastructure/xmlout"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config          *config.Config
	Logger          *zap.Logger
	GenerateHandler *handlers.GenerateHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It flushes the logger when fn returns.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }() // Sync on stderr fails on some terminals

	generateService := services.NewGenerateService(
		filesystem.NewSource(cfg.Scan.Extension),
		xmlout.NewEncoder(),
		filesystem.NewSink(),
		log,
		services.GenerateOptions{
			Workers:        cfg.Scan.Workers,
			SkipUnreadable: cfg.Scan.SkipUnreadable,
		},
	)

	return fn(&Deps{
		Config:          cfg,
		Logger:          log,
		GenerateHandler: handlers.NewGenerateHandler(generateService),
	})
}
