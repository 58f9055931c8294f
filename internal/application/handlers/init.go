package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/outfitgen/internal/infrastructure/config"
)

// InitHandler scaffolds the outfitgen configuration directory.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	Config     *config.Config
}

// Handle writes the default config under basePath and loads it back.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if config.Exists(basePath) {
		return nil, fmt.Errorf("outfitgen already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		Config:     cfg,
	}, nil
}
