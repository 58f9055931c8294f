// Package handlers exposes the generation pipeline to the CLI and other callers.
package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/outfitgen/internal/domain/entities"
	"github.com/ersonp/outfitgen/internal/domain/services"
)

// GenerateHandler handles XML generation requests.
type GenerateHandler struct {
	service *services.GenerateService
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(service *services.GenerateService) *GenerateHandler {
	return &GenerateHandler{
		service: service,
	}
}

// Handle scans dirs for scripts of kind and writes the XML document.
// An empty outputFile means the kind's default file name.
func (h *GenerateHandler) Handle(ctx context.Context, kind entities.Kind, dirs []string, outputFile string) (*services.GenerateResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid kind %q", kind)
	}
	if len(dirs) == 0 {
		return nil, errors.New("at least one directory is required")
	}

	return h.service.Generate(ctx, kind, dirs, outputFile)
}

// GenerateMonsterXML writes monster outfits found under dirs and returns the output path.
func (h *GenerateHandler) GenerateMonsterXML(ctx context.Context, dirs []string, outputFile string) (string, error) {
	return h.generate(ctx, entities.KindMonster, dirs, outputFile)
}

// GenerateNpcXML writes npc outfits found under dirs and returns the output path.
func (h *GenerateHandler) GenerateNpcXML(ctx context.Context, dirs []string, outputFile string) (string, error) {
	return h.generate(ctx, entities.KindNpc, dirs, outputFile)
}

func (h *GenerateHandler) generate(ctx context.Context, kind entities.Kind, dirs []string, outputFile string) (string, error) {
	result, err := h.Handle(ctx, kind, dirs, outputFile)
	if err != nil {
		return "", err
	}
	return result.OutputFile, nil
}
