package filesystem

import (
	"context"
	"os"

	"github.com/ersonp/outfitgen/internal/domain/ports"
)

// Sink implements ports.OutputSink by writing files to disk.
type Sink struct{}

var _ ports.OutputSink = (*Sink)(nil)

// NewSink creates a new sink.
func NewSink() *Sink {
	return &Sink{}
}

// Write replaces the file at path with data.
func (s *Sink) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
