// Package ports defines the interfaces the extraction pipeline uses to reach files and encoders.
package ports

import "context"

// ScriptSource locates and reads entity script files.
type ScriptSource interface {
	// Discover returns every script file under root, in traversal order.
	// A root that does not exist or cannot be listed is an error.
	Discover(ctx context.Context, root string) ([]string, error)

	// Read returns the text content of a discovered file.
	Read(ctx context.Context, path string) (string, error)
}

// OutputSink persists a rendered document.
type OutputSink interface {
	Write(ctx context.Context, path string, data []byte) error
}
