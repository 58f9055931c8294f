package services

import (
	"errors"
	"fmt"
)

// ErrNoEntities is returned when a run extracted nothing, so no output is written.
var ErrNoEntities = errors.New("no entities found")

// DiscoveryError reports a root directory that could not be scanned.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("scanning %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// ReadError reports a discovered file whose content could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Skip reasons reported by ExtractionSkip.
const (
	SkipReasonName   = "name"
	SkipReasonOutfit = "outfit"
)

// ExtractionSkip reports a file without a recognizable declaration. It is not fatal.
type ExtractionSkip struct {
	Path   string // Set by the caller; empty when extracting bare text
	Reason string // SkipReasonName or SkipReasonOutfit
}

func (e *ExtractionSkip) Error() string {
	what := "entity name"
	if e.Reason == SkipReasonOutfit {
		what = "outfit"
	}
	if e.Path == "" {
		return fmt.Sprintf("no valid %s found", what)
	}
	return fmt.Sprintf("no valid %s found in file: %s", what, e.Path)
}

// IsSkip reports whether err is an ExtractionSkip.
func IsSkip(err error) bool {
	var skip *ExtractionSkip
	return errors.As(err, &skip)
}
