// Package filesystem provides local-disk implementations of the script source and output sink.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/outfitgen/internal/domain/ports"
)

// DefaultExtension marks Lua script files.
const DefaultExtension = ".lua"

// Source implements ports.ScriptSource on the local filesystem.
type Source struct {
	extension string
}

var _ ports.ScriptSource = (*Source)(nil)

// NewSource creates a source matching files that end with extension.
func NewSource(extension string) *Source {
	if extension == "" {
		extension = DefaultExtension
	}
	return &Source{extension: extension}
}

// Discover walks root and returns matching regular files in lexical order.
// Symlinked directories below root are not followed.
func (s *Source) Discover(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	// WalkDir does not descend into a symlinked root unless the path resolves as a directory.
	walkRoot := root
	if linfo, err := os.Lstat(root); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, s.extension) {
			return nil
		}
		if !isRegular(path, d) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// isRegular reports whether d is a regular file, resolving symlinks to files.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	target, err := os.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}

// Read returns the file content as text. Invalid UTF-8 sequences are replaced.
func (s *Source) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
