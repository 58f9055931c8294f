// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"sync"
)

// ScriptSource is an in-memory mock implementation of ports.ScriptSource.
// Files maps a root directory to the paths it contains, in discovery order.
type ScriptSource struct {
	Files       map[string][]string
	Contents    map[string]string
	DiscoverErr map[string]error
	ReadErr     map[string]error

	mu sync.Mutex

	// Call tracking
	DiscoverCalls []string
	ReadCallCount int
}

// Discover returns the configured paths for root.
func (m *ScriptSource) Discover(ctx context.Context, root string) ([]string, error) {
	m.mu.Lock()
	m.DiscoverCalls = append(m.DiscoverCalls, root)
	m.mu.Unlock()

	if err := m.DiscoverErr[root]; err != nil {
		return nil, err
	}
	paths, ok := m.Files[root]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", root)
	}
	return paths, nil
}

// Read returns the configured content for path.
func (m *ScriptSource) Read(ctx context.Context, path string) (string, error) {
	m.mu.Lock()
	m.ReadCallCount++
	m.mu.Unlock()

	if err := m.ReadErr[path]; err != nil {
		return "", err
	}
	content, ok := m.Contents[path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return content, nil
}

// AddFile registers a file under root.
func (m *ScriptSource) AddFile(root, path, content string) {
	if m.Files == nil {
		m.Files = make(map[string][]string)
	}
	if m.Contents == nil {
		m.Contents = make(map[string]string)
	}
	m.Files[root] = append(m.Files[root], path)
	m.Contents[path] = content
}

// AddDir registers an empty root.
func (m *ScriptSource) AddDir(root string) {
	if m.Files == nil {
		m.Files = make(map[string][]string)
	}
	if _, ok := m.Files[root]; !ok {
		m.Files[root] = []string{}
	}
}
