package mocks

import "context"

// OutputSink is a mock implementation of ports.OutputSink.
type OutputSink struct {
	Err error

	// Call tracking
	WriteCallCount int
	Written        map[string][]byte
}

// Write records data under path.
func (m *OutputSink) Write(ctx context.Context, path string, data []byte) error {
	m.WriteCallCount++
	if m.Err != nil {
		return m.Err
	}
	if m.Written == nil {
		m.Written = make(map[string][]byte)
	}
	m.Written[path] = append([]byte(nil), data...)
	return nil
}
