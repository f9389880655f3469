package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// --- Mock implementations ---

// mockTextSource implements driven.TextSource for testing.
// Each Read pops the next body; the last one repeats.
type mockTextSource struct {
	mu     sync.Mutex
	bodies []string
	errs   []error
	reads  int
}

func (m *mockTextSource) Read(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.reads
	m.reads++
	if i < len(m.errs) && m.errs[i] != nil {
		return "", fmt.Errorf("reading %s: %w", name, m.errs[i])
	}
	if len(m.bodies) == 0 {
		return "", nil
	}
	if i >= len(m.bodies) {
		i = len(m.bodies) - 1
	}
	return m.bodies[i], nil
}

func (m *mockTextSource) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// recordingWriter implements driven.ResultWriter for testing.
type recordingWriter struct {
	mu      sync.Mutex
	reports []*domain.SearchReport
	err     error
	written chan struct{}
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{written: make(chan struct{}, 16)}
}

func (w *recordingWriter) Write(report *domain.SearchReport) error {
	if w.err != nil {
		return w.err
	}
	w.mu.Lock()
	w.reports = append(w.reports, report)
	w.mu.Unlock()
	w.written <- struct{}{}
	return nil
}

func (w *recordingWriter) Reports() []*domain.SearchReport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*domain.SearchReport(nil), w.reports...)
}

// mockWatcher implements driven.FileWatcher for testing.
type mockWatcher struct {
	changes  chan domain.FileChange
	watchErr error
	closed   bool
}

func newMockWatcher() *mockWatcher {
	return &mockWatcher{changes: make(chan domain.FileChange, 4)}
}

func (m *mockWatcher) Watch(_ context.Context, _ string) (<-chan domain.FileChange, error) {
	if m.watchErr != nil {
		return nil, m.watchErr
	}
	return m.changes, nil
}

func (m *mockWatcher) Close() error {
	m.closed = true
	return nil
}
