package store

import (
	"context"
	"io/fs"
	"slices"
	"sync"
)

// Memory is an in-memory Store for testing
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string][]byte),
	}
}

// List returns the stored names under prefix.
func (m *Memory) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix = normalizePrefix(prefix)
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		if matchesPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Read returns a copy of the contents of name.
func (m *Memory) Read(_ context.Context, name string) ([]byte, error) {
	key, err := cleanName("read", name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[key]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	return slices.Clone(f), nil
}

// Write stores a copy of data under name.
func (m *Memory) Write(_ context.Context, name string, data []byte) error {
	key, err := cleanName("write", name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	m.files[key] = dataCopy
	return nil
}

// Delete removes name.
func (m *Memory) Delete(_ context.Context, name string) error {
	key, err := cleanName("delete", name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[key]; !ok {
		return &fs.PathError{Op: "delete", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, key)
	return nil
}
