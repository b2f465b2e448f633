// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ggchart"
)

// BackendFactory creates a new playback target of the given size.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func(width, height int) (ggchart.Surface, error)

// FileBackend is a backend that can write its output to a file.
type FileBackend interface {
	ggchart.Surface
	SaveToFile(path string) error
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register("recording", func(width, height int) (ggchart.Surface, error) {
		return NewRecorder(width, height), nil
	})
}

// Register registers a backend factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("raster", func(w, h int) (ggchart.Surface, error) {
//	        return New(w, h), nil
//	    })
//	}
//
// Register panics if factory is nil or a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
// Returns an error if the backend is not registered; the message includes
// a hint about forgotten imports.
func NewBackend(name string, width, height int) (ggchart.Surface, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	s, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("recording: create backend %q: %w", name, err)
	}
	return s, nil
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
