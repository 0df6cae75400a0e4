// Package presentation models the root presentation context that preference
// side effects adjust: a set of named markers, the analogue of the class list
// on a document root element.
package presentation

import (
	"sort"
	"sync"
)

// ClassList is the mutable marker surface side effects write to.
type ClassList interface {
	Add(names ...string)
	Remove(names ...string)
	Toggle(name string, on bool)
}

// MarkerSet is a concurrency-safe ClassList.
type MarkerSet struct {
	mu      sync.RWMutex
	markers map[string]struct{}
}

// NewMarkerSet returns a marker set holding initial.
func NewMarkerSet(initial ...string) *MarkerSet {
	m := &MarkerSet{markers: make(map[string]struct{}, len(initial))}
	m.Add(initial...)
	return m
}

// Add activates names.
func (m *MarkerSet) Add(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range names {
		if n != "" {
			m.markers[n] = struct{}{}
		}
	}
}

// Remove deactivates names. Absent names are ignored.
func (m *MarkerSet) Remove(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range names {
		delete(m.markers, n)
	}
}

// Toggle adds name when on is true and removes it otherwise.
func (m *MarkerSet) Toggle(name string, on bool) {
	if on {
		m.Add(name)
		return
	}
	m.Remove(name)
}

// Has reports whether name is active.
func (m *MarkerSet) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.markers[name]
	return ok
}

// List returns the active markers sorted by name.
func (m *MarkerSet) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.markers))
	for n := range m.markers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
