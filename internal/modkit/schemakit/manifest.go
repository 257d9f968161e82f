package schemakit

import (
	"sort"
	"sync"
)

// Manifest collects the resolved schema of every mounted route so an
// external documentation consumer can read the merged table back out
// writes happen during single threaded startup, reads may be concurrent
type Manifest struct {
	mu     sync.RWMutex
	routes map[string]*RouteSchema
}

// NewManifest returns an empty manifest
func NewManifest() *Manifest {
	return &Manifest{routes: map[string]*RouteSchema{}}
}

// Put records the resolved schema for a route key, nil schemas included
// so the manifest lists every mounted route
func (m *Manifest) Put(key string, s *RouteSchema) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.routes[key] = s
	m.mu.Unlock()
}

// Get returns the recorded schema for key
func (m *Manifest) Get(key string) (*RouteSchema, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.routes[key]
	return s, ok
}

// Keys returns the mounted route keys in sorted order
func (m *Manifest) Keys() []string {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.routes))
	for k := range m.routes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Routes returns a copy of the manifest map
func (m *Manifest) Routes() map[string]*RouteSchema {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*RouteSchema, len(m.routes))
	for k, v := range m.routes {
		out[k] = v
	}
	return out
}
