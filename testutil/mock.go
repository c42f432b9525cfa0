package testutil

import (
	"sync"

	"github.com/API4KBs/kmdp-models-sub004/vocabulary"
)

// MockCatalogue wraps a registry and counts lookups.
type MockCatalogue struct {
	mu       sync.Mutex
	registry *vocabulary.Registry

	LookupCalls    int
	AllOfKindCalls int
}

// NewMockCatalogue wraps reg.
func NewMockCatalogue(reg *vocabulary.Registry) *MockCatalogue {
	return &MockCatalogue{registry: reg}
}

// Lookup delegates to the registry.
func (m *MockCatalogue) Lookup(kind vocabulary.Kind, tag string) (*vocabulary.Term, bool) {
	m.mu.Lock()
	m.LookupCalls++
	m.mu.Unlock()
	return m.registry.Lookup(kind, tag)
}

// AllOfKind delegates to the registry.
func (m *MockCatalogue) AllOfKind(kind vocabulary.Kind) []*vocabulary.Term {
	m.mu.Lock()
	m.AllOfKindCalls++
	m.mu.Unlock()
	return m.registry.AllOfKind(kind)
}

// Calls returns the total number of delegated calls.
func (m *MockCatalogue) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LookupCalls + m.AllOfKindCalls
}

// Reset zeroes the call counters.
func (m *MockCatalogue) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LookupCalls = 0
	m.AllOfKindCalls = 0
}
