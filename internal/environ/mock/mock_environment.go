package mock

import (
	"fmt"
	"sync"
)

// MockEnvironment implements the Environment interface for testing
type MockEnvironment struct {
	mu   sync.Mutex
	vars map[string]string
	sets int

	// SetErr is returned by Setenv once SetErrAfter calls have succeeded
	SetErr      error
	SetErrAfter int
}

func NewMockEnvironment(vars map[string]string) *MockEnvironment {
	m := &MockEnvironment{
		vars: make(map[string]string, len(vars)),
	}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *MockEnvironment) LookupEnv(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.vars[key]
	return value, ok
}

func (m *MockEnvironment) Setenv(key, value string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil && m.sets >= m.SetErrAfter {
		return m.SetErr
	}
	m.sets++
	m.vars[key] = value
	return nil
}

func (m *MockEnvironment) Unsetenv(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, key)
	return nil
}

// Vars returns a copy of every variable currently set
func (m *MockEnvironment) Vars() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}
