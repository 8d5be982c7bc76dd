package core

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	LibraryType string `json:"library_type"`
	Library     any    `json:"library,omitempty"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	libType := "library"
	// Try to get component type if the store implements introspection.Component
	if comp, ok := m.library.(introspection.Component); ok {
		libType = comp.ComponentType()
	}

	var libState any
	if intro, ok := m.library.(introspection.Introspectable); ok {
		libState = intro.State()
	}

	return ManagerState{
		LibraryType: libType,
		Library:     libState,
	}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
