package memory

import (
	"github.com/aretw0/introspection"
)

// LibraryState exposes internal state for observability.
type LibraryState struct {
	Books int `json:"books"`
}

// State implements introspection.Introspectable.
func (l *Library) State() any {
	return LibraryState{Books: len(l.books)}
}

// ComponentType implements introspection.Component.
func (l *Library) ComponentType() string {
	return "memory"
}

var _ introspection.Introspectable = (*Library)(nil)
var _ introspection.Component = (*Library)(nil)
