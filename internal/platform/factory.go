package platform

import (
	"github.com/aretw0/patterns/pkg/adapters/memory"
	"github.com/aretw0/patterns/pkg/core"
)

// New wires a Manager to its store.
//
//	manager, err := patterns.New(patterns.WithLogger(logger))
func New(opts ...Option) (*core.Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	library := o.library
	if library == nil {
		library = memory.NewLibrary(
			memory.WithLogger(o.logger),
			memory.WithOutput(o.output),
		)
	}

	return core.NewManager(library)
}
