package patterns

import (
	"io"
	"log/slog"

	"github.com/aretw0/patterns/internal/platform"
	"github.com/aretw0/patterns/pkg/core"
)

// --- Types ---

// Book is a public alias for the library record.
type Book = core.Book

// Manager is a public alias for the library facade.
type Manager = core.Manager

// --- Configuration ---

// Option defines a functional option for configuring the library stack.
type Option = platform.Option

// WithLogger sets the logger for the default store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithOutput sets where book listings are written.
func WithOutput(w io.Writer) Option {
	return platform.WithOutput(w)
}

// WithLibrary allows injecting a custom store.
func WithLibrary(library core.Library) Option {
	return platform.WithLibrary(library)
}

// --- Factory ---

// New creates a Manager backed by the in-memory store unless WithLibrary is given.
func New(opts ...Option) (*Manager, error) {
	return platform.New(opts...)
}
