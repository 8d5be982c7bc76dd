package platform

import (
	"io"
	"log/slog"

	"github.com/aretw0/patterns/pkg/core"
)

// options holds the internal configuration for the library stack.
type options struct {
	library core.Library
	logger  *slog.Logger
	output  io.Writer
}

// Option defines a functional option for configuring the library stack.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		library: nil,
		logger:  nil,
		output:  nil,
	}
}

// WithLogger sets the logger for the default store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where the default store writes book listings.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithLibrary allows injecting a custom store (e.g. mock, database).
// If provided, the default in-memory store will be skipped and the
// logger/output options do not apply.
func WithLibrary(library core.Library) Option {
	return func(o *options) {
		o.library = library
	}
}
