// Package memory provides a process-local implementation of core.Library.
// Nothing survives the process; the slice is the whole store.
package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/patterns/pkg/core"
)

// Library is an in-memory book store that keeps insertion order.
type Library struct {
	books  []core.Book
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for store events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithOutput sets where ShowBooks writes the listing. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Library) {
		if w != nil {
			l.out = w
		}
	}
}

// NewLibrary creates an empty store.
func NewLibrary(opts ...Option) *Library {
	l := &Library{
		out:    os.Stdout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddBook appends b to the end of the collection.
func (l *Library) AddBook(ctx context.Context, b core.Book) error {
	l.books = append(l.books, b)
	l.logger.InfoContext(ctx, "added book", "title", b.Title, "author", b.Author, "year", b.Year)
	return nil
}

// RemoveBook drops every book whose title equals title (case-sensitive).
func (l *Library) RemoveBook(ctx context.Context, title string) (int, error) {
	kept := l.books[:0]
	for _, b := range l.books {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	removed := len(l.books) - len(kept)
	// Clear the tail so dropped books are not retained by the backing array.
	clear(l.books[len(kept):])
	l.books = kept

	if removed == 0 {
		l.logger.WarnContext(ctx, "book not found", "title", title)
		return 0, nil
	}
	l.logger.InfoContext(ctx, "removed book", "title", title, "count", removed)
	return removed, nil
}

// ShowBooks writes one line per book to the configured output.
func (l *Library) ShowBooks(ctx context.Context) error {
	if len(l.books) == 0 {
		l.logger.InfoContext(ctx, "no books available in the library")
		return nil
	}
	for _, b := range l.books {
		if _, err := fmt.Fprintln(l.out, b.String()); err != nil {
			return fmt.Errorf("failed to write book listing: %w", err)
		}
	}
	return nil
}

// Books returns a snapshot of the collection in insertion order.
func (l *Library) Books() []core.Book {
	out := make([]core.Book, len(l.books))
	copy(out, l.books)
	return out
}

var _ core.Library = (*Library)(nil)
