package core

import "context"

// Library defines the capability set of a book store.
// Adhering to this interface allows the Manager to be independent of the
// underlying storage (in-memory slice, database, remote catalog).
type Library interface {
	// AddBook appends a book to the store.
	AddBook(ctx context.Context, b Book) error

	// RemoveBook removes every book whose title exactly matches.
	// It returns how many were removed; a missing title is not an error.
	RemoveBook(ctx context.Context, title string) (int, error)

	// ShowBooks renders the whole collection in insertion order.
	ShowBooks(ctx context.Context) error
}
