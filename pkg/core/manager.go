package core

import (
	"context"
)

// Manager is the caller-facing facade over a Library.
// It only knows the interface, never the concrete store.
type Manager struct {
	library Library
}

// NewManager creates a new Manager around the given store.
func NewManager(library Library) (*Manager, error) {
	if library == nil {
		return nil, ErrNilLibrary
	}
	return &Manager{library: library}, nil
}

// AddBook builds a Book from its fields and hands it to the store.
func (m *Manager) AddBook(ctx context.Context, title, author, year string) error {
	return m.library.AddBook(ctx, Book{
		Title:  title,
		Author: author,
		Year:   year,
	})
}

// RemoveBook forwards the removal to the store.
func (m *Manager) RemoveBook(ctx context.Context, title string) (int, error) {
	return m.library.RemoveBook(ctx, title)
}

// ShowBooks forwards the listing to the store.
func (m *Manager) ShowBooks(ctx context.Context) error {
	return m.library.ShowBooks(ctx)
}
