package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/patterns/pkg/core"
)

// MockLibrary implements core.Library by recording every call.
// It deliberately does NOT implement introspection to test the fallback.
type MockLibrary struct {
	added   []core.Book
	removed []string
	shown   int
	err     error
}

func (m *MockLibrary) AddBook(ctx context.Context, b core.Book) error {
	m.added = append(m.added, b)
	return m.err
}

func (m *MockLibrary) RemoveBook(ctx context.Context, title string) (int, error) {
	m.removed = append(m.removed, title)
	return 7, m.err
}

func (m *MockLibrary) ShowBooks(ctx context.Context) error {
	m.shown++
	return m.err
}

func TestManager_Delegates(t *testing.T) {
	lib := &MockLibrary{}
	manager, err := core.NewManager(lib)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, manager.AddBook(ctx, "Dune", "Frank Herbert", "1965"))
	assert.Equal(t, []core.Book{{Title: "Dune", Author: "Frank Herbert", Year: "1965"}}, lib.added)

	n, err := manager.RemoveBook(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, 7, n, "count must come straight from the store")
	assert.Equal(t, []string{"Dune"}, lib.removed)

	require.NoError(t, manager.ShowBooks(ctx))
	require.NoError(t, manager.ShowBooks(ctx))
	assert.Equal(t, 2, lib.shown)
}

func TestManager_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	manager, err := core.NewManager(&MockLibrary{err: boom})
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, manager.AddBook(ctx, "a", "b", "c"), boom)
	_, err = manager.RemoveBook(ctx, "a")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, manager.ShowBooks(ctx), boom)
}

func TestNewManager_NilLibrary(t *testing.T) {
	_, err := core.NewManager(nil)
	assert.ErrorIs(t, err, core.ErrNilLibrary)
}

func TestManager_State_UnknownStore(t *testing.T) {
	manager, err := core.NewManager(&MockLibrary{})
	require.NoError(t, err)

	state, ok := manager.State().(core.ManagerState)
	require.True(t, ok)
	assert.Equal(t, "library", state.LibraryType)
	assert.Nil(t, state.Library)
	assert.Equal(t, "manager", manager.ComponentType())
}

func TestBook_String(t *testing.T) {
	b := core.Book{Title: "Dune", Author: "Frank Herbert", Year: "1965"}
	assert.Equal(t, "Title: Dune, Author: Frank Herbert, Year: 1965", b.String())

	// Year is free text.
	b.Year = "circa 1965"
	assert.Equal(t, "Title: Dune, Author: Frank Herbert, Year: circa 1965", b.String())
}
