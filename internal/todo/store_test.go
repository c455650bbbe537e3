package todo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	store, err := NewStore(path)
	require.NoError(t, err)
	return store, path
}

func TestStoreStartsEmpty(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.Empty(t, store.List())

	open, done := store.Counts()
	require.Zero(t, open)
	require.Zero(t, done)
}

func TestAddAssignsIDAndTrimsTitle(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	task, err := store.Add("  buy milk  ")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, "buy milk", task.Title)
	require.False(t, task.Done)
	require.False(t, task.CreatedAt.IsZero())
}

func TestAddRejectsBlankTitle(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	_, err := store.Add("   ")
	require.ErrorIs(t, err, ErrEmptyTitle)
	require.Empty(t, store.List())
}

func TestToggleFlipsDone(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	task, err := store.Add("water plants")
	require.NoError(t, err)

	toggled, err := store.Toggle(task.ID)
	require.NoError(t, err)
	require.True(t, toggled.Done)

	toggled, err = store.Toggle(task.ID)
	require.NoError(t, err)
	require.False(t, toggled.Done)
}

func TestToggleUnknownIDFails(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	_, err := store.Toggle("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveDeletesTask(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	first, err := store.Add("first")
	require.NoError(t, err)
	_, err = store.Add("second")
	require.NoError(t, err)

	require.NoError(t, store.Remove(first.ID))

	tasks := store.List()
	require.Len(t, tasks, 1)
	require.Equal(t, "second", tasks[0].Title)

	require.ErrorIs(t, store.Remove(first.ID), ErrNotFound)
}

func TestStoreRoundTripsAcrossInstances(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	task, err := store.Add("persisted")
	require.NoError(t, err)
	_, err = store.Toggle(task.ID)
	require.NoError(t, err)

	reloaded, err := NewStore(path)
	require.NoError(t, err)

	tasks := reloaded.List()
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)
	require.True(t, tasks[0].Done)
}

func TestListReturnsACopy(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	_, err := store.Add("original")
	require.NoError(t, err)

	tasks := store.List()
	tasks[0].Title = "mutated"
	require.Equal(t, "original", store.List()[0].Title)
}
