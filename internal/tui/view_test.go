package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewShowsLoadingScreenFirst(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	require.Contains(t, m.View(), "loading preferences")
}

func TestViewRendersEmptyState(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	out := m.View()
	require.Contains(t, out, "Nothing here yet")
	require.Contains(t, out, "Todos")
	require.Contains(t, out, "light mode")
}

func TestViewRendersTasksAndCounts(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	_, err := m.store.Add("write tests")
	require.NoError(t, err)
	task, err := m.store.Add("ship it")
	require.NoError(t, err)
	_, err = m.store.Toggle(task.ID)
	require.NoError(t, err)
	m.refreshTasks()

	out := m.View()
	require.Contains(t, out, "write tests")
	require.Contains(t, out, "ship it")
	require.Contains(t, out, "1 open / 1 done")
}

func TestViewReflectsDarkModeImmediately(t *testing.T) {
	t.Parallel()

	m, provider := newTestModel(t, nil)
	m = ready(t, m)

	require.Contains(t, m.View(), "light mode")

	provider.ToggleDarkMode()
	require.Contains(t, m.View(), "dark mode")
}

func TestViewShowsInputScreen(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	updated, _ := m.Update(key("a"))
	m = updated.(Model)

	out := m.View()
	require.Contains(t, out, "esc cancel")
}
