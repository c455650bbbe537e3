package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tatakaukohdai/todotui/internal/api"
	"github.com/tatakaukohdai/todotui/internal/theme"
	"github.com/tatakaukohdai/todotui/internal/todo"
)

type memPrefStore struct {
	mu      sync.Mutex
	value   bool
	present bool
}

func (s *memPrefStore) DarkMode() (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.present, nil
}

func (s *memPrefStore) SetDarkMode(value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.present = true
	return nil
}

func newTestModel(t *testing.T, client *api.Client) (Model, *theme.Provider) {
	t.Helper()

	provider := theme.NewProvider(&memPrefStore{}, nil)
	ctx := theme.WithProvider(context.Background(), provider)

	store, err := todo.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, err)

	return NewModel(ctx, store, client, nil), provider
}

func ready(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(PreferenceLoadedMsg{})
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelPanicsWithoutProviderScope(t *testing.T) {
	t.Parallel()

	store, err := todo.NewStore(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, err)

	require.PanicsWithError(t, theme.ErrNoProvider.Error(), func() {
		NewModel(context.Background(), store, nil, nil)
	})
}

func TestStartupResolvesOncePreferenceLoads(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	require.Equal(t, stateLoadingPreference, m.state)

	updated, _ := m.Update(PreferenceLoadedMsg{IsDarkMode: true})
	m = updated.(Model)
	require.Equal(t, stateList, m.state)

	// A duplicate message must not bounce the screen state.
	m.state = stateInput
	updated, _ = m.Update(PreferenceLoadedMsg{})
	require.Equal(t, stateInput, updated.(Model).state)
}

func TestKeysAreIgnoredWhileLoading(t *testing.T) {
	t.Parallel()

	m, provider := newTestModel(t, nil)
	updated, _ := m.Update(key("t"))
	require.False(t, provider.IsDarkMode())
	require.Equal(t, stateLoadingPreference, updated.(Model).state)
}

func TestQuitKeysWorkWhileLoading(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	require.Equal(t, stateLoadingPreference, m.state)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestToggleKeyFlipsDarkMode(t *testing.T) {
	t.Parallel()

	m, provider := newTestModel(t, nil)
	m = ready(t, m)

	updated, _ := m.Update(key("t"))
	m = updated.(Model)
	require.True(t, provider.IsDarkMode())
	require.True(t, m.IsDarkMode())

	updated, _ = m.Update(key("t"))
	require.False(t, provider.IsDarkMode())
	_ = updated
}

func TestAddFlowStoresTask(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	updated, _ := m.Update(key("a"))
	m = updated.(Model)
	require.Equal(t, stateInput, m.state)

	updated, _ = m.Update(key("buy milk"))
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Nil(t, cmd, "no remote command without a client")
	require.Equal(t, stateList, m.state)

	tasks := m.Tasks()
	require.Len(t, tasks, 1)
	require.Equal(t, "buy milk", tasks[0].Title)
	require.Contains(t, m.status, "added")
}

func TestAddFlowRejectsBlankTitle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	updated, _ := m.Update(key("a"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Empty(t, m.Tasks())
	require.Contains(t, m.status, "must not be empty")
}

func TestEscapeCancelsInput(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	updated, _ := m.Update(key("a"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)

	require.Equal(t, stateList, m.state)
	require.Empty(t, m.Tasks())
}

func TestSpaceTogglesSelectedTask(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	_, err := m.store.Add("water plants")
	require.NoError(t, err)
	m.refreshTasks()

	updated, _ := m.Update(key(" "))
	m = updated.(Model)
	require.True(t, m.Tasks()[0].Done)
	require.Contains(t, m.status, "done")

	updated, _ = m.Update(key(" "))
	m = updated.(Model)
	require.False(t, m.Tasks()[0].Done)
}

func TestDeleteKeyRemovesSelectedTask(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	_, err := m.store.Add("first")
	require.NoError(t, err)
	_, err = m.store.Add("second")
	require.NoError(t, err)
	m.refreshTasks()
	m.cursor = 1

	updated, _ := m.Update(key("x"))
	m = updated.(Model)

	tasks := m.Tasks()
	require.Len(t, tasks, 1)
	require.Equal(t, "first", tasks[0].Title)
	require.Equal(t, 0, m.cursor, "cursor clamps after removal")
}

func TestCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	_, err := m.store.Add("only")
	require.NoError(t, err)
	m.refreshTasks()

	updated, _ := m.Update(key("k"))
	m = updated.(Model)
	require.Equal(t, 0, m.cursor)

	updated, _ = m.Update(key("j"))
	m = updated.(Model)
	require.Equal(t, 0, m.cursor)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, nil)
	m = ready(t, m)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestRemoteSubmissionFeedsStatusLine(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "remote-1"})
	}))
	defer server.Close()

	m, _ := newTestModel(t, api.NewClient(server.URL, time.Second))
	m = ready(t, m)

	updated, _ := m.Update(key("a"))
	m = updated.(Model)
	updated, _ = m.Update(key("sync me"))
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd, "a configured client triggers remote submission")

	msg := cmd()
	submit, ok := msg.(RemoteSubmitMsg)
	require.True(t, ok)
	require.NoError(t, submit.Err)
	require.Equal(t, "remote-1", submit.RemoteID)

	updated, _ = m.Update(submit)
	m = updated.(Model)
	require.Contains(t, m.status, "synced")
}

func TestRemoteFailureKeepsLocalTask(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	m, _ := newTestModel(t, api.NewClient(server.URL, time.Second))
	m = ready(t, m)

	updated, _ := m.Update(key("a"))
	m = updated.(Model)
	updated, _ = m.Update(key("offline task"))
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	submit := cmd().(RemoteSubmitMsg)
	require.Error(t, submit.Err)

	updated, _ = m.Update(submit)
	m = updated.(Model)
	require.Contains(t, m.status, "sync failed")
	require.Len(t, m.Tasks(), 1)
}
