package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatakaukohdai/todotui/internal/api"
	"github.com/tatakaukohdai/todotui/internal/logger"
	"github.com/tatakaukohdai/todotui/internal/theme"
	"github.com/tatakaukohdai/todotui/internal/todo"
)

// screenState tracks which screen the model is showing.
type screenState int

const (
	// stateLoadingPreference is the transient startup state. It is
	// entered once and exited exactly once, when the preference read
	// settles.
	stateLoadingPreference screenState = iota
	stateList
	stateInput
)

const remoteSubmitTimeout = 15 * time.Second

// Model contains the Bubble Tea state for the todo screens.
type Model struct {
	provider *theme.Provider
	store    *todo.Store
	client   *api.Client
	log      *logger.Logger

	state  screenState
	tasks  []todo.Task
	cursor int
	status string

	input   textinput.Model
	spinner spinner.Model

	width  int
	height int

	quitting bool
}

// NewModel constructs the TUI model. ctx must carry the theme provider;
// running without one is a wiring mistake and fails immediately.
// client may be nil when no remote endpoint is configured.
func NewModel(ctx context.Context, store *todo.Store, client *api.Client, log *logger.Logger) Model {
	provider := theme.MustFromContext(ctx)

	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		provider: provider,
		store:    store,
		client:   client,
		log:      log,
		state:    stateLoadingPreference,
		tasks:    store.List(),
		input:    input,
		spinner:  s,
		width:    80,
		height:   24,
	}
}

// Init kicks off the spinner and the asynchronous preference read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPreferenceCmd())
}

// IsDarkMode reports the provider's current mode flag.
func (m Model) IsDarkMode() bool {
	return m.provider.IsDarkMode()
}

// Tasks returns the tasks currently shown.
func (m Model) Tasks() []todo.Task {
	result := make([]todo.Task, len(m.tasks))
	copy(result, m.tasks)
	return result
}

func (m Model) loadPreferenceCmd() tea.Cmd {
	return func() tea.Msg {
		return PreferenceLoadedMsg{IsDarkMode: m.provider.LoadPreference()}
	}
}

// submitRemoteCmd posts the new task to the remote endpoint. The
// result only feeds the status line and the log; the local store has
// already accepted the task.
func (m Model) submitRemoteCmd(title string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteSubmitTimeout)
		defer cancel()

		id, err := client.AddTodo(ctx, title)
		return RemoteSubmitMsg{Title: title, RemoteID: id, Err: err}
	}
}

func (m *Model) refreshTasks() {
	m.tasks = m.store.List()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
