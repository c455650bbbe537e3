package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoadingPreference {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PreferenceLoadedMsg:
		// The transient startup state resolves here, exactly once.
		if m.state == stateLoadingPreference {
			m.state = stateList
		}
		return m, nil

	case RemoteSubmitMsg:
		if msg.Err != nil {
			m.log.WarnErr(msg.Err, "remote todo submission failed")
			m.status = fmt.Sprintf("sync failed: %q kept locally", msg.Title)
		} else {
			m.log.WithFields(map[string]any{"remote_id": msg.RemoteID}).Debug("remote todo submission succeeded")
			m.status = fmt.Sprintf("synced %q", msg.Title)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateInput:
		return m.handleInputKey(msg)
	case stateList:
		return m.handleListKey(msg)
	default:
		// Startup: quit still works, everything else waits for the
		// preference read to settle.
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "a":
		m.state = stateInput
		m.input.SetValue("")
		return m, m.input.Focus()

	case "t":
		// In-memory flip is immediate; the save runs detached.
		m.provider.ToggleDarkMode()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case " ", "enter":
		if len(m.tasks) == 0 {
			return m, nil
		}
		task, err := m.store.Toggle(m.tasks[m.cursor].ID)
		if err != nil {
			m.log.Error(err, "failed to toggle task")
			m.status = "could not update task"
			return m, nil
		}
		m.refreshTasks()
		if task.Done {
			m.status = fmt.Sprintf("done: %s", task.Title)
		} else {
			m.status = fmt.Sprintf("reopened: %s", task.Title)
		}
		return m, nil

	case "x":
		if len(m.tasks) == 0 {
			return m, nil
		}
		removed := m.tasks[m.cursor]
		if err := m.store.Remove(removed.ID); err != nil {
			m.log.Error(err, "failed to remove task")
			m.status = "could not remove task"
			return m, nil
		}
		m.refreshTasks()
		m.status = fmt.Sprintf("removed %q", removed.Title)
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.state = stateList
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		title := m.input.Value()
		m.state = stateList
		m.input.Blur()

		task, err := m.store.Add(title)
		if err != nil {
			m.status = "task title must not be empty"
			return m, nil
		}

		m.refreshTasks()
		m.cursor = len(m.tasks) - 1
		m.status = fmt.Sprintf("added %q", task.Title)

		if m.client != nil {
			return m, m.submitRemoteCmd(task.Title)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
