package tui

// PreferenceLoadedMsg reports that the persisted dark-mode preference
// has settled, successfully or not. Sent exactly once per program.
type PreferenceLoadedMsg struct {
	IsDarkMode bool
}

// RemoteSubmitMsg reports the outcome of the best-effort remote
// submission of a new task.
type RemoteSubmitMsg struct {
	Title    string
	RemoteID string
	Err      error
}
