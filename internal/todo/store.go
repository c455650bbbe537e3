package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrEmptyTitle rejects tasks whose title is blank after trimming.
var ErrEmptyTitle = errors.New("todo: task title must not be empty")

// ErrNotFound reports an unknown task ID.
var ErrNotFound = errors.New("todo: task not found")

type storeFile struct {
	Version string `json:"version"`
	Tasks   []Task `json:"tasks"`
}

// Store holds the task list in memory and persists it as JSON.
type Store struct {
	path  string
	mu    sync.RWMutex
	tasks []Task
}

// DefaultTasksPath returns the standard tasks location under the
// user's home directory.
func DefaultTasksPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todotui", "tasks.json"), nil
}

// NewStore creates a Store backed by the given file and loads any
// existing tasks. A missing file yields an empty list.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.tasks = []Task{}
		return nil
	}
	if err != nil {
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse task file: %w", err)
	}

	s.tasks = file.Tasks
	if s.tasks == nil {
		s.tasks = []Task{}
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create task directory: %w", err)
	}

	data, err := json.MarshalIndent(storeFile{Version: "1.0", Tasks: s.tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// List returns a copy of all tasks in insertion order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Add appends a new task with the given title and persists the list.
func (s *Store) Add(title string) (Task, error) {
	task := NewTask(title)
	if task.Title == "" {
		return Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	if err := s.save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return Task{}, err
	}
	return task, nil
}

// Toggle flips the done flag of the task with the given ID.
func (s *Store) Toggle(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Done = !s.tasks[i].Done
		if err := s.save(); err != nil {
			s.tasks[i].Done = !s.tasks[i].Done
			return Task{}, err
		}
		return s.tasks[i], nil
	}
	return Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Remove deletes the task with the given ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		removed := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		if err := s.save(); err != nil {
			s.tasks = append(s.tasks[:i], append([]Task{removed}, s.tasks[i:]...)...)
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Counts returns the number of open and completed tasks.
func (s *Store) Counts() (open, done int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, task := range s.tasks {
		if task.Done {
			done++
		} else {
			open++
		}
	}
	return open, done
}
