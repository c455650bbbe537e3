package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is a single todo item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTask creates a Task with a fresh ID and trimmed title.
func NewTask(title string) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now().UTC(),
	}
}
