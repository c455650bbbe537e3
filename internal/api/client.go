package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/tatakaukohdai/todotui/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client talks to the remote todo endpoint. Calls are best-effort: the
// TUI invokes them off the render path and only reports the outcome.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint URL. timeout <= 0
// selects the default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type addTodoRequest struct {
	Title string `json:"title"`
}

type addTodoResponse struct {
	ID string `json:"id"`
}

// AddTodo submits a new todo to the remote endpoint and returns the
// remote ID.
func (c *Client) AddTodo(ctx context.Context, title string) (string, error) {
	body, err := json.Marshal(addTodoRequest{Title: title})
	if err != nil {
		return "", apperrors.NewAPIError("addTodo", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewAPIError("addTodo", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewAPIError("addTodo", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewAPIError("addTodo", resp.StatusCode, nil)
	}

	var decoded addTodoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", apperrors.NewAPIError("addTodo", 0, fmt.Errorf("invalid response body: %w", err))
	}
	return decoded.ID, nil
}
