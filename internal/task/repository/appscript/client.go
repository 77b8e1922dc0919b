package appscript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Actions understood by the Data API script.
const (
	ActionGetTask    = "get_task"
	ActionListTasks  = "list_tasks"
	ActionUpsertTask = "upsert_task"
	ActionGetUser    = "get_user"
	ActionUpsertUser = "upsert_user"
	ActionListUsers  = "list_users"
)

// ErrActionFailed is returned when the script answers with ok=false.
var ErrActionFailed = errors.New("apps script action failed")

// Client is the HTTP wrapper for the Apps Script Data API web app.
type Client struct {
	execURL    string
	appKey     string
	httpClient *http.Client
}

// NewClient creates a new Data API client. Every request carries appKey.
func NewClient(execURL, appKey string, timeout time.Duration) *Client {
	return &Client{
		execURL:    execURL,
		appKey:     appKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Call posts {action, app_key, ...params} to the web app and decodes the reply.
func (c *Client) Call(ctx context.Context, action string, params map[string]any) (*Response, error) {
	if c.execURL == "" {
		return nil, fmt.Errorf("apps script exec url not configured")
	}

	payload := make(map[string]any, len(params)+2)
	for k, v := range params {
		payload[k] = v
	}
	payload["action"] = action
	payload["app_key"] = c.appKey

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", action, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.execURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", action, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call apps script %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("apps script %s error %d: %s", action, resp.StatusCode, string(raw))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode apps script %s response: %w", action, err)
	}
	if !out.OK {
		msg := out.Error
		if msg == "" {
			msg = "unknown"
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrActionFailed, action, msg)
	}
	return &out, nil
}

// ---- Request/Response types scoped to this package ----

// Response is the envelope every action answers with.
type Response struct {
	OK    bool         `json:"ok"`
	Error string       `json:"error,omitempty"`
	Found bool         `json:"found,omitempty"`
	Task  *TaskRecord  `json:"task,omitempty"`
	Tasks []TaskRecord `json:"tasks,omitempty"`
	User  *UserRecord  `json:"user,omitempty"`
	Users []UserRecord `json:"users,omitempty"`
}
