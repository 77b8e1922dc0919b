package appscript_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"line-task-tracker/internal/task/repository/appscript"
)

func TestClientCall(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)

		switch got["action"] {
		case appscript.ActionGetTask:
			w.Write([]byte(`{"ok":true,"task":{"task_id":"TASK_1","task_detail":"ทำป้าย","status":"doing","assignee_id":12345}}`))
		case "broken":
			w.Write([]byte(`{"ok":false,"error":"bad key"}`))
		case "crash":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"ok":true}`))
		}
	}))
	defer ts.Close()

	client := appscript.NewClient(ts.URL, "secret", time.Second)
	ctx := context.Background()

	t.Run("sends action and key with params", func(t *testing.T) {
		resp, err := client.Call(ctx, appscript.ActionGetTask, map[string]any{"task_id": "TASK_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["app_key"] != "secret" || got["task_id"] != "TASK_1" {
			t.Errorf("unexpected request payload: %+v", got)
		}
		if resp.Task == nil || resp.Task.TaskID != "TASK_1" {
			t.Fatalf("unexpected task: %+v", resp.Task)
		}
		if resp.Task.AssigneeID != "12345" {
			t.Errorf("numeric cell should decode as text, got %q", resp.Task.AssigneeID)
		}
	})

	t.Run("ok false is an error", func(t *testing.T) {
		_, err := client.Call(ctx, "broken", nil)
		if !errors.Is(err, appscript.ErrActionFailed) {
			t.Fatalf("expected ErrActionFailed, got %v", err)
		}
	})

	t.Run("http error", func(t *testing.T) {
		_, err := client.Call(ctx, "crash", nil)
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := appscript.NewClient("", "k", time.Second).Call(ctx, "x", nil)
		if err == nil {
			t.Fatal("expected error without exec url")
		}
	})
}
