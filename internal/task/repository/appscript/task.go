package appscript

import (
	"context"
	"fmt"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task/repository"
	pkgLog "line-task-tracker/pkg/log"
)

type implTaskRepository struct {
	client *Client
	l      pkgLog.Logger
}

// NewTaskRepository creates a task repository over the Data API.
func NewTaskRepository(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implTaskRepository{
		client: client,
		l:      l,
	}
}

// GetTask asks the script for one task and falls back to scanning the full
// listing when the lookup action comes back empty or fails.
func (r *implTaskRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	resp, err := r.client.Call(ctx, ActionGetTask, map[string]any{"task_id": id})
	if err == nil && resp.Task != nil && resp.Task.TaskID != "" {
		return toTask(*resp.Task), nil
	}
	if err != nil {
		r.l.Warnf(ctx, "appscript repository: get_task %s failed, scanning list: %v", id, err)
	}

	all, err := r.client.Call(ctx, ActionListTasks, map[string]any{})
	if err != nil {
		r.l.Errorf(ctx, "appscript repository: failed to list tasks: %v", err)
		return model.Task{}, err
	}
	for _, rec := range all.Tasks {
		if string(rec.TaskID) == id {
			return toTask(rec), nil
		}
	}
	return model.Task{}, fmt.Errorf("task %s: %w", id, repository.ErrNotFound)
}

func (r *implTaskRepository) UpsertTask(ctx context.Context, task model.Task) error {
	if _, err := r.client.Call(ctx, ActionUpsertTask, fromTask(task)); err != nil {
		r.l.Errorf(ctx, "appscript repository: failed to upsert task %s: %v", task.ID, err)
		return err
	}
	return nil
}

func (r *implTaskRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	params := map[string]any{}
	if opt.AssigneeID != "" {
		params["assignee_id"] = opt.AssigneeID
	} else if opt.AssigneeName != "" {
		params["assignee_name"] = opt.AssigneeName
	}
	if opt.From != "" {
		params["from_date"] = opt.From
	}
	if opt.To != "" {
		params["to_date"] = opt.To
	}

	resp, err := r.client.Call(ctx, ActionListTasks, params)
	if err != nil {
		r.l.Errorf(ctx, "appscript repository: failed to list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(resp.Tasks))
	for _, rec := range resp.Tasks {
		// The script has no assigner filter.
		if opt.AssignerID != "" && string(rec.AssignerID) != opt.AssignerID {
			continue
		}
		tasks = append(tasks, toTask(rec))
	}
	return tasks, nil
}
