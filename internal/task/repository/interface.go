package repository

import (
	"context"

	"line-task-tracker/internal/model"
)

// TaskRepository is the task sheet. UpsertTask replaces the whole record, so
// callers merge fields themselves before writing.
type TaskRepository interface {
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpsertTask(ctx context.Context, task model.Task) error
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// UserRepository is the user sheet.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (model.User, error)
	UpsertUser(ctx context.Context, user model.User) error
	ListUsers(ctx context.Context) ([]model.User, error)
}
