package usecase

import (
	"context"
	"errors"
	"strings"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
	"line-task-tracker/internal/task/repository"
)

// Register writes the sender's user record. An existing record is returned
// untouched; role changes go through an administrator.
func (uc *implUseCase) Register(ctx context.Context, sc model.Scope, input command.Register) (task.RegisterOutput, error) {
	existing, err := uc.users.GetUser(ctx, sc.UserID)
	switch {
	case err == nil:
		return task.RegisterOutput{User: existing, AlreadyRegistered: true}, nil
	case !errors.Is(err, repository.ErrNotFound):
		uc.l.Errorf(ctx, "task.usecase.Register: failed to look up %s: %v", sc.UserID, err)
		return task.RegisterOutput{}, err
	}

	username := strings.TrimSpace(input.Username)
	realName := strings.TrimSpace(input.RealName)
	if username == "" || realName == "" {
		return task.RegisterOutput{}, task.ErrRegisterIncomplete
	}

	u := model.User{
		ID:        sc.UserID,
		Username:  username,
		RealName:  realName,
		Role:      model.NormalizeRole(input.Role),
		Status:    "Active",
		UpdatedAt: uc.stamp(),
	}
	if err := uc.users.UpsertUser(ctx, u); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Register: failed to write %s: %v", sc.UserID, err)
		return task.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Register: registered %s as %s (%s)", sc.UserID, u.Username, u.Role)
	return task.RegisterOutput{User: u}, nil
}
