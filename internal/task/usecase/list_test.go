package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
)

func seed(repo *memoryRepo, tasks ...model.Task) {
	for _, t := range tasks {
		repo.tasks[t.ID] = t
	}
}

func TestListPending(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seed(repo,
		model.Task{ID: "TASK_2", AssigneeID: "U_po", Status: model.StatusDoing, Deadline: "2024-05-05T09:00:00"},
		model.Task{ID: "TASK_3", AssigneeID: "U_po", Status: model.StatusDone},
		model.Task{ID: "TASK_4", AssigneeID: "U_mint", Status: model.StatusPending},
		model.Task{ID: "TASK_5", AssigneeID: "U_po", Status: model.StatusPending, Deadline: "2024-05-01T17:30:00"},
	)

	got, err := uc.ListPending(context.Background(), poScope)
	require.NoError(t, err)
	assert.Equal(t, []string{"TASK_2", "TASK_5", "TASK_1"}, taskIDs(got))
}

func TestListAssigned(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seed(repo,
		model.Task{ID: "TASK_2", AssignerID: "U_boss", Status: model.StatusDone, Note: "[URGENT]"},
		model.Task{ID: "TASK_3", AssignerID: "U_boss", Status: model.StatusPending, Deadline: "2024-04-30T17:30:00"},
		model.Task{ID: "TASK_4", AssignerID: "U_mint", Status: model.StatusPending},
	)

	got, err := uc.ListAssigned(context.Background(), bossScope)
	require.NoError(t, err)
	assert.Equal(t, []string{"TASK_1", "TASK_3", "TASK_2"}, taskIDs(got))
	assert.Equal(t, "U_boss", repo.lastOpt.AssignerID)
}

func TestListToday(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	seed(repo,
		model.Task{ID: "TASK_2", AssigneeID: "U_po", Status: model.StatusPending, Deadline: "2024-05-01T17:30:00"},
		model.Task{ID: "TASK_3", AssigneeID: "U_po", Status: model.StatusDoing},
	)

	got, err := uc.ListToday(context.Background(), poScope)
	require.NoError(t, err)
	assert.Equal(t, []string{"TASK_2", "TASK_3"}, taskIDs(got))
}

func TestListRange(t *testing.T) {
	ctx := context.Background()

	t.Run("passes day bounds", func(t *testing.T) {
		uc, repo, _ := newTestUseCase(t)
		_, err := uc.ListRange(ctx, poScope, command.ListRange{From: "01/05/2024", To: "31/05/2024"})
		require.NoError(t, err)
		assert.Equal(t, "U_po", repo.lastOpt.AssigneeID)
		assert.Equal(t, "2024-05-01T00:00:00+07:00", repo.lastOpt.From)
		assert.Equal(t, "2024-05-31T23:59:59+07:00", repo.lastOpt.To)
	})

	for _, in := range []command.ListRange{
		{From: "31/02/2024", To: "01/03/2024"},
		{From: "02/05/2024", To: "01/05/2024"},
	} {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.ListRange(ctx, poScope, in)
		assert.ErrorIs(t, err, task.ErrInvalidRange, "%+v", in)
	}
}

func TestListUsers(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)

	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	assert.Equal(t, []string{"boss", "mint", "po"}, names)
}

func TestExport(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	_, err := uc.Export(context.Background(), task.ExportInput{AssigneeID: "U_po", AssigneeName: "po", From: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, "U_po", repo.lastOpt.AssigneeID)
	assert.Empty(t, repo.lastOpt.AssigneeName)
	assert.Equal(t, "2024-05-01", repo.lastOpt.From)
}
