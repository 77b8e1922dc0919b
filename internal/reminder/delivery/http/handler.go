package http

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/reminder"
	"line-task-tracker/internal/task"
	pkgResponse "line-task-tracker/pkg/response"
)

var csvHeaders = []string{
	"task_id", "assigner_name", "assigner_id", "assignee_name", "assignee_id",
	"task_detail", "status", "created_date", "updated_date", "deadline", "note",
}

// RunJob triggers a digest job.
// @Summary Run a digest job
// @Description Triggered by an external scheduler. The job runs in the background unless wait=true.
// @Tags cron
// @Produce json
// @Param job path string true "morning, evening or supervisor"
// @Param key query string true "cron key"
// @Param wait query bool false "run synchronously and return the report"
// @Success 200 {object} pkgResponse.Resp
// @Failure 400 {object} pkgResponse.Resp
// @Failure 403 {object} pkgResponse.Resp
// @Router /api/cron/{job} [post]
func (h *handler) RunJob(c *gin.Context) {
	ctx := c.Request.Context()

	job := reminder.Job(c.Param("job"))
	switch job {
	case reminder.JobMorning, reminder.JobEvening, reminder.JobSupervisor:
	default:
		h.l.Warnf(ctx, "reminder http: unknown job %q", job)
		pkgResponse.Error(c, fmt.Errorf("%w: %q", reminder.ErrUnknownJob, job), nil)
		return
	}

	if c.Query("wait") == "true" {
		runCtx, cancel := context.WithTimeout(ctx, h.jobTimeout)
		defer cancel()
		started := time.Now()
		report, err := h.reminderUC.Run(runCtx, job)
		if err != nil {
			h.l.Errorf(ctx, "reminder http: job %s failed: %v", job, err)
			pkgResponse.InternalError(c, err)
			return
		}
		pkgResponse.OK(c, newJobResp(report, started, time.Now()))
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), h.jobTimeout)
		defer cancel()
		if _, err := h.reminderUC.Run(bgCtx, job); err != nil {
			h.l.Errorf(bgCtx, "reminder http: background job %s failed: %v", job, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted", "job": string(job)})
}

// ExportTasks streams the task sheet as CSV.
// @Summary Export tasks as CSV
// @Tags export
// @Produce text/csv
// @Param k query string true "cron key"
// @Param assignee_id query string false "assignee LINE id"
// @Param assignee_name query string false "assignee name, used without assignee_id"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Success 200 {string} string "CSV"
// @Failure 403 {object} pkgResponse.Resp
// @Router /api/tasks/export [get]
func (h *handler) ExportTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var in task.ExportInput
	if err := c.ShouldBindQuery(&in); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	tasks, err := h.taskUC.Export(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "reminder http: export failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=UTF-8")
	c.Header("Content-Disposition", `attachment; filename="tasks_export.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(csvHeaders); err != nil {
		h.l.Errorf(ctx, "reminder http: failed to write csv: %v", err)
		return
	}
	for _, t := range tasks {
		if err := w.Write(csvRow(t)); err != nil {
			h.l.Errorf(ctx, "reminder http: failed to write csv: %v", err)
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.l.Errorf(ctx, "reminder http: failed to flush csv: %v", err)
	}
}

func csvRow(t model.Task) []string {
	return []string{
		t.ID, t.AssignerName, t.AssignerID, t.AssigneeName, t.AssigneeID,
		t.Detail, string(t.Status), t.CreatedAt, t.UpdatedAt, t.Deadline, t.Note,
	}
}
