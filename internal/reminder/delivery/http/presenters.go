package http

import (
	"time"

	"line-task-tracker/internal/reminder"
	pkgResponse "line-task-tracker/pkg/response"
)

type jobResp struct {
	reminder.Report
	StartedAt  pkgResponse.DateTime `json:"started_at"`
	FinishedAt pkgResponse.DateTime `json:"finished_at"`
}

func newJobResp(r reminder.Report, started, finished time.Time) jobResp {
	return jobResp{
		Report:     r,
		StartedAt:  pkgResponse.DateTime(started),
		FinishedAt: pkgResponse.DateTime(finished),
	}
}
