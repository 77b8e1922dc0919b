package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"line-task-tracker/config"
	"line-task-tracker/internal/reminder"
	reminderUsecase "line-task-tracker/internal/reminder/usecase"
	"line-task-tracker/internal/task/repository/appscript"
	"line-task-tracker/pkg/datemath"
	pkgLine "line-task-tracker/pkg/line"
	"line-task-tracker/pkg/log"
)

// main runs one scheduled notification job and exits. It is meant for hosts
// that drive the jobs from cron instead of calling POST /api/cron/:job.
//
// Usage:
//
//	scheduler -job morning|evening|supervisor
func main() {
	job := flag.String("job", "", "job to run: morning, evening or supervisor")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.App.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.App.JobTimeout)
		defer cancel()
	}

	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.App.Timezone, err)
		os.Exit(1)
	}

	scriptClient := appscript.NewClient(cfg.AppScript.ExecURL, cfg.AppScript.AppKey, cfg.AppScript.Timeout)
	bot := pkgLine.NewBot(ctx, pkgLine.Config{
		ChannelID:     cfg.Line.ChannelID,
		ChannelSecret: cfg.Line.ChannelSecret,
		AccessToken:   cfg.Line.AccessToken,
		APIURL:        cfg.Line.APIURL,
		Timeout:       cfg.Line.Timeout,
	})

	uc := reminderUsecase.New(
		logger,
		appscript.NewTaskRepository(scriptClient, logger),
		appscript.NewUserRepository(scriptClient, logger, cfg.App.UserCacheTTL),
		bot,
		dateMathParser,
		reminderUsecase.Config{
			ExportURL:   reminderUsecase.ExportURL(cfg.App.PublicURL, cfg.App.CronKey),
			Concurrency: cfg.App.Concurrency,
		},
	)

	report, err := uc.Run(ctx, reminder.Job(*job))
	if err != nil {
		logger.Errorf(ctx, "scheduler: job %q failed: %v", *job, err)
		os.Exit(1)
	}
	logger.Infof(ctx, "scheduler: job %s done, recipients=%d sent=%d failed=%d",
		report.Job, report.Recipients, report.Sent, report.Failed)
}
