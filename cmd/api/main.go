package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"line-task-tracker/config"
	_ "line-task-tracker/docs" // Swagger docs
	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	draftUsecase "line-task-tracker/internal/draft/usecase"
	"line-task-tracker/internal/httpserver"
	"line-task-tracker/internal/middleware"
	"line-task-tracker/internal/pager"
	reminderHTTP "line-task-tracker/internal/reminder/delivery/http"
	reminderUsecase "line-task-tracker/internal/reminder/usecase"
	"line-task-tracker/internal/state"
	lineDelivery "line-task-tracker/internal/task/delivery/line"
	"line-task-tracker/internal/task/repository/appscript"
	"line-task-tracker/internal/task/repository/calendar"
	taskUsecase "line-task-tracker/internal/task/usecase"
	"line-task-tracker/pkg/datemath"
	"line-task-tracker/pkg/gcalendar"
	pkgLine "line-task-tracker/pkg/line"
	"line-task-tracker/pkg/log"
)

// userStateSize bounds each per-user store.
const userStateSize = 5000

// @title       LINE Task Tracker API
// @description Task assignment and follow-up over LINE, stored in a Google Sheet through Apps Script.
// @version     1
// @host        localhost:8080
// @schemes     http https
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LINE task tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dates
	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to Asia/Bangkok: %v", cfg.App.Timezone, err)
		dateMathParser, _ = datemath.NewParser("Asia/Bangkok")
	}

	// 4. Store
	scriptClient := appscript.NewClient(cfg.AppScript.ExecURL, cfg.AppScript.AppKey, cfg.AppScript.Timeout)
	taskRepo := appscript.NewTaskRepository(scriptClient, logger)
	userRepo := appscript.NewUserRepository(scriptClient, logger, cfg.App.UserCacheTTL)

	// 5. Calendar mirror (optional)
	var mirror taskUsecase.Mirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			mirror = calendar.NewMirror(logger, calendarClient, dateMathParser, calendar.Options{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.App.Timezone,
				Duration:   cfg.GoogleCalendar.EventDuration,
			})
			logger.Infof(ctx, "Google Calendar mirror enabled for %s", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 6. Use cases
	taskUC := taskUsecase.New(logger, taskRepo, userRepo, dateMathParser, mirror)
	draftUC := draftUsecase.New(
		logger,
		userRepo,
		taskRepo,
		state.NewMemory[draft.Draft](state.Options{Size: userStateSize, TTL: cfg.App.DraftTTL}),
		state.NewMemory[draft.Preset](state.Options{Size: userStateSize, TTL: cfg.App.DraftTTL}),
		dateMathParser,
		mirror,
	)

	// 7. LINE delivery
	bot := pkgLine.NewBot(ctx, pkgLine.Config{
		ChannelID:     cfg.Line.ChannelID,
		ChannelSecret: cfg.Line.ChannelSecret,
		AccessToken:   cfg.Line.AccessToken,
		APIURL:        cfg.Line.APIURL,
		Timeout:       cfg.Line.Timeout,
	})
	lineHandler := lineDelivery.New(
		logger,
		bot,
		command.NewParser(dateMathParser),
		taskUC,
		draftUC,
		pager.New(state.NewMemory[pager.Cursor](state.Options{Size: userStateSize})),
		dateMathParser,
	)

	// 8. Scheduled jobs and export
	reminderUC := reminderUsecase.New(logger, taskRepo, userRepo, bot, dateMathParser, reminderUsecase.Config{
		ExportURL:   reminderUsecase.ExportURL(cfg.App.PublicURL, cfg.App.CronKey),
		Concurrency: cfg.App.Concurrency,
	})
	reminderHandler := reminderHTTP.New(logger, reminderUC, taskUC, cfg.App.JobTimeout)
	if cfg.App.CronKey == "" {
		logger.Warn(ctx, "app.cron_key is empty, scheduler and export routes will reject every call")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		LineHandler:     lineHandler,
		ReminderHandler: reminderHandler,
		Middleware: middleware.New(logger, middleware.Config{
			ChannelSecret:   cfg.Line.ChannelSecret,
			CronKey:         cfg.App.CronKey,
			RateLimitPerMin: cfg.App.RateLimitPerMin,
		}),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
