package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/wordplan/internal/account"
	"github.com/example/wordplan/internal/config"
	"github.com/example/wordplan/internal/content"
	"github.com/example/wordplan/internal/curriculum"
	"github.com/example/wordplan/internal/database"
	"github.com/example/wordplan/internal/dollar"
	"github.com/example/wordplan/internal/messaging"
	"github.com/example/wordplan/internal/planner"
	"github.com/example/wordplan/internal/review"
	"github.com/example/wordplan/internal/schedule"
	"github.com/example/wordplan/internal/studylog"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg       *config.Config
	db        *sqlx.DB
	location  *time.Location
	planner   *planner.Service
	contents  content.Store
	accounts  account.Repository
	studyLogs studylog.Repository
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}

	var notifier messaging.Notifier = messaging.NopNotifier{}
	if cfg.Webhook.URL != "" {
		notifier = messaging.NewWebhookNotifier(cfg.Webhook.URL, cfg.Webhook.RetryAttempts)
	}

	contents := content.NewDBStore(db)
	accounts := account.NewDBRepository(db)
	studyLogs := studylog.NewDBRepository(db)
	service := planner.NewService(
		planner.Config{
			PassingScore: cfg.Schedule.PassingScore,
			PassReward:   cfg.Schedule.PassReward,
		},
		curriculum.NewDBRepository(db),
		contents,
		studyLogs,
		dollar.NewDBLedger(db),
		accounts,
		messaging.NewDBRepository(db),
		notifier,
		schedule.NewResolver(cfg.Schedule.FallbackWordCount, slog.Default()),
		review.NewQuizBuilder(rand.New(rand.NewSource(time.Now().UnixNano()))),
		slog.Default(),
	)

	return &app{
		cfg:       cfg,
		db:        db,
		location:  loc,
		planner:   service,
		contents:  contents,
		accounts:  accounts,
		studyLogs: studyLogs,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// resolveDate parses a --date flag value, defaulting to today in the
// configured timezone.
func resolveDate(value string, loc *time.Location) (schedule.Date, error) {
	if value == "" {
		return schedule.Today(loc), nil
	}
	return schedule.ParseDate(value)
}

func skipReasonText(reason schedule.SkipReason) string {
	switch reason {
	case schedule.SkipBeforeEnrollment:
		return "the curriculum has not started yet"
	case schedule.SkipNotStudyDay:
		return "not a study day"
	case schedule.SkipOnBreak:
		return "on break"
	case schedule.SkipCompleted:
		return "the curriculum is completed"
	}
	return string(reason)
}
