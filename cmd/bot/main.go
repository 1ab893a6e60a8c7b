package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"peacey/internal/assistant"
	"peacey/internal/config"
	"peacey/internal/logging"
	"peacey/internal/scheduler"
	"peacey/internal/storage"
	"peacey/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warnf(".env file not found: %v", err)
	}

	cfg := config.New()
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		logrus.Fatalf("failed to configure logging: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		logrus.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	a, err := assistant.Build(cfg)
	if err != nil {
		logrus.Fatalf("failed to build assistant: %v", err)
	}

	var rec storage.Recorder
	if r, err := storage.Open(cfg.StorageDriver, cfg.StoragePath()); err != nil {
		logrus.Errorf("failed to init interaction log, continuing without it: %v", err)
	} else {
		rec = r
		defer rec.Close()
	}

	bot, err := telegram.New(cfg.TelegramBotToken, telegram.Options{
		Responder:     a.Responder,
		Catalog:       a.Catalog,
		AssistantName: a.Name,
		TypingDelay:   cfg.TypingDelay,
		Recorder:      rec,
		AdminUserID:   cfg.AdminUserID,
	})
	if err != nil {
		logrus.Fatalf("failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(cfg.ReportSchedule)
	sched.SetReportFunction(bot.SendDailyReport)
	if err := sched.Start(); err != nil {
		logrus.Fatalf("failed to start scheduler: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bot.Start(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	if err := g.Wait(); err != nil {
		logrus.Errorf("shutdown: %v", err)
	}
	logrus.Info("bye")
}
