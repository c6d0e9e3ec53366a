package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/example/practicebot/internal/bot"
	"github.com/example/practicebot/internal/config"
	"github.com/example/practicebot/internal/database"
	"github.com/example/practicebot/internal/logger"
	"github.com/example/practicebot/internal/practice"
	"github.com/example/practicebot/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet.
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	log.Info("database ready")

	users := database.NewUserRepository(db, log)
	practices := database.NewPracticeRepository(db, log)
	stats := database.NewStatsRepository(db, users, log)

	catalog := practice.Builtin()
	if cfg.PracticeCatalogFile != "" {
		result, err := catalog.ImportFile(cfg.PracticeCatalogFile)
		if err != nil {
			log.Fatal("failed to import practice catalog", zap.Error(err))
		}
		log.Info("practice catalog imported",
			zap.String("file", cfg.PracticeCatalogFile),
			zap.Int("added", result.Added),
			zap.Int("replaced", result.Replaced),
			zap.Int("skipped", result.Skipped),
		)
		for _, e := range result.Errors {
			log.Warn("catalog import row skipped", zap.String("reason", e))
		}
	}

	b, err := bot.New(cfg.TelegramBotToken, users, practices, stats, catalog, log)
	if err != nil {
		log.Fatal("failed to create bot", zap.Error(err))
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("failed to resolve timezone", zap.Error(err))
	}

	sched, err := scheduler.New(users, b, log, loc, cfg.ReminderHour, cfg.ReminderMinute)
	if err != nil {
		log.Fatal("failed to create scheduler", zap.Error(err))
	}
	if err := sched.Start(ctx); err != nil {
		log.Fatal("failed to start scheduler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	httpSrv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", zap.Error(err))
		}
	}()

	go func() {
		if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("bot error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	cancel()
	sched.Stop()

	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	if err := httpSrv.Shutdown(shCtx); err != nil {
		log.Warn("http server shutdown error", zap.Error(err))
	}

	log.Info("bot stopped")
}
