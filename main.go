package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/config"
	"github.com/mauv0809/football-academy/internal/database"
	"github.com/mauv0809/football-academy/internal/logging"
	"github.com/mauv0809/football-academy/internal/menu"
	"github.com/mauv0809/football-academy/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

// counterSessions counts interactive manager sessions.
const counterSessions = "manager_sessions"

func main() {
	// Start profiling timer
	startTime := time.Now()

	flags := pflag.NewFlagSet("football-academy", pflag.ExitOnError)
	flags.String("db", config.DefaultDBName, "Path of the SQLite database file")
	flags.String("driver", "sqlite3", "SQLite driver: sqlite3 (cgo) or sqlite (pure Go)")
	flags.String("log-level", "warn", "Log level")
	flags.String("log-file", "", "Write JSON logs to this file instead of stderr")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile on exit")
	_ = flags.Parse(os.Args[1:])

	cfg := config.Load(flags)
	// Info logs on stderr would interleave with the menu.
	if !flags.Changed("log-level") && os.Getenv(config.KeyLogLevel) == "" && cfg.Log.File == "" {
		cfg.Log.Level = "warn"
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to configure logging: %s", err)
	}
	defer closeLog()

	db, dbTeardown, err := database.InitDB(cfg)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Error("Failed to connect to the database", "error", err)
		log.Fatal("Run the importer first to create the database.")
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	counters := metrics.New(db)
	store := academy.New(db, metricsSvc)
	counters.Increment(counterSessions)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := menu.New(store, os.Stdin, os.Stdout).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Manager stopped", "error", err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			log.Error("Failed to write metrics", "error", err)
		}
	}
}
