package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/config"
	"github.com/mauv0809/football-academy/internal/console"
	"github.com/mauv0809/football-academy/internal/database"
	"github.com/mauv0809/football-academy/internal/importer"
	"github.com/mauv0809/football-academy/internal/logging"
	"github.com/mauv0809/football-academy/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

func main() {
	startTime := time.Now()

	flags := pflag.NewFlagSet("importer", pflag.ExitOnError)
	flags.String("db", config.DefaultDBName, "Path of the SQLite database file")
	flags.String("driver", "sqlite3", "SQLite driver: sqlite3 (cgo) or sqlite (pure Go)")
	flags.String("file", config.DefaultImportFile, "Roster text file to import")
	flags.String("log-level", "info", "Log level")
	flags.String("log-file", "", "Write JSON logs to this file instead of stderr")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile when done")
	replace := flags.Bool("replace", false, "Remove all existing players before importing")
	_ = flags.Parse(os.Args[1:])

	cfg := config.Load(flags)
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to configure logging: %s", err)
	}
	defer closeLog()

	log.Info("Starting academy importer...", "db", cfg.DBName, "file", cfg.ImportFile)
	db, dbTeardown, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	store := academy.New(db, metricsSvc)
	metricsSvc.SetStartupTime(time.Since(startTime).Seconds())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := importer.New(store, metricsSvc, metrics.New(db)).Run(ctx, importer.Options{
		File:    cfg.ImportFile,
		Replace: *replace,
	})
	if err != nil {
		log.Error("Import failed", "error", err)
		stop()
		dbTeardown()
		_ = closeLog()
		os.Exit(1)
	}

	out := console.New(os.Stdout)
	if err := out.ImportReport(report); err != nil {
		log.Error("Failed to print import summary", "error", err)
	}
	stats, err := store.Statistics()
	if err != nil {
		log.Error("Failed to read statistics", "error", err)
	} else {
		out.Title("Academy statistics")
		if err := out.Statistics(stats); err != nil {
			log.Error("Failed to print statistics", "error", err)
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			log.Error("Failed to write metrics", "error", err)
		}
	}
	log.Info("Importer finished", "duration_ms", time.Since(startTime).Milliseconds())
}
