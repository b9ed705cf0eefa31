package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/config"
	"github.com/mauv0809/football-academy/internal/console"
	"github.com/mauv0809/football-academy/internal/database"
	"github.com/mauv0809/football-academy/internal/logging"
	"github.com/mauv0809/football-academy/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// env holds what every command needs once the database is open.
type env struct {
	cfg      config.Config
	db       *sql.DB
	store    academy.AcademyStore
	counters metrics.MetricsStore
	metrics  *metrics.Service
	registry *prometheus.Registry
	out      *console.Printer
	closers  []func()
}

var app *env

var rootCmd = &cobra.Command{
	Use:   "academy-cli",
	Short: "A CLI to query and maintain the football academy database",
	Long: `A command-line companion to the interactive manager. It reads the
same SQLite database and offers the reports, statistics maintenance
and exports without the menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: openEnv,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().String("db", config.DefaultDBName, "Path of the SQLite database file")
	rootCmd.PersistentFlags().String("driver", "sqlite3", "SQLite driver: sqlite3 (cgo) or sqlite (pure Go)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this textfile after the command")
}

// noDatabase lists the built-in commands that run without opening the database.
var noDatabase = map[string]bool{
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// needsDatabase is false for the built-in commands and their subcommands.
func needsDatabase(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if noDatabase[c.Name()] {
			return false
		}
	}
	return true
}

func openEnv(cmd *cobra.Command, args []string) error {
	if !needsDatabase(cmd) {
		return nil
	}
	cfg := config.Load(cmd.Flags())
	if !cmd.Flags().Changed("log-level") && os.Getenv(config.KeyLogLevel) == "" {
		cfg.Log.Level = "warn"
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}

	db, teardown, err := database.InitDB(cfg)
	if err != nil {
		closeLog()
		return fmt.Errorf("failed to open database: %w", err)
	}

	reg := prometheus.NewRegistry()
	svc := metrics.NewService(reg)
	app = &env{
		cfg:      cfg,
		db:       db,
		store:    academy.New(db, svc),
		counters: metrics.New(db),
		metrics:  svc,
		registry: reg,
		out:      console.New(cmd.OutOrStdout()),
		closers:  []func(){teardown, func() { _ = closeLog() }},
	}
	app.counters.Increment("cli_" + cmd.Name())
	return nil
}

func closeEnv() {
	if app == nil {
		return
	}
	if app.cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(app.cfg.MetricsFile, app.registry); err != nil {
			log.Error("Failed to write metrics", "error", err)
		}
	}
	for _, c := range app.closers {
		c()
	}
	app = nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		closeEnv()
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
