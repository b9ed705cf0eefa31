package importer

import (
	"time"

	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/metrics"
	"github.com/mauv0809/football-academy/internal/roster"
)

// Persisted counter keys bumped by every run.
const (
	CounterImportRuns      = "import_runs"
	CounterPlayersImported = "players_imported"
	CounterLinesSkipped    = "lines_skipped"
)

// Importer loads a roster file into the academy database.
type Importer struct {
	store     Store
	metrics   metrics.Metrics
	counters  metrics.MetricsStore
	reference academy.ReferenceData
	now       func() time.Time
}

// Options controls a single import run.
type Options struct {
	File string
	// Replace removes all existing players before importing.
	Replace bool
}

// Report summarises a finished import run.
type Report struct {
	RunID           string
	Source          string
	LinesRead       int
	PlayersImported int
	Skipped         []roster.SkippedLine
	Duration        time.Duration
}
