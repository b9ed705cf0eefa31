package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/metrics"
	"github.com/mauv0809/football-academy/internal/roster"
)

// New creates a new Importer seeding the academy's default reference data.
// counters may be nil.
func New(store Store, m metrics.Metrics, counters metrics.MetricsStore) *Importer {
	return &Importer{
		store:     store,
		metrics:   m,
		counters:  counters,
		reference: academy.DefaultReferenceData(),
		now:       time.Now,
	}
}

// WithReferenceData replaces the reference data seeded before the import.
func (imp *Importer) WithReferenceData(ref academy.ReferenceData) *Importer {
	imp.reference = ref
	return imp
}

// Run seeds the reference data, parses opts.File and imports every player it
// contains. Statistics of all age groups are rebuilt afterwards.
func (imp *Importer) Run(ctx context.Context, opts Options) (*Report, error) {
	started := imp.now()
	log.Info("Starting import", "file", opts.File, "replace", opts.Replace)

	if err := imp.store.SeedReferenceData(imp.reference); err != nil {
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser, err := imp.parser()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(opts.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	result, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", opts.File, err)
	}
	for _, s := range result.Skipped {
		log.Debug("Skipped roster line", "line", s.Line, "reason", s.Reason, "text", s.Text)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	imported, err := imp.store.ImportPlayers(result.Records, opts.Replace)
	if err != nil {
		return nil, fmt.Errorf("failed to import players: %w", err)
	}
	if err := imp.store.RecalculateAllStatistics(); err != nil {
		return nil, fmt.Errorf("failed to recalculate statistics: %w", err)
	}

	finished := imp.now()
	report := &Report{
		RunID:           uuid.NewString(),
		Source:          opts.File,
		LinesRead:       result.LinesRead,
		PlayersImported: imported,
		Skipped:         result.Skipped,
		Duration:        finished.Sub(started),
	}

	err = imp.store.RecordImportRun(academy.ImportRun{
		ID:              report.RunID,
		Source:          report.Source,
		StartedAt:       started,
		FinishedAt:      finished,
		LinesRead:       report.LinesRead,
		PlayersImported: report.PlayersImported,
		LinesSkipped:    len(report.Skipped),
		Replaced:        opts.Replace,
	})
	if err != nil {
		log.Warn("Import succeeded but the run could not be recorded", "error", err, "runID", report.RunID)
	}

	imp.record(report)
	log.Info("Import finished", "runID", report.RunID, "players", imported,
		"skipped", len(report.Skipped), "duration", report.Duration)
	return report, nil
}

// parser builds a roster parser from the player types and age groups stored
// in the database.
func (imp *Importer) parser() (*roster.Parser, error) {
	types, err := imp.store.ListPlayerTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load player types: %w", err)
	}
	groups, err := imp.store.ListAgeGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to load age groups: %w", err)
	}

	codes := make([]string, 0, len(types))
	for _, t := range types {
		codes = append(codes, t.Code)
	}
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	if len(codes) == 0 {
		codes = nil
	}
	return roster.NewParser(codes, names), nil
}

func (imp *Importer) record(r *Report) {
	if imp.metrics != nil {
		imp.metrics.AddImportLines(metrics.OutcomeImported, r.PlayersImported)
		imp.metrics.AddImportLines(metrics.OutcomeSkipped, len(r.Skipped))
		imp.metrics.ObserveImportDuration(r.Duration.Seconds())
	}
	if imp.counters != nil {
		imp.counters.Increment(CounterImportRuns)
		imp.counters.Add(CounterPlayersImported, r.PlayersImported)
		imp.counters.Add(CounterLinesSkipped, len(r.Skipped))
	}
}
