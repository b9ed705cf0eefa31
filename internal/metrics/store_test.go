package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mauv0809/football-academy/internal/config"
	"github.com/mauv0809/football-academy/internal/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary SQLite database file for testing.
func setupTestDB(t *testing.T) (MetricsStore, func()) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "testdb_metrics.db")
	db, teardown, err := database.InitDB(config.Config{DBName: path})
	require.NoError(t, err)

	return New(db), teardown
}

func TestIncrementAndGetAll(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	// 1. Initially, there should be no metrics
	metrics, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, metrics)

	// 2. Increment a new key
	store.Increment("imports_run")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"imports_run": 1}, metrics)

	// 3. Increment the same key again
	store.Increment("imports_run")
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"imports_run": 2}, metrics)

	// 4. Add to a different key
	store.Add("players_imported", 41)
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"imports_run":      2,
		"players_imported": 41,
	}, metrics)
}

func TestService_CountsAndWritesTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncMutation("player", "add")
	svc.IncMutation("player", "add")
	svc.IncMutationFailed("age_group", "delete")
	svc.AddImportLines(OutcomeSkipped, 3)
	svc.ObserveImportDuration(0.2)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.Mutations.WithLabelValues("player", "add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.MutationFailures.WithLabelValues("age_group", "delete")))
	assert.Equal(t, 3.0, testutil.ToFloat64(svc.ImportLines.WithLabelValues(OutcomeSkipped)))

	path := filepath.Join(t.TempDir(), "academy.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `academy_mutations_total{entity="player",operation="add"} 2`)
	assert.Contains(t, string(data), "academy_import_duration_seconds_count 1")
}
