package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMutation(entity, operation string)
	IncMutationFailed(entity, operation string)
	AddImportLines(outcome string, n int)
	ObserveImportDuration(seconds float64)
	SetStartupTime(seconds float64)
}

// MetricsStore persists named counters in the database so they survive
// between sessions.
type MetricsStore interface {
	Increment(key string)
	Add(key string, delta int)
	GetAll() (map[string]int, error)
}

// Import line outcomes.
const (
	OutcomeImported = "imported"
	OutcomeSkipped  = "skipped"
)
