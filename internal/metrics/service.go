package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_mutations_total",
			Help: "The total number of successful writes, by entity and operation.",
		}, []string{"entity", "operation"}),
		MutationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_mutation_failures_total",
			Help: "The total number of writes that were rejected or failed.",
		}, []string{"entity", "operation"}),
		ImportLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "academy_import_lines_total",
			Help: "Roster lines handled by the importer, by outcome.",
		}, []string{"outcome"}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "academy_import_duration_seconds",
			Help:    "The duration of a roster import run.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "academy_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Mutations,
		s.MutationFailures,
		s.ImportLines,
		s.ImportDuration,
		s.StartupTimeSeconds,
	)

	return s
}

// WriteTextfile dumps the gathered metrics in the text exposition format, for
// pickup by a node_exporter textfile collector. If no gatherer is provided, it
// uses the default one.
func WriteTextfile(path string, gatherer ...prometheus.Gatherer) error {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	if err := prometheus.WriteToTextfile(path, gath); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func (s *Service) IncMutation(entity, operation string) {
	s.Mutations.WithLabelValues(entity, operation).Inc()
}

func (s *Service) IncMutationFailed(entity, operation string) {
	s.MutationFailures.WithLabelValues(entity, operation).Inc()
}

func (s *Service) AddImportLines(outcome string, n int) {
	s.ImportLines.WithLabelValues(outcome).Add(float64(n))
}

func (s *Service) ObserveImportDuration(seconds float64) {
	s.ImportDuration.Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
