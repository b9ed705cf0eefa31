package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	mutations      map[string]int
	failures       map[string]int
	importLines    map[string]int
	importDuration []float64
	startupTime    float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		mutations:   make(map[string]int),
		failures:    make(map[string]int),
		importLines: make(map[string]int),
	}
}

func (m *Mock) IncMutation(entity, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations[entity+"."+operation]++
}

func (m *Mock) IncMutationFailed(entity, operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[entity+"."+operation]++
}

func (m *Mock) AddImportLines(outcome string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importLines[outcome] += n
}

func (m *Mock) ObserveImportDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.importDuration = append(m.importDuration, seconds)
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// Mutations returns how often IncMutation was called for entity and operation.
func (m *Mock) Mutations(entity, operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutations[entity+"."+operation]
}

// Failures returns how often IncMutationFailed was called for entity and operation.
func (m *Mock) Failures(entity, operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[entity+"."+operation]
}

// ImportLines returns the total added for outcome.
func (m *Mock) ImportLines(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.importLines[outcome]
}

// ImportRuns returns the number of observed import durations.
func (m *Mock) ImportRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.importDuration)
}
