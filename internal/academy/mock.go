package academy

import (
	"sync"

	"github.com/mauv0809/football-academy/internal/roster"
)

// MockStore is a mock implementation of the AcademyStore interface for
// testing. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListPlayersFunc              func() ([]PlayerRow, error)
	SearchPlayersFunc            func(term string) ([]PlayerRow, error)
	PlayersByAgeGroupFunc        func(groupName string) ([]PlayerRow, error)
	PlayersByTypeFunc            func(typeName string) ([]PlayerRow, error)
	GetPlayerFunc                func(playerID int64) (*Player, error)
	AddPlayerFunc                func(p NewPlayer) (int64, error)
	UpdatePlayerFunc             func(playerID int64, u PlayerUpdate) error
	DeletePlayerFunc             func(playerID int64) error
	ImportPlayersFunc            func(records []roster.Record, replace bool) (int, error)
	ListPlayerTypesFunc          func() ([]PlayerType, error)
	ListAgeGroupsFunc            func() ([]AgeGroup, error)
	AddAgeGroupFunc              func(name string, budget int) (int64, error)
	UpdateAgeGroupFunc           func(groupID int64, name *string, budget *int) error
	DeleteAgeGroupFunc           func(groupID int64) error
	ListLeagueTeamsFunc          func() ([]LeagueTeam, error)
	AddLeagueTeamFunc            func(name string) (int64, error)
	UpdateLeagueTeamFunc         func(teamID int64, name string) error
	DeleteLeagueTeamFunc         func(teamID int64) error
	SeedReferenceDataFunc        func(ref ReferenceData) error
	StatisticsFunc               func() ([]AgeGroupStatistic, error)
	RecalculateStatisticsFunc    func(groupID int64) error
	RecalculateAllStatisticsFunc func() error
	BirthdaysInMonthFunc         func(month int) ([]PlayerRow, error)
	IDPMeetingsFunc              func(month IDPMonth) ([]PlayerRow, error)
	SecondaryAgeGroupPlayersFunc func() ([]PlayerRow, error)
	RecordImportRunFunc          func(run ImportRun) error
	ImportRunsFunc               func() ([]ImportRun, error)

	// Call records
	AddPlayerCalls    []NewPlayer
	UpdatePlayerCalls []struct {
		PlayerID int64
		Update   PlayerUpdate
	}
	DeletePlayerCalls  []int64
	ImportPlayersCalls []struct {
		Records []roster.Record
		Replace bool
	}
	SeedReferenceDataCalls []ReferenceData
	RecordImportRunCalls   []ImportRun
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.UpdatePlayerCalls = nil
	m.DeletePlayerCalls = nil
	m.ImportPlayersCalls = nil
	m.SeedReferenceDataCalls = nil
	m.RecordImportRunCalls = nil
}

func (m *MockStore) ListPlayers() ([]PlayerRow, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) SearchPlayers(term string) ([]PlayerRow, error) {
	if m.SearchPlayersFunc != nil {
		return m.SearchPlayersFunc(term)
	}
	return nil, nil
}

func (m *MockStore) PlayersByAgeGroup(groupName string) ([]PlayerRow, error) {
	if m.PlayersByAgeGroupFunc != nil {
		return m.PlayersByAgeGroupFunc(groupName)
	}
	return nil, nil
}

func (m *MockStore) PlayersByType(typeName string) ([]PlayerRow, error) {
	if m.PlayersByTypeFunc != nil {
		return m.PlayersByTypeFunc(typeName)
	}
	return nil, nil
}

func (m *MockStore) GetPlayer(playerID int64) (*Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, ErrNotFound
}

func (m *MockStore) AddPlayer(p NewPlayer) (int64, error) {
	m.mu.Lock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, p)
	m.mu.Unlock()
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(p)
	}
	return int64(len(m.AddPlayerCalls)), nil
}

func (m *MockStore) UpdatePlayer(playerID int64, u PlayerUpdate) error {
	m.mu.Lock()
	m.UpdatePlayerCalls = append(m.UpdatePlayerCalls, struct {
		PlayerID int64
		Update   PlayerUpdate
	}{playerID, u})
	m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(playerID, u)
	}
	return nil
}

func (m *MockStore) DeletePlayer(playerID int64) error {
	m.mu.Lock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, playerID)
	m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) ImportPlayers(records []roster.Record, replace bool) (int, error) {
	m.mu.Lock()
	m.ImportPlayersCalls = append(m.ImportPlayersCalls, struct {
		Records []roster.Record
		Replace bool
	}{records, replace})
	m.mu.Unlock()
	if m.ImportPlayersFunc != nil {
		return m.ImportPlayersFunc(records, replace)
	}
	return len(records), nil
}

func (m *MockStore) ListPlayerTypes() ([]PlayerType, error) {
	if m.ListPlayerTypesFunc != nil {
		return m.ListPlayerTypesFunc()
	}
	return nil, nil
}

func (m *MockStore) ListAgeGroups() ([]AgeGroup, error) {
	if m.ListAgeGroupsFunc != nil {
		return m.ListAgeGroupsFunc()
	}
	return nil, nil
}

func (m *MockStore) AddAgeGroup(name string, budget int) (int64, error) {
	if m.AddAgeGroupFunc != nil {
		return m.AddAgeGroupFunc(name, budget)
	}
	return 0, nil
}

func (m *MockStore) UpdateAgeGroup(groupID int64, name *string, budget *int) error {
	if m.UpdateAgeGroupFunc != nil {
		return m.UpdateAgeGroupFunc(groupID, name, budget)
	}
	return nil
}

func (m *MockStore) DeleteAgeGroup(groupID int64) error {
	if m.DeleteAgeGroupFunc != nil {
		return m.DeleteAgeGroupFunc(groupID)
	}
	return nil
}

func (m *MockStore) ListLeagueTeams() ([]LeagueTeam, error) {
	if m.ListLeagueTeamsFunc != nil {
		return m.ListLeagueTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) AddLeagueTeam(name string) (int64, error) {
	if m.AddLeagueTeamFunc != nil {
		return m.AddLeagueTeamFunc(name)
	}
	return 0, nil
}

func (m *MockStore) UpdateLeagueTeam(teamID int64, name string) error {
	if m.UpdateLeagueTeamFunc != nil {
		return m.UpdateLeagueTeamFunc(teamID, name)
	}
	return nil
}

func (m *MockStore) DeleteLeagueTeam(teamID int64) error {
	if m.DeleteLeagueTeamFunc != nil {
		return m.DeleteLeagueTeamFunc(teamID)
	}
	return nil
}

func (m *MockStore) SeedReferenceData(ref ReferenceData) error {
	m.mu.Lock()
	m.SeedReferenceDataCalls = append(m.SeedReferenceDataCalls, ref)
	m.mu.Unlock()
	if m.SeedReferenceDataFunc != nil {
		return m.SeedReferenceDataFunc(ref)
	}
	return nil
}

func (m *MockStore) Statistics() ([]AgeGroupStatistic, error) {
	if m.StatisticsFunc != nil {
		return m.StatisticsFunc()
	}
	return nil, nil
}

func (m *MockStore) RecalculateStatistics(groupID int64) error {
	if m.RecalculateStatisticsFunc != nil {
		return m.RecalculateStatisticsFunc(groupID)
	}
	return nil
}

func (m *MockStore) RecalculateAllStatistics() error {
	if m.RecalculateAllStatisticsFunc != nil {
		return m.RecalculateAllStatisticsFunc()
	}
	return nil
}

func (m *MockStore) BirthdaysInMonth(month int) ([]PlayerRow, error) {
	if m.BirthdaysInMonthFunc != nil {
		return m.BirthdaysInMonthFunc(month)
	}
	return nil, nil
}

func (m *MockStore) IDPMeetings(month IDPMonth) ([]PlayerRow, error) {
	if m.IDPMeetingsFunc != nil {
		return m.IDPMeetingsFunc(month)
	}
	return nil, nil
}

func (m *MockStore) SecondaryAgeGroupPlayers() ([]PlayerRow, error) {
	if m.SecondaryAgeGroupPlayersFunc != nil {
		return m.SecondaryAgeGroupPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) RecordImportRun(run ImportRun) error {
	m.mu.Lock()
	m.RecordImportRunCalls = append(m.RecordImportRunCalls, run)
	m.mu.Unlock()
	if m.RecordImportRunFunc != nil {
		return m.RecordImportRunFunc(run)
	}
	return nil
}

func (m *MockStore) ImportRuns() ([]ImportRun, error) {
	if m.ImportRunsFunc != nil {
		return m.ImportRunsFunc()
	}
	return nil, nil
}

var _ AcademyStore = (*MockStore)(nil)
