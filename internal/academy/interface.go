package academy

import "github.com/mauv0809/football-academy/internal/roster"

// AcademyStore defines the interface for interacting with the academy's data.
// Every player write recomputes the statistics of the age groups it touches
// in the same transaction.
type AcademyStore interface {
	ListPlayers() ([]PlayerRow, error)
	SearchPlayers(term string) ([]PlayerRow, error)
	PlayersByAgeGroup(groupName string) ([]PlayerRow, error)
	PlayersByType(typeName string) ([]PlayerRow, error)
	GetPlayer(playerID int64) (*Player, error)
	AddPlayer(p NewPlayer) (int64, error)
	UpdatePlayer(playerID int64, u PlayerUpdate) error
	DeletePlayer(playerID int64) error
	ImportPlayers(records []roster.Record, replace bool) (int, error)

	ListPlayerTypes() ([]PlayerType, error)
	ListAgeGroups() ([]AgeGroup, error)
	AddAgeGroup(name string, budget int) (int64, error)
	UpdateAgeGroup(groupID int64, name *string, budget *int) error
	DeleteAgeGroup(groupID int64) error

	ListLeagueTeams() ([]LeagueTeam, error)
	AddLeagueTeam(name string) (int64, error)
	UpdateLeagueTeam(teamID int64, name string) error
	DeleteLeagueTeam(teamID int64) error

	SeedReferenceData(ref ReferenceData) error

	Statistics() ([]AgeGroupStatistic, error)
	RecalculateStatistics(groupID int64) error
	RecalculateAllStatistics() error

	BirthdaysInMonth(month int) ([]PlayerRow, error)
	IDPMeetings(month IDPMonth) ([]PlayerRow, error)
	SecondaryAgeGroupPlayers() ([]PlayerRow, error)

	RecordImportRun(run ImportRun) error
	ImportRuns() ([]ImportRun, error)
}
