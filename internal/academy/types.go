package academy

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mauv0809/football-academy/internal/metrics"
	"github.com/mauv0809/football-academy/internal/roster"
)

// store handles all database operations for the academy.
type store struct {
	db      *sql.DB
	mu      sync.RWMutex
	metrics metrics.Metrics
}

// Player type codes used by the statistics columns.
const (
	TypeFullTime    = "FT"
	TypePartTime    = "PT"
	TypeScholarship = "SC"
	TypeTrial       = "T"
)

// PlayerType is a player category such as full time or trial.
type PlayerType struct {
	Code string
	Name string
}

// AgeGroup is a squad such as "B 11 & 12".
type AgeGroup struct {
	ID   int64
	Name string
}

type LeagueTeam struct {
	ID   int64
	Name string
}

// Player is a row of the players table.
type Player struct {
	ID                  int64
	FullName            string
	TypeCode            string
	PrimaryAgeGroupID   *int64
	SecondaryAgeGroupID *int64
	BirthDay            *int
	BirthMonth          *int
	BirthYear           *int
	JerseyNumber        string
	LeagueTeamID        *int64
	Flags               roster.Flags
}

// PlayerRow is a player joined with the display names of its references.
// Missing references are empty strings.
type PlayerRow struct {
	ID                int64
	FullName          string
	PlayerType        string
	AgeGroup          string
	SecondaryAgeGroup string
	BirthDay          *int
	BirthMonth        *int
	BirthYear         *int
	JerseyNumber      string
	LeagueTeam        string
}

// BirthDate formats the birth date as d/m/y, or "" when any part is unknown.
func (r PlayerRow) BirthDate() string {
	if r.BirthDay == nil || r.BirthMonth == nil || r.BirthYear == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", *r.BirthDay, *r.BirthMonth, *r.BirthYear)
}

// NewPlayer holds the fields the manager asks for when adding a player.
type NewPlayer struct {
	FullName     string
	TypeCode     string
	AgeGroup     string
	BirthDay     int
	BirthMonth   int
	BirthYear    int
	JerseyNumber string
}

// PlayerUpdate lists the fields to change; nil fields are left alone.
type PlayerUpdate struct {
	FullName               *string
	TypeCode               *string
	PrimaryAgeGroupID      *int64
	SecondaryAgeGroupID    *int64
	ClearSecondaryAgeGroup bool
	BirthDay               *int
	BirthMonth             *int
	BirthYear              *int
	JerseyNumber           *string
	LeagueTeamID           *int64
	ClearLeagueTeam        bool
	Flags                  *roster.Flags
}

// AgeGroupStatistic is the stored headcount and budget of one age group.
type AgeGroupStatistic struct {
	AgeGroupID  int64
	AgeGroup    string
	Total       int
	Budget      int
	Net         int
	FullTime    int
	PartTime    int
	Scholarship int
	Trial       int
}

// IDPMonth selects one of the two Individual Development Plan meeting rounds.
type IDPMonth string

const (
	IDPSeptember IDPMonth = "sep"
	IDPApril     IDPMonth = "apr"
)

// ParseIDPMonth accepts "sep" or "apr" in any case.
func ParseIDPMonth(s string) (IDPMonth, error) {
	switch m := IDPMonth(strings.ToLower(strings.TrimSpace(s))); m {
	case IDPSeptember, IDPApril:
		return m, nil
	default:
		return "", fmt.Errorf("invalid IDP month %q, expected sep or apr", s)
	}
}

// String returns the full month name.
func (m IDPMonth) String() string {
	if m == IDPApril {
		return "April"
	}
	return "September"
}

// AgeGroupSeed is an age group with its initial player budget.
type AgeGroupSeed struct {
	Name   string
	Budget int
}

// ReferenceData is the lookup data the importer inserts before any player.
type ReferenceData struct {
	PlayerTypes []PlayerType
	AgeGroups   []AgeGroupSeed
	LeagueTeams []string
}

// ImportRun is the audit record of one importer execution.
type ImportRun struct {
	ID              string
	Source          string
	StartedAt       time.Time
	FinishedAt      time.Time
	LinesRead       int
	PlayersImported int
	LinesSkipped    int
	Replaced        bool
}

// DefaultReferenceData returns the academy's standard player types, age
// groups with their budgets, and league teams.
func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		PlayerTypes: []PlayerType{
			{Code: TypeFullTime, Name: "Full Time"},
			{Code: TypeScholarship, Name: "Scholarship"},
			{Code: TypePartTime, Name: "Part Time"},
			{Code: TypeTrial, Name: "Trial"},
		},
		AgeGroups: []AgeGroupSeed{
			{Name: "B 11 & 12", Budget: 18},
			{Name: "B 12 & 13", Budget: 18},
			{Name: "B 13 & 14", Budget: 16},
			{Name: "B 14 & 15", Budget: 16},
			{Name: "B 15 & 16", Budget: 16},
			{Name: "B 16 & 17", Budget: 12},
			{Name: "B 17 & 18", Budget: 12},
			{Name: "G 10 & 11", Budget: 18},
			{Name: "G 12 & 13", Budget: 18},
		},
		LeagueTeams: []string{"League Team 1", "League Team 2"},
	}
}
