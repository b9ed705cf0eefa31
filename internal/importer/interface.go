package importer

import (
	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/mauv0809/football-academy/internal/roster"
)

// Store defines the database operations required by the importer.
type Store interface {
	SeedReferenceData(ref academy.ReferenceData) error
	ListPlayerTypes() ([]academy.PlayerType, error)
	ListAgeGroups() ([]academy.AgeGroup, error)
	ImportPlayers(records []roster.Record, replace bool) (int, error)
	RecalculateAllStatistics() error
	RecordImportRun(run academy.ImportRun) error
}
