// Package snapshot exports the academy database as a single document.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mauv0809/football-academy/internal/academy"
	"github.com/vmihailenco/msgpack/v5"
)

// Version is bumped whenever the document layout changes.
const Version = 1

// Format selects the snapshot encoding.
type Format string

const (
	FormatMsgpack Format = "msgpack"
	FormatJSON    Format = "json"
)

// ParseFormat accepts "msgpack" (or "mp", or empty) and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "msgpack", "mp":
		return FormatMsgpack, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported snapshot format %q", s)
	}
}

// Source is the read side of the academy store.
type Source interface {
	ListPlayers() ([]academy.PlayerRow, error)
	ListPlayerTypes() ([]academy.PlayerType, error)
	ListAgeGroups() ([]academy.AgeGroup, error)
	ListLeagueTeams() ([]academy.LeagueTeam, error)
	Statistics() ([]academy.AgeGroupStatistic, error)
	ImportRuns() ([]academy.ImportRun, error)
}

// Snapshot is a point in time copy of the academy data.
type Snapshot struct {
	Version     int                         `msgpack:"version" json:"version"`
	TakenAt     time.Time                   `msgpack:"taken_at" json:"taken_at"`
	PlayerTypes []academy.PlayerType        `msgpack:"player_types" json:"player_types"`
	AgeGroups   []academy.AgeGroup          `msgpack:"age_groups" json:"age_groups"`
	LeagueTeams []academy.LeagueTeam        `msgpack:"league_teams" json:"league_teams"`
	Players     []academy.PlayerRow         `msgpack:"players" json:"players"`
	Statistics  []academy.AgeGroupStatistic `msgpack:"statistics" json:"statistics"`
	ImportRuns  []academy.ImportRun         `msgpack:"import_runs" json:"import_runs"`
}

// Take reads everything from src.
func Take(src Source) (*Snapshot, error) {
	snap := &Snapshot{Version: Version, TakenAt: time.Now().UTC()}

	var err error
	if snap.PlayerTypes, err = src.ListPlayerTypes(); err != nil {
		return nil, fmt.Errorf("failed to read player types: %w", err)
	}
	if snap.AgeGroups, err = src.ListAgeGroups(); err != nil {
		return nil, fmt.Errorf("failed to read age groups: %w", err)
	}
	if snap.LeagueTeams, err = src.ListLeagueTeams(); err != nil {
		return nil, fmt.Errorf("failed to read league teams: %w", err)
	}
	if snap.Players, err = src.ListPlayers(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	if snap.Statistics, err = src.Statistics(); err != nil {
		return nil, fmt.Errorf("failed to read statistics: %w", err)
	}
	if snap.ImportRuns, err = src.ImportRuns(); err != nil {
		return nil, fmt.Errorf("failed to read import runs: %w", err)
	}
	return snap, nil
}

// Encode writes snap to w.
func Encode(w io.Writer, snap *Snapshot, format Format) error {
	switch format {
	case FormatMsgpack, "":
		if err := msgpack.NewEncoder(w).Encode(snap); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	var snap Snapshot
	switch format {
	case FormatMsgpack, "":
		if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
	if snap.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	return &snap, nil
}
