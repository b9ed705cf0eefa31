package academy

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/roster"
)

// SeedReferenceData inserts player types, age groups with their statistics
// rows, and league teams. Existing rows, including budgets, are kept.
func (s *store) SeedReferenceData(ref ReferenceData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(func(tx *sql.Tx) error {
		for _, pt := range ref.PlayerTypes {
			if _, err := tx.Exec("INSERT OR IGNORE INTO player_types (type_code, type_name) VALUES (?, ?)", pt.Code, pt.Name); err != nil {
				return fmt.Errorf("failed to seed player type %s: %w", pt.Code, err)
			}
		}
		for _, g := range ref.AgeGroups {
			if _, err := tx.Exec("INSERT OR IGNORE INTO age_groups (group_name) VALUES (?)", g.Name); err != nil {
				return fmt.Errorf("failed to seed age group %q: %w", g.Name, err)
			}
			_, err := tx.Exec(`
				INSERT OR IGNORE INTO academy_statistics (age_group_id, budget, net)
				SELECT group_id, ?, ? FROM age_groups WHERE group_name = ?
			`, g.Budget, g.Budget, g.Name)
			if err != nil {
				return fmt.Errorf("failed to seed statistics for %q: %w", g.Name, err)
			}
		}
		for _, name := range ref.LeagueTeams {
			if _, err := tx.Exec("INSERT OR IGNORE INTO league_teams (team_name) VALUES (?)", name); err != nil {
				return fmt.Errorf("failed to seed league team %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to seed reference data", "error", err)
		return err
	}
	log.Debug("Seeded reference data",
		"playerTypes", len(ref.PlayerTypes), "ageGroups", len(ref.AgeGroups), "leagueTeams", len(ref.LeagueTeams))
	return nil
}

// ImportPlayers inserts parsed roster records in one transaction and then
// recalculates every age group. With replace set, existing players are
// removed first. Unknown age groups and type codes are stored as NULL.
func (s *store) ImportPlayers(records []roster.Record, replace bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	imported := 0
	err := s.inTx(func(tx *sql.Tx) error {
		if replace {
			if _, err := tx.Exec("DELETE FROM players"); err != nil {
				return fmt.Errorf("failed to clear players: %w", err)
			}
		}

		groups, err := groupIndex(tx)
		if err != nil {
			return err
		}
		types, err := typeCodes(tx)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO players (
				full_name, type_code, primary_age_group_id, secondary_age_group_id,
				birth_day, birth_month, birth_year, jersey_number,
				veo_member, photos, idp_meeting_sep, idp_meeting_apr, chat, files
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare player insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			primary := resolveGroup(groups, rec.PrimaryAgeGroup, rec)
			secondary := resolveGroup(groups, rec.SecondaryAgeGroup, rec)
			typeCode := sql.NullString{String: rec.TypeCode, Valid: types[rec.TypeCode]}
			if !typeCode.Valid {
				log.Warn("Unknown player type, storing without type", "line", rec.Line, "typeCode", rec.TypeCode)
			}
			_, err := stmt.Exec(
				rec.FullName, typeCode, nullInt64(primary), nullInt64(secondary),
				nullInt(rec.BirthDay), nullInt(rec.BirthMonth), nullInt(rec.BirthYear), nullString(rec.JerseyNumber),
				rec.Flags.VeoMember, rec.Flags.Photos, rec.Flags.IDPMeetingSep, rec.Flags.IDPMeetingApr,
				rec.Flags.Chat, rec.Flags.Files,
			)
			if err != nil {
				return fmt.Errorf("failed to insert player %q from line %d: %w", rec.FullName, rec.Line, err)
			}
			imported++
		}
		return recalculateAll(tx)
	})
	if err != nil {
		log.Error("Failed to import players", "error", err)
		return 0, s.track("player", "import", err)
	}
	log.Info("Imported players", "count", imported, "replace", replace)
	return imported, s.track("player", "import", nil)
}

// groupIndex maps normalized age group names to their ids.
func groupIndex(q querier) (map[string]int64, error) {
	rows, err := q.Query("SELECT group_id, group_name FROM age_groups")
	if err != nil {
		return nil, fmt.Errorf("failed to load age groups: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		index[groupKey(name)] = id
	}
	return index, rows.Err()
}

func typeCodes(q querier) (map[string]bool, error) {
	rows, err := q.Query("SELECT type_code FROM player_types")
	if err != nil {
		return nil, fmt.Errorf("failed to load player types: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes[code] = true
	}
	return codes, rows.Err()
}

func resolveGroup(index map[string]int64, name string, rec roster.Record) *int64 {
	if name == "" {
		return nil
	}
	id, ok := index[groupKey(name)]
	if !ok {
		log.Warn("Unknown age group, storing without group", "line", rec.Line, "player", rec.FullName, "ageGroup", name)
		return nil
	}
	return &id
}

func groupKey(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), ""))
}

// RecordImportRun stores the audit row of an importer execution.
func (s *store) RecordImportRun(run ImportRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO import_runs (
			id, source, started_at, finished_at,
			lines_read, players_imported, lines_skipped, replaced
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.StartedAt.Unix(), run.FinishedAt.Unix(),
		run.LinesRead, run.PlayersImported, run.LinesSkipped, run.Replaced)
	if err != nil {
		log.Error("Failed to record import run", "error", err, "runID", run.ID)
		return fmt.Errorf("failed to record import run: %w", err)
	}
	return nil
}

// ImportRuns returns the import audit trail, newest first.
func (s *store) ImportRuns() ([]ImportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, source, started_at, finished_at,
			lines_read, players_imported, lines_skipped, replaced
		FROM import_runs
		ORDER BY started_at DESC, rowid DESC
	`)
	if err != nil {
		log.Error("Failed to query import runs", "error", err)
		return nil, err
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var run ImportRun
		var started, finished int64
		if err := rows.Scan(&run.ID, &run.Source, &started, &finished,
			&run.LinesRead, &run.PlayersImported, &run.LinesSkipped, &run.Replaced); err != nil {
			return nil, err
		}
		run.StartedAt = time.Unix(started, 0).UTC()
		run.FinishedAt = time.Unix(finished, 0).UTC()
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
