package academy

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

func (s *store) ListLeagueTeams() ([]LeagueTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT team_id, team_name FROM league_teams ORDER BY team_name")
	if err != nil {
		log.Error("Failed to query league teams", "error", err)
		return nil, err
	}
	defer rows.Close()

	var teams []LeagueTeam
	for rows.Next() {
		var t LeagueTeam
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *store) AddLeagueTeam(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("INSERT INTO league_teams (team_name) VALUES (?)", name)
	if err != nil {
		log.Error("Failed to add league team", "error", err, "name", name)
		return 0, s.track("league_team", "add", fmt.Errorf("failed to insert league team %q: %w", name, err))
	}
	teamID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.Info("Added league team", "teamID", teamID, "name", name)
	return teamID, s.track("league_team", "add", nil)
}

func (s *store) UpdateLeagueTeam(teamID int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE league_teams SET team_name = ? WHERE team_id = ?", name, teamID)
	if err != nil {
		log.Error("Failed to update league team", "error", err, "teamID", teamID)
		return s.track("league_team", "update", fmt.Errorf("failed to rename league team: %w", err))
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return s.track("league_team", "update", fmt.Errorf("league team %d: %w", teamID, ErrNotFound))
	}
	log.Info("Updated league team", "teamID", teamID, "name", name)
	return s.track("league_team", "update", nil)
}

// DeleteLeagueTeam removes a league team that no player is assigned to.
func (s *store) DeleteLeagueTeam(teamID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(func(tx *sql.Tx) error {
		n, err := countAssigned(tx, teamID, "league_team_id")
		if err != nil {
			return fmt.Errorf("failed to count players in league team: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("league team %d has %d players: %w", teamID, n, ErrInUse)
		}
		res, err := tx.Exec("DELETE FROM league_teams WHERE team_id = ?", teamID)
		if err != nil {
			return fmt.Errorf("failed to delete league team: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return fmt.Errorf("league team %d: %w", teamID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to delete league team", "error", err, "teamID", teamID)
		return s.track("league_team", "delete", err)
	}
	log.Info("Deleted league team", "teamID", teamID)
	return s.track("league_team", "delete", nil)
}
