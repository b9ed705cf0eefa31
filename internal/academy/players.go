package academy

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

const playerRowSelect = `
	SELECT
		p.player_id,
		p.full_name,
		COALESCE(pt.type_name, ''),
		COALESCE(ag.group_name, ''),
		COALESCE(ag2.group_name, ''),
		p.birth_day,
		p.birth_month,
		p.birth_year,
		COALESCE(p.jersey_number, ''),
		COALESCE(lt.team_name, '')
	FROM players p
	LEFT JOIN player_types pt ON p.type_code = pt.type_code
	LEFT JOIN age_groups ag ON p.primary_age_group_id = ag.group_id
	LEFT JOIN age_groups ag2 ON p.secondary_age_group_id = ag2.group_id
	LEFT JOIN league_teams lt ON p.league_team_id = lt.team_id
`

// queryPlayerRows runs playerRowSelect with the given tail (WHERE/ORDER BY).
func (s *store) queryPlayerRows(tail string, args ...any) ([]PlayerRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(playerRowSelect+tail, args...)
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []PlayerRow
	for rows.Next() {
		var r PlayerRow
		var day, month, year sql.NullInt64
		if err := rows.Scan(&r.ID, &r.FullName, &r.PlayerType, &r.AgeGroup, &r.SecondaryAgeGroup,
			&day, &month, &year, &r.JerseyNumber, &r.LeagueTeam); err != nil {
			log.Error("Failed to scan player row", "error", err)
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		r.BirthDay, r.BirthMonth, r.BirthYear = intPtr(day), intPtr(month), intPtr(year)
		players = append(players, r)
	}
	return players, rows.Err()
}

// ListPlayers returns every player ordered by age group and name.
func (s *store) ListPlayers() ([]PlayerRow, error) {
	return s.queryPlayerRows("ORDER BY ag.group_name, p.full_name")
}

// SearchPlayers performs a case-insensitive substring match on the name.
func (s *store) SearchPlayers(term string) ([]PlayerRow, error) {
	return s.queryPlayerRows("WHERE p.full_name LIKE ? ORDER BY p.full_name", "%"+term+"%")
}

func (s *store) PlayersByAgeGroup(groupName string) ([]PlayerRow, error) {
	return s.queryPlayerRows("WHERE ag.group_name = ? ORDER BY p.full_name", groupName)
}

// PlayersByType filters on the type's display name, e.g. "Full Time".
func (s *store) PlayersByType(typeName string) ([]PlayerRow, error) {
	return s.queryPlayerRows("WHERE pt.type_name = ? ORDER BY ag.group_name, p.full_name", typeName)
}

// GetPlayer returns the stored row of a single player.
func (s *store) GetPlayer(playerID int64) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	var typeCode, jersey sql.NullString
	var primary, secondary, team, day, month, year sql.NullInt64
	err := s.db.QueryRow(`
		SELECT player_id, full_name, type_code, primary_age_group_id, secondary_age_group_id,
			birth_day, birth_month, birth_year, jersey_number, league_team_id,
			veo_member, photos, idp_meeting_sep, idp_meeting_apr, chat, files
		FROM players WHERE player_id = ?
	`, playerID).Scan(&p.ID, &p.FullName, &typeCode, &primary, &secondary,
		&day, &month, &year, &jersey, &team,
		&p.Flags.VeoMember, &p.Flags.Photos, &p.Flags.IDPMeetingSep, &p.Flags.IDPMeetingApr, &p.Flags.Chat, &p.Flags.Files)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}
		log.Error("Failed to query player", "error", err, "playerID", playerID)
		return nil, fmt.Errorf("database error: %w", err)
	}
	p.TypeCode = typeCode.String
	p.JerseyNumber = jersey.String
	p.PrimaryAgeGroupID = int64Ptr(primary)
	p.SecondaryAgeGroupID = int64Ptr(secondary)
	p.LeagueTeamID = int64Ptr(team)
	p.BirthDay, p.BirthMonth, p.BirthYear = intPtr(day), intPtr(month), intPtr(year)
	return &p, nil
}

// AddPlayer inserts a player into the named age group and refreshes that
// group's statistics.
func (s *store) AddPlayer(np NewPlayer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var playerID int64
	err := s.inTx(func(tx *sql.Tx) error {
		var groupID int64
		err := tx.QueryRow("SELECT group_id FROM age_groups WHERE group_name = ?", np.AgeGroup).Scan(&groupID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("age group %q: %w", np.AgeGroup, ErrUnknownAgeGroup)
		}
		if err != nil {
			return fmt.Errorf("failed to look up age group: %w", err)
		}

		res, err := tx.Exec(`
			INSERT INTO players (
				full_name, type_code, primary_age_group_id,
				birth_day, birth_month, birth_year, jersey_number
			) VALUES (?, ?, ?, ?, ?, ?, ?)
		`, np.FullName, np.TypeCode, groupID, np.BirthDay, np.BirthMonth, np.BirthYear, nullString(np.JerseyNumber))
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
		if playerID, err = res.LastInsertId(); err != nil {
			return err
		}
		return recalculate(tx, groupID)
	})
	if err != nil {
		log.Error("Failed to add player", "error", err, "name", np.FullName)
		return 0, s.track("player", "add", err)
	}
	log.Info("Added player", "playerID", playerID, "name", np.FullName, "age_group", np.AgeGroup)
	return playerID, s.track("player", "add", nil)
}

// UpdatePlayer applies the non-nil fields of u. The statistics of the old
// and new primary age groups are recomputed whenever anything changed, since
// a type change moves the player between count columns.
func (s *store) UpdatePlayer(playerID int64, u PlayerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sets, args := updateClauses(u)
	if len(sets) == 0 {
		return ErrNoChanges
	}

	err := s.inTx(func(tx *sql.Tx) error {
		var oldGroup sql.NullInt64
		err := tx.QueryRow("SELECT primary_age_group_id FROM players WHERE player_id = ?", playerID).Scan(&oldGroup)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to look up player: %w", err)
		}

		query := "UPDATE players SET " + strings.Join(sets, ", ") + " WHERE player_id = ?"
		if _, err := tx.Exec(query, append(args, playerID)...); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}

		newGroup := int64Ptr(oldGroup)
		if u.PrimaryAgeGroupID != nil {
			newGroup = u.PrimaryAgeGroupID
		}
		return recalculateGroups(tx, int64Ptr(oldGroup), newGroup)
	})
	if err != nil {
		log.Error("Failed to update player", "error", err, "playerID", playerID)
		return s.track("player", "update", err)
	}
	log.Info("Updated player", "playerID", playerID, "fields", len(sets))
	return s.track("player", "update", nil)
}

// updateClauses builds the SET list for u in a fixed column order.
func updateClauses(u PlayerUpdate) ([]string, []any) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if u.FullName != nil {
		add("full_name", *u.FullName)
	}
	if u.TypeCode != nil {
		add("type_code", *u.TypeCode)
	}
	if u.PrimaryAgeGroupID != nil {
		add("primary_age_group_id", *u.PrimaryAgeGroupID)
	}
	if u.ClearSecondaryAgeGroup {
		add("secondary_age_group_id", nil)
	} else if u.SecondaryAgeGroupID != nil {
		add("secondary_age_group_id", *u.SecondaryAgeGroupID)
	}
	if u.BirthDay != nil {
		add("birth_day", *u.BirthDay)
	}
	if u.BirthMonth != nil {
		add("birth_month", *u.BirthMonth)
	}
	if u.BirthYear != nil {
		add("birth_year", *u.BirthYear)
	}
	if u.JerseyNumber != nil {
		add("jersey_number", *u.JerseyNumber)
	}
	if u.ClearLeagueTeam {
		add("league_team_id", nil)
	} else if u.LeagueTeamID != nil {
		add("league_team_id", *u.LeagueTeamID)
	}
	if f := u.Flags; f != nil {
		add("veo_member", f.VeoMember)
		add("photos", f.Photos)
		add("idp_meeting_sep", f.IDPMeetingSep)
		add("idp_meeting_apr", f.IDPMeetingApr)
		add("chat", f.Chat)
		add("files", f.Files)
	}
	return sets, args
}

// DeletePlayer removes a player and refreshes its age group's statistics.
func (s *store) DeletePlayer(playerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(func(tx *sql.Tx) error {
		var group sql.NullInt64
		err := tx.QueryRow("SELECT primary_age_group_id FROM players WHERE player_id = ?", playerID).Scan(&group)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to look up player: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM players WHERE player_id = ?", playerID); err != nil {
			return fmt.Errorf("failed to delete player: %w", err)
		}
		return recalculateGroups(tx, int64Ptr(group))
	})
	if err != nil {
		log.Error("Failed to delete player", "error", err, "playerID", playerID)
		return s.track("player", "delete", err)
	}
	log.Info("Deleted player", "playerID", playerID)
	return s.track("player", "delete", nil)
}
