package academy

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// ListPlayerTypes returns all player types ordered by display name.
func (s *store) ListPlayerTypes() ([]PlayerType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT type_code, type_name FROM player_types ORDER BY type_name")
	if err != nil {
		log.Error("Failed to query player types", "error", err)
		return nil, err
	}
	defer rows.Close()

	var types []PlayerType
	for rows.Next() {
		var pt PlayerType
		if err := rows.Scan(&pt.Code, &pt.Name); err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

// ListAgeGroups returns all age groups ordered by name.
func (s *store) ListAgeGroups() ([]AgeGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT group_id, group_name FROM age_groups ORDER BY group_name")
	if err != nil {
		log.Error("Failed to query age groups", "error", err)
		return nil, err
	}
	defer rows.Close()

	var groups []AgeGroup
	for rows.Next() {
		var g AgeGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// AddAgeGroup creates an age group together with its statistics row.
func (s *store) AddAgeGroup(name string, budget int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var groupID int64
	err := s.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("INSERT INTO age_groups (group_name) VALUES (?)", name)
		if err != nil {
			return fmt.Errorf("failed to insert age group %q: %w", name, err)
		}
		if groupID, err = res.LastInsertId(); err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO academy_statistics (
				age_group_id, total, budget, net,
				ft_players, pt_players, sc_players, trial_players
			) VALUES (?, 0, ?, ?, 0, 0, 0, 0)
		`, groupID, budget, budget)
		if err != nil {
			return fmt.Errorf("failed to create statistics for age group %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to add age group", "error", err, "name", name)
		return 0, s.track("age_group", "add", err)
	}
	log.Info("Added age group", "groupID", groupID, "name", name, "budget", budget)
	return groupID, s.track("age_group", "add", nil)
}

// UpdateAgeGroup renames a group and/or changes its budget. A budget change
// recomputes net against the stored total.
func (s *store) UpdateAgeGroup(groupID int64, name *string, budget *int) error {
	if name == nil && budget == nil {
		return ErrNoChanges
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(func(tx *sql.Tx) error {
		ok, err := exists(tx, "age_groups", "group_id", groupID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("age group %d: %w", groupID, ErrNotFound)
		}
		if name != nil {
			if _, err := tx.Exec("UPDATE age_groups SET group_name = ? WHERE group_id = ?", *name, groupID); err != nil {
				return fmt.Errorf("failed to rename age group: %w", err)
			}
		}
		if budget != nil {
			if err := recalculate(tx, groupID); err != nil {
				return err
			}
			_, err := tx.Exec(`
				UPDATE academy_statistics
				SET budget = ?, net = ? - total
				WHERE age_group_id = ?
			`, *budget, *budget, groupID)
			if err != nil {
				return fmt.Errorf("failed to update budget: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to update age group", "error", err, "groupID", groupID)
		return s.track("age_group", "update", err)
	}
	log.Info("Updated age group", "groupID", groupID)
	return s.track("age_group", "update", nil)
}

// DeleteAgeGroup removes an age group that no player references, along with
// its statistics row.
func (s *store) DeleteAgeGroup(groupID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(func(tx *sql.Tx) error {
		n, err := countAssigned(tx, groupID, "primary_age_group_id", "secondary_age_group_id")
		if err != nil {
			return fmt.Errorf("failed to count players in age group: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("age group %d has %d players: %w", groupID, n, ErrInUse)
		}
		if _, err := tx.Exec("DELETE FROM academy_statistics WHERE age_group_id = ?", groupID); err != nil {
			return fmt.Errorf("failed to delete statistics: %w", err)
		}
		res, err := tx.Exec("DELETE FROM age_groups WHERE group_id = ?", groupID)
		if err != nil {
			return fmt.Errorf("failed to delete age group: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return fmt.Errorf("age group %d: %w", groupID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to delete age group", "error", err, "groupID", groupID)
		return s.track("age_group", "delete", err)
	}
	log.Info("Deleted age group", "groupID", groupID)
	return s.track("age_group", "delete", nil)
}
