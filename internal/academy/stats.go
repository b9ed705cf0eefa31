package academy

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// recalculateStatsQuery rebuilds one statistics row from live counts. The
// group id is bound once per placeholder.
const recalculateStatsQuery = `
	UPDATE academy_statistics
	SET
		total = (SELECT COUNT(*) FROM players p WHERE p.primary_age_group_id = ?),
		ft_players = (SELECT COUNT(*) FROM players p WHERE p.primary_age_group_id = ? AND p.type_code = 'FT'),
		pt_players = (SELECT COUNT(*) FROM players p WHERE p.primary_age_group_id = ? AND p.type_code = 'PT'),
		sc_players = (SELECT COUNT(*) FROM players p WHERE p.primary_age_group_id = ? AND p.type_code = 'SC'),
		trial_players = (SELECT COUNT(*) FROM players p WHERE p.primary_age_group_id = ? AND p.type_code = 'T'),
		net = budget - (SELECT COUNT(*) FROM players p WHERE p.primary_age_group_id = ?)
	WHERE age_group_id = ?
`

// recalculate recomputes the statistics row of groupID, creating the row
// first if the group has none yet.
func recalculate(q querier, groupID int64) error {
	if _, err := q.Exec("INSERT OR IGNORE INTO academy_statistics (age_group_id) VALUES (?)", groupID); err != nil {
		return fmt.Errorf("failed to ensure statistics row for age group %d: %w", groupID, err)
	}
	args := make([]any, 7)
	for i := range args {
		args[i] = groupID
	}
	if _, err := q.Exec(recalculateStatsQuery, args...); err != nil {
		return fmt.Errorf("failed to update statistics for age group %d: %w", groupID, err)
	}
	return nil
}

// recalculateGroups recomputes every distinct non-nil group id once.
func recalculateGroups(q querier, groupIDs ...*int64) error {
	seen := make(map[int64]bool, len(groupIDs))
	for _, id := range groupIDs {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		if err := recalculate(q, *id); err != nil {
			return err
		}
	}
	return nil
}

func recalculateAll(q querier) error {
	ids, err := ageGroupIDs(q)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := recalculate(q, id); err != nil {
			return err
		}
	}
	log.Debug("Recalculated statistics", "age_groups", len(ids))
	return nil
}

func ageGroupIDs(q querier) ([]int64, error) {
	rows, err := q.Query("SELECT group_id FROM age_groups ORDER BY group_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list age groups: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Statistics returns the stored statistics of every age group, by name.
func (s *store) Statistics() ([]AgeGroupStatistic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT s.age_group_id, ag.group_name, s.total, s.budget, s.net,
			s.ft_players, s.pt_players, s.sc_players, s.trial_players
		FROM academy_statistics s
		JOIN age_groups ag ON s.age_group_id = ag.group_id
		ORDER BY ag.group_name
	`)
	if err != nil {
		log.Error("Failed to query academy statistics", "error", err)
		return nil, err
	}
	defer rows.Close()

	var stats []AgeGroupStatistic
	for rows.Next() {
		var st AgeGroupStatistic
		if err := rows.Scan(&st.AgeGroupID, &st.AgeGroup, &st.Total, &st.Budget, &st.Net,
			&st.FullTime, &st.PartTime, &st.Scholarship, &st.Trial); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// RecalculateStatistics recomputes the statistics of one age group.
func (s *store) RecalculateStatistics(groupID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inTx(func(tx *sql.Tx) error {
		ok, err := exists(tx, "age_groups", "group_id", groupID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("age group %d: %w", groupID, ErrNotFound)
		}
		return recalculate(tx, groupID)
	})
}

// RecalculateAllStatistics recomputes the statistics of every age group.
func (s *store) RecalculateAllStatistics() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.inTx(func(tx *sql.Tx) error {
		return recalculateAll(tx)
	})
	if err != nil {
		log.Error("Failed to recalculate statistics", "error", err)
	}
	return err
}
