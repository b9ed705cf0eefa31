package academy

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/football-academy/internal/metrics"
)

// New creates a new AcademyStore.
func New(db *sql.DB, m metrics.Metrics) AcademyStore {
	return &store{
		db:      db,
		metrics: m,
	}
}

// querier is the subset of *sql.DB and *sql.Tx the helpers need. The pool
// holds a single connection, so code running inside a transaction must only
// use the transaction.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// inTx runs fn in a transaction, committing on success.
func (s *store) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// track records the outcome of a write and passes err through.
func (s *store) track(entity, operation string, err error) error {
	if s.metrics == nil {
		return err
	}
	if err != nil {
		s.metrics.IncMutationFailed(entity, operation)
	} else {
		s.metrics.IncMutation(entity, operation)
	}
	return err
}

// exists reports whether a row with the given id is present in table.
func exists(q querier, table, idColumn string, id int64) (bool, error) {
	var found bool
	err := q.QueryRow(fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", table, idColumn), id).Scan(&found)
	return found, err
}

// countAssigned returns how many players reference id through any of columns.
func countAssigned(q querier, id int64, columns ...string) (int, error) {
	query := "SELECT COUNT(*) FROM players WHERE "
	args := make([]any, 0, len(columns))
	for i, c := range columns {
		if i > 0 {
			query += " OR "
		}
		query += c + " = ?"
		args = append(args, id)
	}
	var n int
	err := q.QueryRow(query, args...).Scan(&n)
	return n, err
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
