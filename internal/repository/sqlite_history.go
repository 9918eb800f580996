package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/bodylab/trainlog/internal/db"
	"github.com/bodylab/trainlog/internal/domain"
)

// sqliteColumns maps history headers to table columns.
var sqliteColumns = []struct {
	header string
	column string
}{
	{ColClient, "client"},
	{ColDate, "entry_date"},
	{ColWorkout, "workout"},
	{ColExerciseNo, "exercise_no"},
	{ColMovementPattern, "movement_pattern"},
	{ColExercise, "exercise"},
	{ColSets, "sets"},
	{ColReps, "reps"},
	{ColRest, "rest_sec"},
	{ColDemo, "demo"},
	{ColRPE, "rpe"},
	{ColNotes, "notes"},
	{ColCompleted, "completed"},
}

// SQLiteHistoryStore keeps histories in the history_entries table, one row
// per entry ordered by seq. Columns outside HistoryColumns go to extra as
// a JSON object.
type SQLiteHistoryStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

func NewSQLiteHistoryStore(conn *sql.DB) *SQLiteHistoryStore {
	return NewSQLiteHistoryStoreWithUoW(conn, db.NewSQLiteUnitOfWork(conn))
}

// NewSQLiteHistoryStoreWithUoW runs Replace through uow.
func NewSQLiteHistoryStoreWithUoW(conn *sql.DB, uow db.UnitOfWork) *SQLiteHistoryStore {
	return &SQLiteHistoryStore{db: conn, uow: uow}
}

func (s *SQLiteHistoryStore) Load(ctx context.Context, clientKey string) (domain.ClientHistory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT client, entry_date, workout, exercise_no, movement_pattern, exercise,
		        sets, reps, rest_sec, demo, rpe, notes, completed, extra
		 FROM history_entries WHERE client_key = ? ORDER BY seq`, clientKey)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var history domain.ClientHistory
	for rows.Next() {
		vals := make([]string, len(sqliteColumns))
		var extra string
		dest := make([]any, 0, len(vals)+1)
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		dest = append(dest, &extra)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}

		raw := make(map[string]string, len(vals))
		if extra != "" && extra != "{}" {
			if err := json.Unmarshal([]byte(extra), &raw); err != nil {
				return nil, fmt.Errorf("decoding extra columns: %w", err)
			}
		}
		for i, c := range sqliteColumns {
			raw[c.header] = vals[i]
		}
		history = append(history, decodeEntry(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	if history == nil {
		return nil, fmt.Errorf("history for %q: %w", clientKey, ErrNotFound)
	}
	return history, nil
}

func (s *SQLiteHistoryStore) Replace(ctx context.Context, clientKey string, h domain.ClientHistory) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history_entries WHERE client_key = ?`, clientKey); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		for seq, e := range h {
			args := []any{uuid.New().String(), clientKey, seq}
			for _, c := range sqliteColumns {
				args = append(args, encodeText(e, c.header))
			}
			extra, err := extraJSON(e)
			if err != nil {
				return err
			}
			args = append(args, extra)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO history_entries (id, client_key, seq, client, entry_date, workout,
				     exercise_no, movement_pattern, exercise, sets, reps, rest_sec, demo, rpe,
				     notes, completed, extra)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...); err != nil {
				return fmt.Errorf("inserting history row %d: %w", seq, err)
			}
		}
		return nil
	})
}

func extraJSON(e domain.LogEntry) (string, error) {
	extra := make(map[string]string)
	for col, v := range e.Source {
		if !knownColumns[col] {
			extra[col] = v
		}
	}
	if len(extra) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("encoding extra columns: %w", err)
	}
	return string(b), nil
}
