package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DanOgh07/quantumin-solver/internal/classify"
	"github.com/DanOgh07/quantumin-solver/internal/solver"
)

// SaveSolution inserts one solution record. Steps are stored as a JSON
// column so the schema stays one table.
func SaveSolution(db *sql.DB, sol *solver.Solution) error {
	stepsJSON, err := json.Marshal(sol.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}

	query := `INSERT INTO solutions (id, created_at, input, result, category, method, steps)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = db.Exec(query, sol.ID, sol.CreatedAt.Unix(), sol.Input, sol.Result, string(sol.Category), sol.Method, string(stepsJSON))
	return err
}

// RecentSolutions returns up to limit solutions, newest first.
func RecentSolutions(db *sql.DB, limit int) ([]*solver.Solution, error) {
	query := `SELECT id, created_at, input, result, category, method, COALESCE(steps, '[]')
			  FROM solutions ORDER BY created_at DESC, rowid DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSolutions(rows)
}

// SearchSolutions matches against the stored input and result text.
func SearchSolutions(db *sql.DB, term string) ([]*solver.Solution, error) {
	query := `SELECT id, created_at, input, result, category, method, COALESCE(steps, '[]')
			  FROM solutions
			  WHERE input LIKE ? OR result LIKE ?
			  ORDER BY created_at DESC, rowid DESC
			  LIMIT 50`

	wildcard := "%" + term + "%"
	rows, err := db.Query(query, wildcard, wildcard)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSolutions(rows)
}

func scanSolutions(rows *sql.Rows) ([]*solver.Solution, error) {
	var out []*solver.Solution
	for rows.Next() {
		var (
			sol      solver.Solution
			ts       int64
			category string
			steps    string
		)
		if err := rows.Scan(&sol.ID, &ts, &sol.Input, &sol.Result, &category, &sol.Method, &steps); err != nil {
			return nil, err
		}
		sol.CreatedAt = time.Unix(ts, 0).UTC()
		sol.Category = classify.Category(category)
		if err := json.Unmarshal([]byte(steps), &sol.Steps); err != nil {
			return nil, fmt.Errorf("unmarshal steps: %w", err)
		}
		out = append(out, &sol)
	}
	return out, rows.Err()
}

// SetSetting upserts one persisted key-value setting.
func SetSetting(db *sql.DB, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := db.Exec(query, key, value)
	return err
}

// GetSetting returns the stored value, or "" when the key is absent.
func GetSetting(db *sql.DB, key string) (string, error) {
	row := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// DeleteSetting removes a persisted setting. Deleting an absent key is not
// an error.
func DeleteSetting(db *sql.DB, key string) error {
	_, err := db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return err
}
