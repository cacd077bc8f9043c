package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// InsertRoutine inserts a routine and returns it with the generated id.
// Routines have no update path: they are created once and deleted whole.
func (db *DB) InsertRoutine(ctx context.Context, r models.Routine) (models.Routine, error) {
	err := db.queryRow(ctx,
		`INSERT INTO routines (name, exercises) VALUES (?, ?) RETURNING id`,
		r.Name, r.Exercises,
	).Scan(&r.ID)
	if err != nil {
		return models.Routine{}, fmt.Errorf("inserting routine: %w", err)
	}
	return r, nil
}

// ListRoutines retrieves all routines in creation order.
func (db *DB) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	rows, err := db.query(ctx, `SELECT id, name, exercises FROM routines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying routines: %w", err)
	}
	defer rows.Close()

	var result []models.Routine
	for rows.Next() {
		var r models.Routine
		if err := rows.Scan(&r.ID, &r.Name, &r.Exercises); err != nil {
			return nil, fmt.Errorf("scanning routine: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetRoutine retrieves one routine by id.
func (db *DB) GetRoutine(ctx context.Context, id int64) (models.Routine, error) {
	var r models.Routine
	err := db.queryRow(ctx,
		`SELECT id, name, exercises FROM routines WHERE id = ?`, id,
	).Scan(&r.ID, &r.Name, &r.Exercises)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Routine{}, fmt.Errorf("routine %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Routine{}, fmt.Errorf("querying routine %d: %w", id, err)
	}
	return r, nil
}

// DeleteRoutine removes a routine by id.
func (db *DB) DeleteRoutine(ctx context.Context, id int64) error {
	res, err := db.exec(ctx, `DELETE FROM routines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting routine: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("deleting routine %d: %w", id, ErrNotFound)
	}
	return nil
}
