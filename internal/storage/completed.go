package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// InsertCompletedExercises persists all records from one finished session
// inside a single transaction, so a session either lands in history whole
// or not at all. Returns the records with generated ids.
func (db *DB) InsertCompletedExercises(ctx context.Context, records []models.CompletedExercise) ([]models.CompletedExercise, error) {
	if len(records) == 0 {
		return nil, nil
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := db.rebind(`INSERT INTO completed_exercises (exercise_name, date, sets) VALUES (?, ?, ?) RETURNING id`)
	out := make([]models.CompletedExercise, 0, len(records))
	for _, rec := range records {
		sets, err := json.Marshal(rec.Sets)
		if err != nil {
			return nil, fmt.Errorf("encoding sets: %w", err)
		}
		if err := tx.QueryRowContext(ctx, query, rec.ExerciseName, rec.Date, string(sets)).Scan(&rec.ID); err != nil {
			return nil, fmt.Errorf("inserting completed exercise: %w", err)
		}
		out = append(out, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing completed exercises: %w", err)
	}
	return out, nil
}

// ListCompletedExercises retrieves the completed-exercise history, most
// recent first.
func (db *DB) ListCompletedExercises(ctx context.Context) ([]models.CompletedExercise, error) {
	rows, err := db.query(ctx,
		`SELECT id, exercise_name, date, sets
		 FROM completed_exercises
		 ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying completed exercises: %w", err)
	}
	defer rows.Close()

	var result []models.CompletedExercise
	for rows.Next() {
		var rec models.CompletedExercise
		var sets string
		if err := rows.Scan(&rec.ID, &rec.ExerciseName, &rec.Date, &sets); err != nil {
			return nil, fmt.Errorf("scanning completed exercise: %w", err)
		}
		if err := json.Unmarshal([]byte(sets), &rec.Sets); err != nil {
			return nil, fmt.Errorf("decoding sets for exercise %d: %w", rec.ID, err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// DeleteCompletedExercise removes one record as a whole unit; individual
// sets inside a record are never edited.
func (db *DB) DeleteCompletedExercise(ctx context.Context, id int64) error {
	res, err := db.exec(ctx, `DELETE FROM completed_exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting completed exercise: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("deleting completed exercise %d: %w", id, ErrNotFound)
	}
	return nil
}
