package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// ErrNotFound is returned when a row targeted by id does not exist.
var ErrNotFound = errors.New("not found")

// InsertLog inserts a workout log and returns it with the generated id.
func (db *DB) InsertLog(ctx context.Context, log models.WorkoutLog) (models.WorkoutLog, error) {
	err := db.queryRow(ctx,
		`INSERT INTO workout_logs (exercise_name, muscle_group, weight_used, reps, rpe, date)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		log.ExerciseName, log.MuscleGroup, log.WeightUsed, log.Reps, log.RPE, log.Date,
	).Scan(&log.ID)
	if err != nil {
		return models.WorkoutLog{}, fmt.Errorf("inserting workout log: %w", err)
	}
	return log, nil
}

// ListLogs retrieves the full history, most recent first.
func (db *DB) ListLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	rows, err := db.query(ctx,
		`SELECT id, exercise_name, muscle_group, weight_used, reps, rpe, date
		 FROM workout_logs
		 ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying workout logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// LastLogForMuscle returns the most recent log for a muscle group, or nil
// when the muscle has never been trained.
func (db *DB) LastLogForMuscle(ctx context.Context, muscle string) (*models.WorkoutLog, error) {
	var log models.WorkoutLog
	err := db.queryRow(ctx,
		`SELECT id, exercise_name, muscle_group, weight_used, reps, rpe, date
		 FROM workout_logs
		 WHERE muscle_group = ?
		 ORDER BY date DESC
		 LIMIT 1`, muscle,
	).Scan(&log.ID, &log.ExerciseName, &log.MuscleGroup, &log.WeightUsed, &log.Reps, &log.RPE, &log.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last log for %s: %w", muscle, err)
	}
	return &log, nil
}

// UpdateLog replaces the editable fields of an existing log. The row keeps
// its id and date.
func (db *DB) UpdateLog(ctx context.Context, log models.WorkoutLog) error {
	res, err := db.exec(ctx,
		`UPDATE workout_logs
		 SET exercise_name = ?, muscle_group = ?, weight_used = ?, reps = ?, rpe = ?
		 WHERE id = ?`,
		log.ExerciseName, log.MuscleGroup, log.WeightUsed, log.Reps, log.RPE, log.ID)
	if err != nil {
		return fmt.Errorf("updating workout log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("updating workout log %d: %w", log.ID, ErrNotFound)
	}
	return nil
}

// DeleteLog removes a log by id.
func (db *DB) DeleteLog(ctx context.Context, id int64) error {
	res, err := db.exec(ctx, `DELETE FROM workout_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workout log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("deleting workout log %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanLogs(rows *sql.Rows) ([]models.WorkoutLog, error) {
	var result []models.WorkoutLog
	for rows.Next() {
		var log models.WorkoutLog
		if err := rows.Scan(&log.ID, &log.ExerciseName, &log.MuscleGroup,
			&log.WeightUsed, &log.Reps, &log.RPE, &log.Date); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		result = append(result, log)
	}
	return result, rows.Err()
}
