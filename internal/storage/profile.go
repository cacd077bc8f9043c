package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// SaveProfile upserts the singleton user profile row.
func (db *DB) SaveProfile(ctx context.Context, p models.UserProfile) error {
	p.ID = models.ProfileID
	_, err := db.exec(ctx,
		`INSERT INTO user_profile (id, weight, height, goal, experience_level)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   weight = excluded.weight,
		   height = excluded.height,
		   goal = excluded.goal,
		   experience_level = excluded.experience_level`,
		p.ID, p.Weight, p.Height, p.Goal, p.ExperienceLevel)
	if err != nil {
		return fmt.Errorf("saving user profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the singleton user profile, or nil if the user has
// never saved one.
func (db *DB) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	err := db.queryRow(ctx,
		`SELECT id, weight, height, goal, experience_level
		 FROM user_profile WHERE id = ?`, models.ProfileID,
	).Scan(&p.ID, &p.Weight, &p.Height, &p.Goal, &p.ExperienceLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying user profile: %w", err)
	}
	return &p, nil
}
