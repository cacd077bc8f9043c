// Package models holds the persisted record types shared by the storage,
// tracker, server, and MCP layers.
package models

import "time"

// WorkoutLog is a single manually-logged set. Editable in place and
// deletable; the date keeps its original value across edits.
type WorkoutLog struct {
	ID           int64   `json:"id"`
	ExerciseName string  `json:"exerciseName"`
	MuscleGroup  string  `json:"muscleGroup"`
	WeightUsed   float64 `json:"weightUsed"`
	Reps         int     `json:"reps"`
	RPE          int     `json:"rpe"`
	Date         int64   `json:"date"` // epoch millis
}

// Routine is a reusable workout template. The Exercises blob is stored in
// one of two generations; see the routine package for the decoders.
type Routine struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Exercises string `json:"exercises"`
}

// CompletedSet is one finished set inside a CompletedExercise. Immutable.
type CompletedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	RPE    int     `json:"rpe"`
}

// CompletedExercise is the durable record of one exercise from one finished
// session. All records emitted by a single finish share the same Date.
// Never mutated after insert; only deletable as a whole.
type CompletedExercise struct {
	ID           int64          `json:"id"`
	ExerciseName string         `json:"exerciseName"`
	Date         int64          `json:"date"` // epoch millis
	Sets         []CompletedSet `json:"sets"`
}

// UserProfile is the singleton user record (id is always 1).
type UserProfile struct {
	ID              int64   `json:"id"`
	Weight          float64 `json:"weight"`
	Height          float64 `json:"height"`
	Goal            string  `json:"goal"`
	ExperienceLevel string  `json:"experienceLevel"`
}

// ProfileID is the fixed primary key of the singleton profile row.
const ProfileID = 1

// Millis converts a time to the epoch-millis representation used in storage.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts a stored epoch-millis timestamp back to a time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
