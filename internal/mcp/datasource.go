package mcp

import (
	"context"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
	"github.com/Cyb3rh4ck/SmartGym/internal/tracker"
)

// DataSource abstracts the data layer for MCP tools. LocalSource (in
// process, over the tracker) and HTTPClient (remote via the REST API) both
// satisfy it.
type DataSource interface {
	ListLogs(ctx context.Context) ([]models.WorkoutLog, error)
	ListCompletedExercises(ctx context.Context) ([]models.CompletedExercise, error)
	ListRoutines(ctx context.Context) ([]models.Routine, error)
	Recommendation(ctx context.Context) (string, error)
	SuggestWeights(ctx context.Context, muscle string) (string, error)
	LogWorkout(ctx context.Context, exercise, muscle string, weight float64, reps, rpe int) (models.WorkoutLog, error)
}

// LocalSource serves MCP tools straight from the tracker, for the mode
// where the MCP binary and the data live on the same machine.
type LocalSource struct {
	tracker *tracker.Tracker
}

// Compile-time check: *LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

// NewLocalSource wraps a loaded tracker.
func NewLocalSource(tr *tracker.Tracker) *LocalSource {
	return &LocalSource{tracker: tr}
}

func (s *LocalSource) ListLogs(ctx context.Context) ([]models.WorkoutLog, error) {
	return s.tracker.History.Get(), nil
}

func (s *LocalSource) ListCompletedExercises(ctx context.Context) ([]models.CompletedExercise, error) {
	return s.tracker.Completed.Get(), nil
}

func (s *LocalSource) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	return s.tracker.Routines.Get(), nil
}

func (s *LocalSource) Recommendation(ctx context.Context) (string, error) {
	return s.tracker.Recommendation.Get(), nil
}

func (s *LocalSource) SuggestWeights(ctx context.Context, muscle string) (string, error) {
	return s.tracker.SuggestWeights(ctx, muscle)
}

func (s *LocalSource) LogWorkout(ctx context.Context, exercise, muscle string, weight float64, reps, rpe int) (models.WorkoutLog, error) {
	return s.tracker.SaveWorkout(ctx, exercise, muscle, weight, reps, rpe)
}
