// Package tracker is the state service behind the API: it owns the
// observable snapshots the UI watches (history, recommendation, routines,
// completed history, the active session, and the routine draft) and applies
// every mutation through a single writer.
//
// History and the recommendation are explicit caches reloaded after each
// mutation; routines and completed history follow the same reload scheme.
// Observers subscribe through the observe holders and only ever see whole
// immutable snapshots.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
	"github.com/Cyb3rh4ck/SmartGym/internal/observe"
	"github.com/Cyb3rh4ck/SmartGym/internal/recommend"
	"github.com/Cyb3rh4ck/SmartGym/internal/routine"
	"github.com/Cyb3rh4ck/SmartGym/internal/session"
	"github.com/Cyb3rh4ck/SmartGym/internal/storage"
)

// ErrValidation marks a rejected write; the store is never reached.
var ErrValidation = errors.New("validation failed")

// Store is the persistence surface the tracker needs.
type Store interface {
	InsertLog(ctx context.Context, log models.WorkoutLog) (models.WorkoutLog, error)
	ListLogs(ctx context.Context) ([]models.WorkoutLog, error)
	LastLogForMuscle(ctx context.Context, muscle string) (*models.WorkoutLog, error)
	UpdateLog(ctx context.Context, log models.WorkoutLog) error
	DeleteLog(ctx context.Context, id int64) error

	InsertCompletedExercises(ctx context.Context, records []models.CompletedExercise) ([]models.CompletedExercise, error)
	ListCompletedExercises(ctx context.Context) ([]models.CompletedExercise, error)

	InsertRoutine(ctx context.Context, r models.Routine) (models.Routine, error)
	ListRoutines(ctx context.Context) ([]models.Routine, error)
	GetRoutine(ctx context.Context, id int64) (models.Routine, error)
	DeleteRoutine(ctx context.Context, id int64) error

	GetProfile(ctx context.Context) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, p models.UserProfile) error
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Tracker coordinates state for one user's screens.
type Tracker struct {
	mu    sync.Mutex // serializes all mutations
	store Store
	log   *slog.Logger
	now   func() time.Time

	History        *observe.Value[[]models.WorkoutLog]
	Recommendation *observe.Value[string]
	Routines       *observe.Value[[]models.Routine]
	Completed      *observe.Value[[]models.CompletedExercise]
	Active         *observe.Value[session.Session]
	Draft          *observe.Value[[]routine.ExerciseConfig]
}

// New creates a Tracker over the given store. Call Load before serving.
func New(store Store, log *slog.Logger) *Tracker {
	return &Tracker{
		store: store,
		log:   log,
		now:   time.Now,

		History:        observe.NewValue[[]models.WorkoutLog](nil),
		Recommendation: observe.NewValue(""),
		Routines:       observe.NewValue[[]models.Routine](nil),
		Completed:      observe.NewValue[[]models.CompletedExercise](nil),
		Active:         observe.NewValue(session.Session(nil)),
		Draft:          observe.NewValue[[]routine.ExerciseConfig](nil),
	}
}

// Load populates all read caches from the store.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.reloadHistory(ctx); err != nil {
		return err
	}
	if err := t.reloadRoutines(ctx); err != nil {
		return err
	}
	return t.reloadCompleted(ctx)
}

// reloadHistory refreshes the history cache and recomputes the
// recommendation from it. Callers hold t.mu.
func (t *Tracker) reloadHistory(ctx context.Context) error {
	logs, err := t.store.ListLogs(ctx)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	t.History.Set(logs)
	t.Recommendation.Set(recommend.NextWorkout(logs, t.now()))
	return nil
}

func (t *Tracker) reloadRoutines(ctx context.Context) error {
	routines, err := t.store.ListRoutines(ctx)
	if err != nil {
		return fmt.Errorf("loading routines: %w", err)
	}
	t.Routines.Set(routines)
	return nil
}

func (t *Tracker) reloadCompleted(ctx context.Context) error {
	records, err := t.store.ListCompletedExercises(ctx)
	if err != nil {
		return fmt.Errorf("loading completed exercises: %w", err)
	}
	t.Completed.Set(records)
	return nil
}

// SaveWorkout validates and logs a single manually-entered set.
func (t *Tracker) SaveWorkout(ctx context.Context, exercise, muscle string, weight float64, reps, rpe int) (models.WorkoutLog, error) {
	if exercise == "" {
		return models.WorkoutLog{}, fmt.Errorf("exercise name is empty: %w", ErrValidation)
	}
	if weight <= 0 {
		return models.WorkoutLog{}, fmt.Errorf("weight must be positive: %w", ErrValidation)
	}
	if reps <= 0 {
		return models.WorkoutLog{}, fmt.Errorf("reps must be positive: %w", ErrValidation)
	}
	if rpe < 1 || rpe > 10 {
		return models.WorkoutLog{}, fmt.Errorf("rpe must be between 1 and 10: %w", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	saved, err := t.store.InsertLog(ctx, models.WorkoutLog{
		ExerciseName: exercise,
		MuscleGroup:  muscle,
		WeightUsed:   weight,
		Reps:         reps,
		RPE:          rpe,
		Date:         models.Millis(t.now()),
	})
	if err != nil {
		return models.WorkoutLog{}, err
	}
	return saved, t.reloadHistory(ctx)
}

// UpdateWorkout replaces the editable fields of an existing log; id and
// date are preserved.
func (t *Tracker) UpdateWorkout(ctx context.Context, log models.WorkoutLog) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.UpdateLog(ctx, log); err != nil {
		return err
	}
	return t.reloadHistory(ctx)
}

// DeleteWorkout removes a log entry.
func (t *Tracker) DeleteWorkout(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.DeleteLog(ctx, id); err != nil {
		return err
	}
	return t.reloadHistory(ctx)
}

// SuggestWeights computes the progression hint for a muscle group from its
// most recent log.
func (t *Tracker) SuggestWeights(ctx context.Context, muscle string) (string, error) {
	last, err := t.store.LastLogForMuscle(ctx, muscle)
	if err != nil {
		return "", err
	}
	return recommend.SuggestWeights(last), nil
}

// CreateRoutine saves a routine from bare exercise names (the quick-create
// path). The blob is still written in the structured format.
func (t *Tracker) CreateRoutine(ctx context.Context, name string, exercises []string) (models.Routine, error) {
	if name == "" {
		return models.Routine{}, fmt.Errorf("routine name is empty: %w", ErrValidation)
	}

	blob, err := routine.Encode(routine.ConfigsFromNames(exercises))
	if err != nil {
		return models.Routine{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	saved, err := t.store.InsertRoutine(ctx, models.Routine{Name: name, Exercises: blob})
	if err != nil {
		return models.Routine{}, err
	}
	return saved, t.reloadRoutines(ctx)
}

// DeleteRoutine removes a routine.
func (t *Tracker) DeleteRoutine(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.DeleteRoutine(ctx, id); err != nil {
		return err
	}
	return t.reloadRoutines(ctx)
}

// AddDraftExercise appends a configured exercise to the routine draft.
func (t *Tracker) AddDraftExercise(cfg routine.ExerciseConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("exercise name is empty: %w", ErrValidation)
	}
	if cfg.TargetSets < 1 {
		return fmt.Errorf("target sets must be at least 1: %w", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	draft := t.Draft.Get()
	next := make([]routine.ExerciseConfig, 0, len(draft)+1)
	next = append(next, draft...)
	next = append(next, cfg)
	t.Draft.Set(next)
	return nil
}

// RemoveDraftExercise drops the draft entry at index; out-of-range indexes
// are a silent no-op.
func (t *Tracker) RemoveDraftExercise(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	draft := t.Draft.Get()
	if index < 0 || index >= len(draft) {
		return
	}
	next := make([]routine.ExerciseConfig, 0, len(draft)-1)
	next = append(next, draft[:index]...)
	next = append(next, draft[index+1:]...)
	t.Draft.Set(next)
}

// ClearDraft empties the routine draft.
func (t *Tracker) ClearDraft() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Draft.Set(nil)
}

// SaveDraft persists the draft as a structured routine and clears it.
func (t *Tracker) SaveDraft(ctx context.Context, name string) (models.Routine, error) {
	if name == "" {
		return models.Routine{}, fmt.Errorf("routine name is empty: %w", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	draft := t.Draft.Get()
	if len(draft) == 0 {
		return models.Routine{}, fmt.Errorf("draft is empty: %w", ErrValidation)
	}

	blob, err := routine.Encode(draft)
	if err != nil {
		return models.Routine{}, err
	}
	saved, err := t.store.InsertRoutine(ctx, models.Routine{Name: name, Exercises: blob})
	if err != nil {
		return models.Routine{}, err
	}

	t.Draft.Set(nil)
	return saved, t.reloadRoutines(ctx)
}

// StartRoutine expands a stored routine into a fresh active session,
// replacing any session in progress.
func (t *Tracker) StartRoutine(ctx context.Context, id int64) (session.Session, error) {
	r, err := t.store.GetRoutine(ctx, id)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := session.Expand(routine.Parse(r.Exercises))
	t.Active.Set(s)
	return s, nil
}

// AddSet appends a set to an exercise in the active session.
func (t *Tracker) AddSet(exerciseID int) session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := session.AddSet(t.Active.Get(), exerciseID)
	t.Active.Set(s)
	return s
}

// RemoveSet removes a set from an exercise in the active session.
func (t *Tracker) RemoveSet(exerciseID int, setID string) session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := session.RemoveSet(t.Active.Get(), exerciseID, setID)
	t.Active.Set(s)
	return s
}

// UpdateSet patches a set in the active session.
func (t *Tracker) UpdateSet(exerciseID int, setID string, patch session.SetPatch) session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := session.UpdateSet(t.Active.Get(), exerciseID, setID, patch)
	t.Active.Set(s)
	return s
}

// FinishResult reports what a finished session produced: how many exercise
// records were persisted and how many exercises were skipped for having no
// qualifying sets.
type FinishResult struct {
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
}

// Finish reconciles the active session into completed-exercise history.
// All records from one session are written in a single transaction; if the
// write fails the session is left intact so nothing is silently lost. On
// success the session is reset to empty.
func (t *Tracker) Finish(ctx context.Context) (FinishResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, skipped := session.Finish(t.Active.Get(), t.now())
	saved, err := t.store.InsertCompletedExercises(ctx, records)
	if err != nil {
		return FinishResult{}, err
	}

	t.Active.Set(nil)
	if len(saved) > 0 {
		if err := t.reloadCompleted(ctx); err != nil {
			return FinishResult{}, err
		}
	}

	t.log.Info("session finished", "saved", len(saved), "skipped", skipped)
	return FinishResult{Saved: len(saved), Skipped: skipped}, nil
}

// Cancel discards the active session without persisting anything.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Active.Set(nil)
}

// Profile returns the singleton user profile, or nil if never saved.
func (t *Tracker) Profile(ctx context.Context) (*models.UserProfile, error) {
	return t.store.GetProfile(ctx)
}

// SaveProfile validates and upserts the singleton user profile.
func (t *Tracker) SaveProfile(ctx context.Context, p models.UserProfile) error {
	if p.Weight < 0 || p.Height < 0 {
		return fmt.Errorf("weight and height must not be negative: %w", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.SaveProfile(ctx, p)
}
