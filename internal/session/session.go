// Package session models a workout in progress: an ordered list of
// exercises, each holding an ordered list of sets. The session lives only
// in memory; nothing here touches storage. Every mutator returns a fresh
// snapshot and leaves its input untouched, so a snapshot handed to an
// observer stays valid forever.
package session

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
	"github.com/Cyb3rh4ck/SmartGym/internal/routine"
)

// ActiveSet is one set being edited during a session. Weight, reps, and RPE
// stay free text until finish so partially-typed values never fail. The ID
// is a process-local token and is never persisted.
type ActiveSet struct {
	ID        string `json:"id"`
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	RPE       string `json:"rpe"`
	Completed bool   `json:"completed"`
}

// ActiveExercise is one exercise in the session. The ID is the exercise's
// position at session start; it is unique within the session but not stable
// across sessions. An exercise always keeps at least one set.
type ActiveExercise struct {
	ID   int         `json:"id"`
	Name string      `json:"name"`
	Sets []ActiveSet `json:"sets"`
}

// Session is the whole in-progress workout. The empty session means no
// workout is running.
type Session []ActiveExercise

// newSet returns an empty set with a fresh identity token.
func newSet() ActiveSet {
	return ActiveSet{ID: uuid.NewString()}
}

// Expand builds a session from a decoded routine. Structured routines
// pre-create each exercise's target number of sets with the target reps
// filled in as a suggestion and the weight left blank. Legacy routines get
// one empty set per exercise.
func Expand(parsed routine.Parsed) Session {
	if parsed.Legacy {
		s := make(Session, 0, len(parsed.Names))
		for i, name := range parsed.Names {
			s = append(s, ActiveExercise{ID: i, Name: name, Sets: []ActiveSet{newSet()}})
		}
		return s
	}

	s := make(Session, 0, len(parsed.Configs))
	for i, cfg := range parsed.Configs {
		sets := make([]ActiveSet, 0, cfg.TargetSets)
		for range cfg.TargetSets {
			set := newSet()
			set.Reps = cfg.TargetReps
			sets = append(sets, set)
		}
		s = append(s, ActiveExercise{ID: i, Name: cfg.Name, Sets: sets})
	}
	return s
}

// AddSet appends a set to the exercise with the given id, copying the
// weight and reps of the current last set so the user can repeat it with
// one tap. The new set always starts uncompleted. Unknown exercise ids are
// a silent no-op.
func AddSet(s Session, exerciseID int) Session {
	next := make(Session, len(s))
	for i, ex := range s {
		if ex.ID != exerciseID {
			next[i] = ex
			continue
		}

		set := newSet()
		if n := len(ex.Sets); n > 0 {
			last := ex.Sets[n-1]
			set.Weight = last.Weight
			set.Reps = last.Reps
		}

		sets := make([]ActiveSet, 0, len(ex.Sets)+1)
		sets = append(sets, ex.Sets...)
		sets = append(sets, set)
		next[i] = ActiveExercise{ID: ex.ID, Name: ex.Name, Sets: sets}
	}
	return next
}

// RemoveSet deletes a set from an exercise. An exercise may never drop to
// zero sets, so removal from a one-set exercise is refused and the session
// is returned unchanged for that exercise.
func RemoveSet(s Session, exerciseID int, setID string) Session {
	next := make(Session, len(s))
	for i, ex := range s {
		if ex.ID != exerciseID || len(ex.Sets) <= 1 {
			next[i] = ex
			continue
		}

		sets := make([]ActiveSet, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			if set.ID != setID {
				sets = append(sets, set)
			}
		}
		next[i] = ActiveExercise{ID: ex.ID, Name: ex.Name, Sets: sets}
	}
	return next
}

// SetPatch is a partial update for one set. Nil fields leave the
// corresponding value unchanged.
type SetPatch struct {
	Weight    *string `json:"weight"`
	Reps      *string `json:"reps"`
	RPE       *string `json:"rpe"`
	Completed *bool   `json:"completed"`
}

// UpdateSet applies a patch to one set. Unknown exercise or set ids are a
// silent no-op.
func UpdateSet(s Session, exerciseID int, setID string, patch SetPatch) Session {
	next := make(Session, len(s))
	for i, ex := range s {
		if ex.ID != exerciseID {
			next[i] = ex
			continue
		}

		sets := make([]ActiveSet, len(ex.Sets))
		for j, set := range ex.Sets {
			if set.ID == setID {
				if patch.Weight != nil {
					set.Weight = *patch.Weight
				}
				if patch.Reps != nil {
					set.Reps = *patch.Reps
				}
				if patch.RPE != nil {
					set.RPE = *patch.RPE
				}
				if patch.Completed != nil {
					set.Completed = *patch.Completed
				}
			}
			sets[j] = set
		}
		next[i] = ActiveExercise{ID: ex.ID, Name: ex.Name, Sets: sets}
	}
	return next
}

// Finish reconciles the session into durable records. Only sets that are
// marked completed and have both weight and reps entered qualify; everything
// else is dropped without comment. Numeric parsing never fails: garbage
// parses to zero. Every emitted record shares the same timestamp. Skipped
// counts exercises that had no qualifying sets at all.
func Finish(s Session, now time.Time) (records []models.CompletedExercise, skipped int) {
	date := models.Millis(now)

	for _, ex := range s {
		var sets []models.CompletedSet
		for _, set := range ex.Sets {
			if !set.Completed || set.Weight == "" || set.Reps == "" {
				continue
			}
			sets = append(sets, models.CompletedSet{
				Weight: parseFloat(set.Weight),
				Reps:   parseInt(set.Reps),
				RPE:    parseInt(set.RPE),
			})
		}

		if len(sets) == 0 {
			skipped++
			continue
		}
		records = append(records, models.CompletedExercise{
			ExerciseName: ex.Name,
			Date:         date,
			Sets:         sets,
		})
	}
	return records, skipped
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
