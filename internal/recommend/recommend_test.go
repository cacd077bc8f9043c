package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

func logAt(muscle string, age time.Duration, now time.Time) models.WorkoutLog {
	return models.WorkoutLog{
		ExerciseName: "Bench Press",
		MuscleGroup:  muscle,
		WeightUsed:   80,
		Reps:         8,
		RPE:          7,
		Date:         models.Millis(now.Add(-age)),
	}
}

// TestNextWorkoutEmptyHistory verifies the welcome message for a fresh user.
func TestNextWorkoutEmptyHistory(t *testing.T) {
	got := NextWorkout(nil, time.Now())
	if !strings.Contains(got, "full-body") {
		t.Errorf("got %q, want a full-body welcome", got)
	}
}

// TestNextWorkoutRestDay verifies that training within 24 hours yields a
// rest message regardless of muscle group.
func TestNextWorkoutRestDay(t *testing.T) {
	now := time.Now()
	history := []models.WorkoutLog{logAt("Legs", 3*time.Hour, now)}

	got := NextWorkout(history, now)
	if !strings.Contains(got, "Rest") {
		t.Errorf("got %q, want a rest message", got)
	}
}

// TestNextWorkoutRotation verifies the push/pull/legs rotation on the most
// recent entry's muscle group.
func TestNextWorkoutRotation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		muscle string
		want   string
	}{
		{"Chest", "back and biceps"},
		{"Triceps", "back and biceps"},
		{"Shoulders", "back and biceps"},
		{"Back", "leg day"},
		{"Biceps", "leg day"},
		{"Legs", "chest and triceps"},
		{"Unknown", "cardio"},
		{"", "cardio"},
	}

	for _, tc := range cases {
		history := []models.WorkoutLog{logAt(tc.muscle, 48*time.Hour, now)}
		got := NextWorkout(history, now)
		if !strings.Contains(got, tc.want) {
			t.Errorf("muscle %q: got %q, want mention of %q", tc.muscle, got, tc.want)
		}
	}
}

// TestNextWorkoutUsesMostRecent verifies only the first (most recent) entry
// drives the rotation.
func TestNextWorkoutUsesMostRecent(t *testing.T) {
	now := time.Now()
	history := []models.WorkoutLog{
		logAt("Legs", 48*time.Hour, now),
		logAt("Chest", 96*time.Hour, now),
	}

	got := NextWorkout(history, now)
	if !strings.Contains(got, "chest and triceps") {
		t.Errorf("got %q, want the Legs rotation (chest and triceps)", got)
	}
}

// TestSuggestWeightsNoHistory verifies the start-light prompt.
func TestSuggestWeightsNoHistory(t *testing.T) {
	got := SuggestWeights(nil)
	if !strings.Contains(got, "Start light") {
		t.Errorf("got %q, want the start-light prompt", got)
	}
}

// TestSuggestWeightsEasy verifies that RPE below 7 suggests +2.5.
func TestSuggestWeightsEasy(t *testing.T) {
	got := SuggestWeights(&models.WorkoutLog{WeightUsed: 80, RPE: 6})
	if !strings.Contains(got, "82.5") {
		t.Errorf("got %q, want a suggestion of 82.5", got)
	}
}

// TestSuggestWeightsHard verifies that RPE 7 or above holds the weight and
// asks for one more rep.
func TestSuggestWeightsHard(t *testing.T) {
	got := SuggestWeights(&models.WorkoutLog{WeightUsed: 80, RPE: 8})
	if !strings.Contains(got, "80") || !strings.Contains(got, "one more rep") {
		t.Errorf("got %q, want same weight with one more rep", got)
	}
}
