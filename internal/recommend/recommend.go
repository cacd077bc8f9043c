// Package recommend holds the training heuristics: what to train next given
// the workout history, and how to progress the load on a single exercise.
// Both are pure functions over their inputs; the tracker recomputes them
// after every history change.
package recommend

import (
	"fmt"
	"time"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// NextWorkout suggests the next training focus from the full history,
// ordered most recent first. The rotation is a simplified push/pull/legs
// split keyed on the most recent entry's muscle group. Training again
// within 24 hours earns a rest day instead.
func NextWorkout(history []models.WorkoutLog, now time.Time) string {
	if len(history) == 0 {
		return "Welcome! Let's start with a basic full-body session to calibrate."
	}

	last := history[0]
	daysSince := (models.Millis(now) - last.Date) / millisPerDay
	if daysSince < 1 {
		return "You already trained today. Rest up and eat well!"
	}

	switch last.MuscleGroup {
	case "Chest", "Triceps", "Shoulders":
		return "Coach: today is back and biceps (pull) to balance things out."
	case "Back", "Biceps":
		return "Coach: today is leg day. Don't skip it."
	case "Legs":
		return "Coach: today is chest and triceps (push)."
	default:
		return "Coach: go for a cardio or full-body session."
	}
}

const millisPerDay = 1000 * 60 * 60 * 24

// SuggestWeights proposes the next load for an exercise given its most
// recent log. A low perceived effort means the weight can go up by 2.5;
// otherwise hold the weight and chase one more rep.
func SuggestWeights(lastLog *models.WorkoutLog) string {
	if lastLog == nil {
		return "Start light and log your weight."
	}

	if lastLog.RPE < 7 {
		return fmt.Sprintf("Coach: last time %gkg felt easy. Try moving up to %gkg!",
			lastLog.WeightUsed, lastLog.WeightUsed+2.5)
	}
	return fmt.Sprintf("Coach: hold %gkg but try to squeeze out one more rep.", lastLog.WeightUsed)
}
