package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Cyb3rh4ck/SmartGym/internal/models"
)

// testDB opens a migrated sqlite database in a temp dir.
func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smartgym.db")

	if err := RunMigrations(DriverSQLite, path); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := Open(context.Background(), DriverSQLite, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestLogsCRUD exercises the workout-log lifecycle: insert, list ordered
// by date descending, update in place, delete.
func TestLogsCRUD(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	older, err := db.InsertLog(ctx, models.WorkoutLog{
		ExerciseName: "Squat", MuscleGroup: "Legs", WeightUsed: 100, Reps: 5, RPE: 8, Date: 1000,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	newer, err := db.InsertLog(ctx, models.WorkoutLog{
		ExerciseName: "Bench Press", MuscleGroup: "Chest", WeightUsed: 80, Reps: 8, RPE: 7, Date: 2000,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if older.ID == 0 || newer.ID == 0 || older.ID == newer.ID {
		t.Fatalf("bad generated ids: %d, %d", older.ID, newer.ID)
	}

	logs, err := db.ListLogs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("len = %d, want 2", len(logs))
	}
	if logs[0].ExerciseName != "Bench Press" {
		t.Errorf("most recent = %q, want Bench Press", logs[0].ExerciseName)
	}

	newer.Reps = 9
	if err := db.UpdateLog(ctx, newer); err != nil {
		t.Fatalf("update: %v", err)
	}
	logs, _ = db.ListLogs(ctx)
	if logs[0].Reps != 9 {
		t.Errorf("reps after update = %d, want 9", logs[0].Reps)
	}
	if logs[0].Date != 2000 {
		t.Errorf("date changed on update: %d, want 2000", logs[0].Date)
	}

	if err := db.DeleteLog(ctx, older.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	logs, _ = db.ListLogs(ctx)
	if len(logs) != 1 {
		t.Errorf("len after delete = %d, want 1", len(logs))
	}
}

// TestLastLogForMuscle verifies the per-muscle lookup and the nil result
// for an untrained muscle.
func TestLastLogForMuscle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	db.InsertLog(ctx, models.WorkoutLog{ExerciseName: "Squat", MuscleGroup: "Legs", WeightUsed: 90, Reps: 5, RPE: 8, Date: 1000})
	db.InsertLog(ctx, models.WorkoutLog{ExerciseName: "Squat", MuscleGroup: "Legs", WeightUsed: 100, Reps: 5, RPE: 8, Date: 2000})

	last, err := db.LastLogForMuscle(ctx, "Legs")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if last == nil || last.WeightUsed != 100 {
		t.Errorf("last = %+v, want the date=2000 entry", last)
	}

	none, err := db.LastLogForMuscle(ctx, "Chest")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if none != nil {
		t.Errorf("untrained muscle returned %+v, want nil", none)
	}
}

// TestRoutines verifies insert, list, get, and delete; routines have no
// update path.
func TestRoutines(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	r, err := db.InsertRoutine(ctx, models.Routine{Name: "Push Day", Exercises: `[{"name":"Bench Press","targetSets":4,"targetReps":"8-12","restTimeSeconds":90}]`})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := db.GetRoutine(ctx, r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Push Day" || got.Exercises != r.Exercises {
		t.Errorf("got %+v, want %+v", got, r)
	}

	if err := db.DeleteRoutine(ctx, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetRoutine(ctx, r.ID); err == nil {
		t.Error("get after delete succeeded")
	}
	routines, _ := db.ListRoutines(ctx)
	if len(routines) != 0 {
		t.Errorf("len after delete = %d, want 0", len(routines))
	}
}

// TestCompletedExercisesRoundTrip verifies the batch insert and the JSON
// sets column surviving a round trip.
func TestCompletedExercisesRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	records := []models.CompletedExercise{
		{ExerciseName: "Squat", Date: 5000, Sets: []models.CompletedSet{{Weight: 100, Reps: 5, RPE: 8}, {Weight: 105, Reps: 3, RPE: 9}}},
		{ExerciseName: "Leg Press", Date: 5000, Sets: []models.CompletedSet{{Weight: 180, Reps: 10, RPE: 7}}},
	}
	saved, err := db.InsertCompletedExercises(ctx, records)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(saved) != 2 || saved[0].ID == 0 || saved[1].ID == 0 {
		t.Fatalf("saved = %+v, want 2 records with ids", saved)
	}

	listed, err := db.ListCompletedExercises(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("len = %d, want 2", len(listed))
	}
	// Same date: newest id first.
	if listed[0].ExerciseName != "Leg Press" {
		t.Errorf("first = %q, want Leg Press", listed[0].ExerciseName)
	}
	if len(listed[1].Sets) != 2 || listed[1].Sets[0].Weight != 100 {
		t.Errorf("sets = %+v, want the original squat sets", listed[1].Sets)
	}

	if err := db.DeleteCompletedExercise(ctx, saved[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listed, _ = db.ListCompletedExercises(ctx)
	if len(listed) != 1 {
		t.Errorf("len after delete = %d, want 1", len(listed))
	}
}

// TestInsertCompletedExercisesEmpty verifies that an empty batch is a no-op.
func TestInsertCompletedExercisesEmpty(t *testing.T) {
	db := testDB(t)
	saved, err := db.InsertCompletedExercises(context.Background(), nil)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if saved != nil {
		t.Errorf("saved = %+v, want nil", saved)
	}
}

// TestProfileUpsert verifies the singleton profile upsert and read-back.
func TestProfileUpsert(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	p, err := db.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Fatalf("fresh database has a profile: %+v", p)
	}

	if err := db.SaveProfile(ctx, models.UserProfile{Weight: 82, Height: 180, Goal: "Gain Muscle", ExperienceLevel: "Beginner"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.SaveProfile(ctx, models.UserProfile{Weight: 80, Height: 180, Goal: "Lose Fat", ExperienceLevel: "Beginner"}); err != nil {
		t.Fatalf("resave: %v", err)
	}

	p, err = db.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil || p.ID != models.ProfileID || p.Weight != 80 || p.Goal != "Lose Fat" {
		t.Errorf("profile = %+v, want the updated singleton", p)
	}
}

// TestRebind verifies the placeholder rewrite used for postgres.
func TestRebind(t *testing.T) {
	pg := &DB{driver: DriverPostgres}
	got := pg.rebind(`INSERT INTO t (a, b) VALUES (?, ?) RETURNING id`)
	want := `INSERT INTO t (a, b) VALUES ($1, $2) RETURNING id`
	if got != want {
		t.Errorf("rebind = %q, want %q", got, want)
	}

	lite := &DB{driver: DriverSQLite}
	if got := lite.rebind(`SELECT ?`); got != `SELECT ?` {
		t.Errorf("sqlite rebind changed the query: %q", got)
	}
}
