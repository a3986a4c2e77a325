package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-dashboard/internal/logger"
	"training-dashboard/internal/models"
)

func records(t *testing.T, doc string) []json.RawMessage {
	t.Helper()
	var out []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(doc), &out))
	return out
}

func intPtr(v int) *int { return &v }

func TestBuildWorkoutPushup(t *testing.T) {
	w := BuildWorkout("Upper A", records(t, `[{"exercise":"Pushup","sets":3,"reps":10,"each":false}]`))

	require.Len(t, w.Exercises, 1)
	assert.Equal(t, models.Exercise{
		Name: "Pushup",
		Sets: 3,
		Reps: intPtr(10),
		Each: false,
	}, w.Exercises[0])
	assert.Nil(t, w.Exercises[0].Seconds)
	assert.Nil(t, w.Exercises[0].Weight)
}

func TestBuildWorkoutSkipsWarmupsAnywhere(t *testing.T) {
	w := BuildWorkout("Lower A", records(t, `[
		{"exercise":"Warmup","sets":1},
		{"exercise":"Split Squat","sets":3,"reps":8,"each":true},
		{"exercise":"Warmup"},
		{"exercise":"Plank","sets":3,"seconds":45},
		{"exercise":"Warmup","sets":2,"reps":5}
	]`))

	names := make([]string, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Split Squat", "Plank"}, names)

	assert.True(t, w.Exercises[0].Each)
	require.NotNil(t, w.Exercises[1].Seconds)
	assert.Equal(t, 45, *w.Exercises[1].Seconds)
	assert.Nil(t, w.Exercises[1].Reps)
}

// Only the exact name "Warmup" is skipped.
func TestBuildWorkoutWarmupMatchIsExact(t *testing.T) {
	w := BuildWorkout("Upper B", records(t, `[{"exercise":"warmup"},{"exercise":"Warmup Row"}]`))
	assert.Len(t, w.Exercises, 2)
}

func TestBuildWorkoutDefaults(t *testing.T) {
	w := BuildWorkout("Upper B", records(t, `[{}, {"exercise": 7, "sets": -1, "each": "true"}, 3]`))

	require.Len(t, w.Exercises, 3)
	for _, e := range w.Exercises {
		assert.Equal(t, models.Exercise{}, e)
	}
}

func TestBuildWorkoutEmpty(t *testing.T) {
	w := BuildWorkout("Lower B", nil)
	assert.Equal(t, "Lower B", w.Name)
	assert.Empty(t, w.Exercises)
}

func TestBuildConditioning(t *testing.T) {
	c := BuildConditioning("Conditioning A", records(t, `[
		{"exercise":"Bike Sprints","description":"Max effort","seconds":30,"rest":90,"sets":8},
		{"exercise":"Warmup","description":"Easy spin"},
		{"exercise":"Tempo Run"}
	]`))

	require.Len(t, c.Choices, 3)
	assert.Equal(t, models.Cardio{
		Name:        "Bike Sprints",
		Description: "Max effort",
		Time:        intPtr(30),
		Rest:        intPtr(90),
		Sets:        8,
	}, c.Choices[0])
	assert.Equal(t, "Warmup", c.Choices[1].Name, "conditioning keeps every record")
	assert.Equal(t, models.Cardio{Name: "Tempo Run"}, c.Choices[2])
}

func TestBuildConditioningEmpty(t *testing.T) {
	c := BuildConditioning("Conditioning B", []json.RawMessage{})
	assert.Equal(t, "Conditioning B", c.Name)
	assert.Empty(t, c.Choices)
}

const workoutsDoc = `{
  "Upper A": [
    {"exercise":"Warmup","sets":1},
    {"exercise":"Bench Press","sets":4,"reps":6}
  ],
  "Lower A": [
    {"exercise":"Trap Bar Deadlift","sets":4,"reps":5}
  ],
  "Conditioning A": [
    {"exercise":"Row","seconds":60,"rest":60,"sets":5}
  ],
  "Unlisted": [
    {"exercise":"Curl","sets":3,"reps":12}
  ]
}`

func newWorkoutService(path string) *WorkoutService {
	return NewWorkoutService(path,
		[]string{"Upper A", "Upper B", "Lower A", "Lower B"},
		[]string{"Conditioning A", "Conditioning B"},
		logger.NoOpLogger{},
	)
}

func TestLoadCatalogConfiguredGroupsInOrder(t *testing.T) {
	catalog := newWorkoutService("").LoadCatalog([]byte(workoutsDoc))

	require.Len(t, catalog.Workouts, 4)
	assert.Equal(t, "Upper A", catalog.Workouts[0].Name)
	assert.Len(t, catalog.Workouts[0].Exercises, 1)
	assert.Equal(t, "Upper B", catalog.Workouts[1].Name)
	assert.Empty(t, catalog.Workouts[1].Exercises)
	assert.Equal(t, "Trap Bar Deadlift", catalog.Workouts[2].Exercises[0].Name)

	require.Len(t, catalog.Conditioning, 2)
	assert.Len(t, catalog.Conditioning[0].Choices, 1)
	assert.Empty(t, catalog.Conditioning[1].Choices)

	assert.False(t, catalog.HasWorkout("Unlisted"))
}

func TestLoadCatalogMalformedDocument(t *testing.T) {
	catalog := newWorkoutService("").LoadCatalog([]byte(`{"Upper A": {"exercise": "Bench"}}`))

	require.Len(t, catalog.Workouts, 4)
	for _, w := range catalog.Workouts {
		assert.Empty(t, w.Exercises)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workouts.json")
	require.NoError(t, os.WriteFile(path, []byte(workoutsDoc), 0644))

	catalog := newWorkoutService(path).Load()
	w, ok := catalog.Workout("Upper A")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", w.Exercises[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	catalog := newWorkoutService(filepath.Join(t.TempDir(), "nope.json")).Load()
	assert.Len(t, catalog.Workouts, 4)
	assert.Len(t, catalog.Conditioning, 2)
}
