package services

import (
	"encoding/json"
	"fmt"
	"os"

	"training-dashboard/internal/logger"
	"training-dashboard/internal/models"
)

// warmupName marks records that are not tracked as workout exercises.
const warmupName = "Warmup"

// BuildWorkout converts raw exercise records into a Workout. Warmup records
// are dropped; all other records are kept in input order with missing or
// mistyped fields defaulted.
func BuildWorkout(name string, records []json.RawMessage) models.Workout {
	exercises := make([]models.Exercise, 0, len(records))

	for _, raw := range records {
		rec := models.DecodeExerciseRecord(raw)

		exerciseName := rec.Exercise.Or("")
		if exerciseName == warmupName {
			continue
		}

		exercises = append(exercises, models.Exercise{
			Name:    exerciseName,
			Sets:    rec.Sets.Or(0),
			Reps:    rec.Reps.Ptr(),
			Each:    rec.Each.Or(false),
			Seconds: rec.Seconds.Ptr(),
		})
	}

	return models.Workout{
		Name:      name,
		Exercises: exercises,
	}
}

// BuildConditioning converts raw records into a Conditioning group. Every
// record becomes a choice.
func BuildConditioning(name string, records []json.RawMessage) models.Conditioning {
	choices := make([]models.Cardio, 0, len(records))

	for _, raw := range records {
		rec := models.DecodeExerciseRecord(raw)
		choices = append(choices, models.Cardio{
			Name:        rec.Exercise.Or(""),
			Description: rec.Description.Or(""),
			Time:        rec.Seconds.Ptr(),
			Rest:        rec.Rest.Ptr(),
			Sets:        rec.Sets.Or(0),
		})
	}

	return models.Conditioning{
		Name:    name,
		Choices: choices,
	}
}

// WorkoutService builds the workout catalog from the workouts file.
type WorkoutService struct {
	path         string
	groups       []string
	conditioning []string
	logger       logger.Logger
}

func NewWorkoutService(path string, groups, conditioning []string, log logger.Logger) *WorkoutService {
	return &WorkoutService{
		path:         path,
		groups:       groups,
		conditioning: conditioning,
		logger:       log,
	}
}

// Load reads the workouts file and builds the catalog. A missing file yields
// a catalog of empty groups.
func (s *WorkoutService) Load() models.Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("WorkoutService", fmt.Errorf("reading workouts: %w", err), map[string]interface{}{
			"path": s.path,
		})
		data = nil
	}
	return s.LoadCatalog(data)
}

// LoadCatalog builds every configured group from document, in configured
// order. A group the document lacks is still present, with no exercises.
func (s *WorkoutService) LoadCatalog(document []byte) models.Catalog {
	var raw map[string][]json.RawMessage
	if len(document) > 0 {
		if err := json.Unmarshal(document, &raw); err != nil {
			s.logger.Error("WorkoutService", fmt.Errorf("parsing workouts: %w", err), nil)
			raw = nil
		}
	}

	catalog := models.Catalog{
		Workouts:     make([]models.Workout, 0, len(s.groups)),
		Conditioning: make([]models.Conditioning, 0, len(s.conditioning)),
	}
	for _, name := range s.groups {
		catalog.Workouts = append(catalog.Workouts, BuildWorkout(name, raw[name]))
	}
	for _, name := range s.conditioning {
		catalog.Conditioning = append(catalog.Conditioning, BuildConditioning(name, raw[name]))
	}

	s.logger.Info("WorkoutService", "workout catalog loaded", map[string]interface{}{
		"workouts":     len(catalog.Workouts),
		"conditioning": len(catalog.Conditioning),
	})
	return catalog
}
