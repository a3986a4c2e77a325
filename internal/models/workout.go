package models

// Exercise is a single strength movement within a Workout. Reps and Seconds
// are both optional; in practice one of them carries the prescription.
type Exercise struct {
	Name    string   `json:"name"`
	Sets    int      `json:"sets"`
	Reps    *int     `json:"reps,omitempty"`
	Each    bool     `json:"each"`
	Seconds *int     `json:"seconds,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`
}

// Workout is a named, ordered list of strength exercises.
type Workout struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// Cardio is one conditioning choice.
type Cardio struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Time        *int   `json:"time,omitempty"`
	Rest        *int   `json:"rest,omitempty"`
	Sets        int    `json:"sets"`
}

// Conditioning is a named, ordered list of cardio choices.
type Conditioning struct {
	Name    string   `json:"name"`
	Choices []Cardio `json:"choices"`
}

// Catalog holds every workout and conditioning group loaded at startup.
type Catalog struct {
	Workouts     []Workout
	Conditioning []Conditioning
}

// Workout returns the workout with the given name.
func (c Catalog) Workout(name string) (Workout, bool) {
	for _, w := range c.Workouts {
		if w.Name == name {
			return w, true
		}
	}
	return Workout{}, false
}

// HasWorkout reports whether a workout with the given name exists.
func (c Catalog) HasWorkout(name string) bool {
	_, ok := c.Workout(name)
	return ok
}
