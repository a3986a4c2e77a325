package components

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-dashboard/internal/models"
)

func intPtr(v int) *int { return &v }

func joinSegments(segments []Segment) string {
	var out string
	for _, s := range segments {
		out += s.Text
	}
	return out
}

// texts collects every string drawn by labels and canvas texts under obj.
func texts(obj fyne.CanvasObject) []string {
	var out []string
	switch o := obj.(type) {
	case *canvas.Text:
		out = append(out, o.Text)
	case *widget.Label:
		out = append(out, o.Text)
	case *widget.Button:
		out = append(out, o.Text)
	case *fyne.Container:
		for _, child := range o.Objects {
			out = append(out, texts(child)...)
		}
	case *container.Scroll:
		out = append(out, texts(o.Content)...)
	}
	return out
}

func TestExerciseSegmentsReps(t *testing.T) {
	e := models.Exercise{Name: "Split Squat", Sets: 3, Reps: intPtr(8), Each: true}

	segments := ExerciseSegments(e)

	assert.Equal(t, "• Split Squat: 3 sets - 8 reps each side", joinSegments(segments))
	assert.Equal(t, SegmentSets, segments[3].Kind)
	assert.Equal(t, SegmentReps, segments[6].Kind)
}

func TestExerciseSegmentsSeconds(t *testing.T) {
	e := models.Exercise{Name: "Plank", Sets: 3, Seconds: intPtr(45)}
	assert.Equal(t, "• Plank: 3 sets - 45 seconds", joinSegments(ExerciseSegments(e)))
}

func TestExerciseSegmentsRepsWinOverSeconds(t *testing.T) {
	e := models.Exercise{Name: "Carry", Sets: 2, Reps: intPtr(1), Seconds: intPtr(30)}
	assert.Equal(t, "• Carry: 2 sets - 1 reps", joinSegments(ExerciseSegments(e)))
}

func TestExerciseSegmentsSetsOnly(t *testing.T) {
	assert.Equal(t, "• Band Pull: 2 sets", joinSegments(ExerciseSegments(models.Exercise{Name: "Band Pull", Sets: 2})))
}

func TestCardioSegments(t *testing.T) {
	c := models.Cardio{Name: "Bike", Description: "Max effort", Sets: 8, Time: intPtr(30), Rest: intPtr(90)}
	assert.Equal(t, "• Bike: Max effort - 8 sets x 30 seconds (rest 90 seconds)", joinSegments(CardioSegments(c)))
	assert.Equal(t, "• Walk", joinSegments(CardioSegments(models.Cardio{Name: "Walk"})))
}

func TestModeForRune(t *testing.T) {
	mode, ok := ModeForRune('2')
	assert.True(t, ok)
	assert.Equal(t, models.ModeWeather, mode)

	_, ok = ModeForRune('4')
	assert.False(t, ok)
}

func TestModeBarTapAndHighlight(t *testing.T) {
	test.NewTempApp(t)
	mb := NewModeBar()

	var selected models.DisplayMode
	mb.SetSelectHandler(func(m models.DisplayMode) { selected = m })
	test.Tap(mb.buttons[models.ModeNews])
	assert.Equal(t, models.ModeNews, selected)

	mb.SetActive(models.ModeWorkout)
	assert.Equal(t, widget.HighImportance, mb.buttons[models.ModeWorkout].Importance)
	assert.Equal(t, widget.MediumImportance, mb.buttons[models.ModeNews].Importance)
}

func TestGreetingPanelUpdate(t *testing.T) {
	test.NewTempApp(t)
	gp := NewGreetingPanel()

	gp.Update(time.Date(2024, 3, 18, 7, 5, 9, 0, time.Local), "Good Morning, Jackson")

	assert.Equal(t, "07:05:09", gp.clock.Text)
	assert.Equal(t, "Good Morning, Jackson", gp.greeting.Text)
}

func TestWorkoutPanelNoSchedule(t *testing.T) {
	test.NewTempApp(t)
	wp := NewWorkoutPanel()

	wp.Update(WorkoutContent{})

	assert.Equal(t, []string{"No schedule found for today."}, texts(wp.body))
}

func TestWorkoutPanelChoiceButtons(t *testing.T) {
	test.NewTempApp(t)
	wp := NewWorkoutPanel()
	var chosen string
	wp.SetChooseHandler(func(name string) { chosen = name })

	wp.Update(WorkoutContent{
		Today:   &models.DaySchedule{Day: "TUE", Date: "19-03", Throwing: "Long toss", Lifting: "Upper A OR Upper B", Game: "None"},
		Options: []string{"Upper A", "Upper B"},
		Workout: &models.Workout{Name: "Upper B", Exercises: []models.Exercise{{Name: "Row", Sets: 3, Reps: intPtr(10)}}},
	})

	shown := texts(wp.body)
	assert.Contains(t, shown, "Lifting: Upper A OR Upper B")
	assert.Contains(t, shown, "Choose your workout:")
	assert.Contains(t, shown, "Workout: Upper B")
	assert.Contains(t, shown, "Row")

	var button *widget.Button
	for _, obj := range wp.body.Objects {
		if c, ok := obj.(*fyne.Container); ok {
			for _, inner := range c.Objects {
				if row, ok := inner.(*fyne.Container); ok && len(row.Objects) > 1 {
					if b, ok := row.Objects[1].(*widget.Button); ok {
						button = b
					}
				}
			}
		}
	}
	require.NotNil(t, button)
	test.Tap(button)
	assert.Equal(t, "Upper B", chosen)
}

func TestWorkoutPanelSkipsEmptyConditioning(t *testing.T) {
	test.NewTempApp(t)
	wp := NewWorkoutPanel()

	wp.Update(WorkoutContent{
		Conditioning: []models.Conditioning{
			{Name: "Conditioning A"},
			{Name: "Conditioning B", Choices: []models.Cardio{{Name: "Sled Push", Sets: 4}}},
		},
	})

	shown := texts(wp.body)
	assert.NotContains(t, shown, "Conditioning A")
	assert.Contains(t, shown, "Conditioning B")
	assert.Contains(t, shown, "Sled Push")
}

func TestWeatherPanel(t *testing.T) {
	test.NewTempApp(t)
	wp := NewWeatherPanel()

	wp.Update(nil)
	assert.Equal(t, []string{"Weather data not available."}, texts(wp.body))

	wp.Update(&models.WeatherReport{
		Temperature: "70.0°F",
		Conditions:  "clear sky",
		Hourly: []models.HourlyForecast{
			{Time: "12:00", Temperature: "70.0°F", Description: "clear sky", Icon: "01d"},
			{Time: "15:00", Temperature: "73.0°F", Description: "few clouds", Icon: "02d"},
		},
	})
	shown := texts(wp.body)
	assert.Contains(t, shown, "Temperature: 70.0°F")
	assert.Contains(t, shown, "Conditions: clear sky")
	assert.Contains(t, shown, "15:00")
	assert.Contains(t, shown, "few clouds")
	assert.NotContains(t, shown, "Updated 00:00")
}

func TestWeatherPanelShowsFetchTime(t *testing.T) {
	test.NewTempApp(t)
	wp := NewWeatherPanel()

	wp.Update(&models.WeatherReport{
		Temperature: "70.0°F",
		Conditions:  "clear sky",
		FetchedAt:   time.Date(2024, 3, 18, 14, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, texts(wp.body), "Updated 14:30")
}

func TestNewsPanel(t *testing.T) {
	test.NewTempApp(t)
	np := NewNewsPanel()

	np.Update([]models.Headline{{Title: "Season opener", Description: "First pitch at 7pm."}})

	assert.Equal(t, []string{"• Season opener", "  First pitch at 7pm."}, texts(np.list))
}

func TestNewsPanelRedrawsSameLengthList(t *testing.T) {
	test.NewTempApp(t)
	np := NewNewsPanel()

	np.Update([]models.Headline{{Title: "Season opener", Description: "First pitch at 7pm."}})
	np.Update([]models.Headline{{Title: "Rain delay", Description: "Game moved to Sunday."}})

	assert.Equal(t, []string{"• Rain delay", "  Game moved to Sunday."}, texts(np.list))
}

func TestNewsPanelEmptyList(t *testing.T) {
	test.NewTempApp(t)
	np := NewNewsPanel()

	np.Update(nil)

	assert.Empty(t, texts(np.list))
}
