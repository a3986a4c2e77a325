package components

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"training-dashboard/internal/models"
)

// WorkoutContent is everything the workout panel shows.
type WorkoutContent struct {
	Today        *models.DaySchedule
	Options      []string
	Workout      *models.Workout
	Conditioning []models.Conditioning
}

// WorkoutPanel shows today's schedule, the lifting choice when there is one,
// and the selected workout's exercises.
type WorkoutPanel struct {
	container *fyne.Container
	body      *fyne.Container
	onChoose  func(string)
	last      string
}

func NewWorkoutPanel() *WorkoutPanel {
	wp := &WorkoutPanel{
		body: container.NewVBox(),
	}
	wp.container = container.NewStack(container.NewVScroll(wp.body))
	return wp
}

func (wp *WorkoutPanel) SetChooseHandler(handler func(string)) {
	wp.onChoose = handler
}

// Update rebuilds the panel when its content changed since the last call.
func (wp *WorkoutPanel) Update(content WorkoutContent) {
	key := contentKey(content)
	if key == wp.last {
		return
	}
	wp.last = key

	objects := wp.scheduleSection(content)
	if content.Workout != nil {
		objects = append(objects, newHeading("Workout: "+content.Workout.Name))
		for _, e := range content.Workout.Exercises {
			objects = append(objects, segmentRow(ExerciseSegments(e)))
		}
	}
	for _, cond := range content.Conditioning {
		if len(cond.Choices) == 0 {
			continue
		}
		objects = append(objects, newText(cond.Name, ItemSize, true))
		for _, c := range cond.Choices {
			objects = append(objects, segmentRow(CardioSegments(c)))
		}
	}

	wp.body.Objects = objects
	wp.body.Refresh()
}

func (wp *WorkoutPanel) scheduleSection(content WorkoutContent) []fyne.CanvasObject {
	today := content.Today
	if today == nil {
		return []fyne.CanvasObject{newText("No schedule found for today.", ItemSize, false)}
	}

	objects := []fyne.CanvasObject{
		newHeading("Today's Schedule"),
		newLabel("Day: " + today.Day),
		newLabel("Date: " + today.Date),
		newLabel("Throwing: " + today.Throwing),
		newLabel("Lifting: " + today.Lifting),
		newLabel("Game: " + today.Game),
	}

	if len(content.Options) > 0 {
		objects = append(objects, newText("Choose your workout:", 32, true))
		buttons := make([]fyne.CanvasObject, 0, len(content.Options))
		for _, option := range content.Options {
			buttons = append(buttons, widget.NewButton(option, func() {
				if wp.onChoose != nil {
					wp.onChoose(option)
				}
			}))
		}
		objects = append(objects, container.NewCenter(container.NewHBox(buttons...)))
	}
	return objects
}

func (wp *WorkoutPanel) GetContainer() *fyne.Container {
	return wp.container
}

func newLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Alignment = fyne.TextAlignCenter
	return l
}

func segmentRow(segments []Segment) *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, len(segments))
	for _, s := range segments {
		objects = append(objects, segmentText(s, ItemSize))
	}
	return container.NewCenter(container.NewHBox(objects...))
}

// ExerciseSegments formats an exercise as "• Name: 3 sets - 10 reps each side",
// falling back to seconds when no reps are given.
func ExerciseSegments(e models.Exercise) []Segment {
	segments := []Segment{
		{Text: "• "},
		{Text: e.Name, Kind: SegmentName},
		{Text: ": "},
		{Text: strconv.Itoa(e.Sets), Kind: SegmentSets},
		{Text: " sets"},
	}

	switch {
	case e.Reps != nil:
		suffix := " reps"
		if e.Each {
			suffix += " each side"
		}
		segments = append(segments,
			Segment{Text: " - "},
			Segment{Text: strconv.Itoa(*e.Reps), Kind: SegmentReps},
			Segment{Text: suffix},
		)
	case e.Seconds != nil:
		segments = append(segments,
			Segment{Text: " - "},
			Segment{Text: strconv.Itoa(*e.Seconds), Kind: SegmentSeconds},
			Segment{Text: " seconds"},
		)
	}
	return segments
}

// CardioSegments formats a conditioning choice.
func CardioSegments(c models.Cardio) []Segment {
	segments := []Segment{
		{Text: "• "},
		{Text: c.Name, Kind: SegmentName},
	}
	if c.Description != "" {
		segments = append(segments, Segment{Text: ": " + c.Description})
	}
	if c.Sets > 0 {
		segments = append(segments,
			Segment{Text: " - "},
			Segment{Text: strconv.Itoa(c.Sets), Kind: SegmentSets},
			Segment{Text: " sets"},
		)
	}
	if c.Time != nil {
		segments = append(segments,
			Segment{Text: " x "},
			Segment{Text: strconv.Itoa(*c.Time), Kind: SegmentSeconds},
			Segment{Text: " seconds"},
		)
	}
	if c.Rest != nil {
		segments = append(segments, Segment{Text: fmt.Sprintf(" (rest %d seconds)", *c.Rest)})
	}
	return segments
}

func contentKey(c WorkoutContent) string {
	key := "none"
	if c.Today != nil {
		key = fmt.Sprintf("%+v", *c.Today)
	}
	if c.Workout != nil {
		key += "|" + c.Workout.Name
	}
	key += fmt.Sprintf("|%v|%d", c.Options, len(c.Conditioning))
	return key
}
