package views

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"training-dashboard/internal/controllers"
	"training-dashboard/internal/models"
	"training-dashboard/internal/views/components"
)

// MainView is the dashboard window content: the mode bar on top and one
// panel per display mode, of which only the active one is visible.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	modeBar       *components.ModeBar
	greeting      *components.GreetingPanel
	workout       *components.WorkoutPanel
	weather       *components.WeatherPanel
	news          *components.NewsPanel
	panels        map[models.DisplayMode]fyne.CanvasObject

	modeHandler   func(models.DisplayMode)
	selectHandler func(string)
}

// NewMainView creates the view and sets it as the window content.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.modeBar = components.NewModeBar()
	mv.greeting = components.NewGreetingPanel()
	mv.workout = components.NewWorkoutPanel()
	mv.weather = components.NewWeatherPanel()
	mv.news = components.NewNewsPanel()

	mv.panels = map[models.DisplayMode]fyne.CanvasObject{
		models.ModeGreeting: mv.greeting.GetContainer(),
		models.ModeWorkout:  mv.workout.GetContainer(),
		models.ModeWeather:  mv.weather.GetContainer(),
		models.ModeNews:     mv.news.GetContainer(),
	}
}

func (mv *MainView) buildLayout() {
	content := container.NewStack(
		mv.greeting.GetContainer(),
		mv.workout.GetContainer(),
		mv.weather.GetContainer(),
		mv.news.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		container.NewPadded(mv.modeBar.GetContainer()),
		nil,
		nil,
		nil,
		content,
	)
	mv.showPanel(models.ModeGreeting)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.modeBar.SetSelectHandler(mv.requestMode)
	mv.workout.SetChooseHandler(func(name string) {
		if mv.selectHandler != nil {
			mv.selectHandler(name)
		}
	})

	mv.window.Canvas().SetOnTypedRune(func(r rune) {
		if mode, ok := components.ModeForRune(r); ok {
			mv.requestMode(mode)
		}
	})
}

func (mv *MainView) requestMode(mode models.DisplayMode) {
	if mv.modeHandler != nil {
		mv.modeHandler(mode)
	}
}

// SetModeHandler sets the handler for mode button presses and the 1/2/3 keys.
func (mv *MainView) SetModeHandler(handler func(models.DisplayMode)) {
	mv.modeHandler = handler
}

// SetWorkoutSelectHandler sets the handler for the lifting choice buttons.
func (mv *MainView) SetWorkoutSelectHandler(handler func(string)) {
	mv.selectHandler = handler
}

// Render brings every panel up to date with state and shows the active one.
// It must be called on the UI goroutine.
func (mv *MainView) Render(state models.DashboardState, catalog models.Catalog, now time.Time) {
	mv.modeBar.SetActive(state.Mode)
	mv.showPanel(state.Mode)

	switch state.Mode {
	case models.ModeGreeting:
		mv.greeting.Update(now, state.Greeting)
	case models.ModeWorkout:
		mv.workout.Update(workoutContent(state, catalog))
	case models.ModeWeather:
		mv.weather.Update(state.Weather)
	case models.ModeNews:
		mv.news.Update(state.Headlines)
	}
}

func workoutContent(state models.DashboardState, catalog models.Catalog) components.WorkoutContent {
	content := components.WorkoutContent{
		Today:        state.Today,
		Conditioning: catalog.Conditioning,
	}
	if state.Today != nil {
		content.Options = controllers.LiftingOptions(state.Today.Lifting)
	}
	if w, ok := catalog.Workout(state.SelectedWorkout); ok {
		content.Workout = &w
	}
	return content
}

func (mv *MainView) showPanel(mode models.DisplayMode) {
	for m, panel := range mv.panels {
		visible := m == mode
		if panel.Visible() == visible {
			continue
		}
		if visible {
			panel.Show()
		} else {
			panel.Hide()
		}
	}
}

// Show displays the window.
func (mv *MainView) Show() {
	mv.window.Show()
}
