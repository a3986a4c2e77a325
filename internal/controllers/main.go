package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"training-dashboard/internal/logger"
	"training-dashboard/internal/models"
)

const tickInterval = time.Second

// ScheduleSource resolves today's schedule entry, nil when there is none.
type ScheduleSource interface {
	Today() *models.DaySchedule
}

type WeatherFetcher interface {
	Fetch(ctx context.Context) (*models.WeatherReport, error)
}

type Greeter interface {
	Greeting(now time.Time) string
}

// View renders dashboard state and reports user input back to the controller.
type View interface {
	Render(state models.DashboardState, catalog models.Catalog, now time.Time)
	SetModeHandler(handler func(models.DisplayMode))
	SetWorkoutSelectHandler(handler func(string))
}

// Settings holds the dashboard timer thresholds.
type Settings struct {
	ViewTimeout      time.Duration
	GreetingInterval time.Duration
	RefreshInterval  time.Duration
}

// MainController owns the dashboard state. Every method except Start and
// Shutdown must run on the UI goroutine; background work posts its result
// back through dispatch.
type MainController struct {
	catalog   models.Catalog
	schedule  ScheduleSource
	weather   WeatherFetcher
	greeter   Greeter
	settings  Settings
	logger    logger.Logger
	mainView  View
	state     models.DashboardState
	fetching  bool
	now       func() time.Time
	dispatch  func(func())
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startOnce sync.Once
}

// NewMainController creates a controller with the given collaborators.
// Results of background work are applied through fyne.Do.
func NewMainController(
	catalog models.Catalog,
	schedule ScheduleSource,
	weather WeatherFetcher,
	greeter Greeter,
	headlines []models.Headline,
	settings Settings,
	log logger.Logger,
) *MainController {
	ctx, cancel := context.WithCancel(context.Background())

	return &MainController{
		catalog:  catalog,
		schedule: schedule,
		weather:  weather,
		greeter:  greeter,
		settings: settings,
		logger:   log,
		state: models.DashboardState{
			Mode:      models.ModeGreeting,
			Headlines: headlines,
		},
		now:      time.Now,
		dispatch: fyne.Do,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetMainView associates the view and wires its input handlers.
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	view.SetModeHandler(func(mode models.DisplayMode) {
		mc.SetMode(mode, mc.now())
	})
	view.SetWorkoutSelectHandler(mc.SelectWorkout)
}

// Start runs the first update immediately and then posts Tick onto the UI
// goroutine every second until Shutdown.
func (mc *MainController) Start() {
	mc.startOnce.Do(func() {
		mc.dispatch(func() { mc.Tick(mc.now()) })

		mc.wg.Add(1)
		go func() {
			defer mc.wg.Done()
			ticker := time.NewTicker(tickInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					mc.dispatch(func() { mc.Tick(mc.now()) })
				case <-mc.ctx.Done():
					return
				}
			}
		}()
	})
}

// Tick is the single per-frame update: it expires the current view, refreshes
// the greeting, reloads the schedule and weather when their timers are due,
// and re-renders.
func (mc *MainController) Tick(now time.Time) {
	mc.expireView(now)

	if models.Due(mc.state.LastGreetingUpdate, now, mc.settings.GreetingInterval) {
		mc.state.Greeting = mc.greeter.Greeting(now)
		mc.state.LastGreetingUpdate = now
	}

	if models.Due(mc.state.LastRefresh, now, mc.settings.RefreshInterval) {
		mc.reloadSchedule()
		mc.startWeatherFetch()
		mc.state.LastRefresh = now
	}

	mc.render(now)
}

func (mc *MainController) expireView(now time.Time) {
	if mc.state.Mode == models.ModeGreeting {
		mc.state.LastViewChange = time.Time{}
		return
	}

	if mc.state.LastViewChange.IsZero() {
		mc.state.LastViewChange = now
		return
	}

	if now.Sub(mc.state.LastViewChange) >= mc.settings.ViewTimeout {
		mc.logger.Debug("Controller", "view timed out", map[string]interface{}{
			"mode": mc.state.Mode.String(),
		})
		mc.state.Mode = models.ModeGreeting
		mc.state.LastViewChange = time.Time{}
	}
}

func (mc *MainController) reloadSchedule() {
	previous := mc.state.Today
	mc.state.Today = mc.schedule.Today()

	if !sameDay(previous, mc.state.Today) {
		mc.state.SelectedWorkout = mc.defaultSelection(mc.state.Today)
		mc.logger.Info("Controller", "schedule reloaded", map[string]interface{}{
			"has_entry": mc.state.Today != nil,
			"selected":  mc.state.SelectedWorkout,
		})
	}
}

func sameDay(a, b *models.DaySchedule) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// defaultSelection preselects the workout when the lifting plan names exactly
// one known workout.
func (mc *MainController) defaultSelection(today *models.DaySchedule) string {
	if today == nil || !mc.catalog.HasWorkout(today.Lifting) {
		return ""
	}
	return today.Lifting
}

func (mc *MainController) startWeatherFetch() {
	if mc.fetching || mc.weather == nil {
		return
	}
	mc.fetching = true

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()

		report, err := mc.weather.Fetch(mc.ctx)
		if mc.ctx.Err() != nil {
			return
		}

		mc.dispatch(func() {
			mc.fetching = false
			if err != nil {
				mc.logger.Error("Controller", err, map[string]interface{}{
					"operation": "weather fetch",
				})
				return
			}
			mc.state.Weather = report
			mc.render(mc.now())
		})
	}()
}

// SetMode switches the displayed panel and restarts the view timeout.
func (mc *MainController) SetMode(mode models.DisplayMode, now time.Time) {
	mc.state.Mode = mode
	if mode == models.ModeGreeting {
		mc.state.LastViewChange = time.Time{}
	} else {
		mc.state.LastViewChange = now
	}
	mc.render(now)
}

// SelectWorkout shows the named workout. Unknown names clear the selection.
func (mc *MainController) SelectWorkout(name string) {
	if mc.catalog.HasWorkout(name) {
		mc.state.SelectedWorkout = name
	} else {
		mc.state.SelectedWorkout = ""
	}
	mc.render(mc.now())
}

// State returns a copy of the current dashboard state.
func (mc *MainController) State() models.DashboardState {
	return mc.state
}

func (mc *MainController) render(now time.Time) {
	if mc.mainView == nil {
		return
	}
	mc.mainView.Render(mc.state, mc.catalog, now)
}

// Shutdown stops the ticker and abandons any in-flight fetch.
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.wg.Wait()
	mc.logger.Info("Controller", "controller stopped", nil)
}

// LiftingOptions splits a lifting plan such as "Upper A OR Upper B" into its
// alternatives. A plan without a choice yields nil.
func LiftingOptions(lifting string) []string {
	if !strings.Contains(lifting, " OR ") {
		return nil
	}

	parts := strings.Split(lifting, " OR ")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			options = append(options, p)
		}
	}
	return options
}
