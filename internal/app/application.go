package app

import (
	"runtime"

	"training-dashboard/internal/config"
	"training-dashboard/internal/controllers"
	"training-dashboard/internal/logger"
	"training-dashboard/internal/services"
	"training-dashboard/internal/shutdown"
	"training-dashboard/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Training Dashboard"
	AppID      = "com.trainingdashboard.desktop"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
	lifecycle  *Lifecycle
	logger     logger.Logger
}

// NewApplication builds the services, controller and window from cfg.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)

	dashTheme, err := views.NewTheme(cfg.Files.Font)
	if err != nil {
		log.Warning("Application", "custom font unavailable, using default", map[string]interface{}{
			"path":  cfg.Files.Font,
			"error": err.Error(),
		})
	}
	fyneApp.Settings().SetTheme(dashTheme)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Display.Width, cfg.Display.Height))
	window.CenterOnScreen()
	window.SetFullScreen(cfg.Display.Fullscreen)
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"window_width":  cfg.Display.Width,
		"window_height": cfg.Display.Height,
		"workouts_file": cfg.Files.Workouts,
		"schedule_file": cfg.Files.Schedule,
	})

	workoutService := services.NewWorkoutService(cfg.Files.Workouts, cfg.Workouts.Groups, cfg.Workouts.Conditioning, log)
	scheduleService := services.NewScheduleService(cfg.Files.Schedule, log)
	greetingService := services.NewGreetingService(cfg.Greeting.Name)
	newsService := services.NewNewsService(cfg.News.Headlines)

	var weather controllers.WeatherFetcher
	if cfg.Weather.APIKey != "" {
		weather = services.NewWeatherService(services.WeatherOptions{
			BaseURL: cfg.Weather.BaseURL,
			City:    cfg.Weather.City,
			APIKey:  cfg.Weather.APIKey,
			Timeout: cfg.Weather.Timeout,
			Hours:   cfg.Weather.Hours,
		}, log)
	} else {
		log.Warning("Application", "no weather api key configured, weather panel disabled", nil)
	}

	controller := controllers.NewMainController(
		workoutService.Load(),
		scheduleService,
		weather,
		greetingService,
		newsService.Headlines(),
		controllers.Settings{
			ViewTimeout:      cfg.Display.ViewTimeout,
			GreetingInterval: cfg.Display.GreetingInterval,
			RefreshInterval:  cfg.Display.RefreshInterval,
		},
		log,
	)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		shutdown:   shutdownManager,
		lifecycle:  NewLifecycle(shutdownManager, fyneApp, log),
		logger:     log,
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
	})

	a.shutdown.Listen()
	a.lifecycle.Watch()
	a.fyneApp.Lifecycle().SetOnStarted(a.controller.Start)

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
