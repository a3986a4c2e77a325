package app

import (
	"training-dashboard/internal/logger"
	"training-dashboard/internal/shutdown"

	"fyne.io/fyne/v2"
)

// Lifecycle quits the Fyne app once the shutdown manager has stopped every
// component, whichever way shutdown was triggered.
type Lifecycle struct {
	shutdown *shutdown.Manager
	fyneApp  fyne.App
	logger   logger.Logger
}

func NewLifecycle(sm *shutdown.Manager, fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		shutdown: sm,
		fyneApp:  fyneApp,
		logger:   log,
	}
}

// Watch quits the app on the UI goroutine after shutdown completes.
func (l *Lifecycle) Watch() {
	go func() {
		<-l.shutdown.Done()
		l.logger.Info("Lifecycle", "quitting application", nil)
		fyne.Do(l.fyneApp.Quit)
	}()
}

// Shutdown starts the shutdown sequence without blocking the caller.
func (l *Lifecycle) Shutdown() {
	go l.shutdown.Shutdown()
}
