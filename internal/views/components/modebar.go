package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"training-dashboard/internal/models"
)

// ModeBar holds one button per selectable panel. The greeting panel has no
// button; it is what the dashboard falls back to.
type ModeBar struct {
	container *fyne.Container
	buttons   map[models.DisplayMode]*widget.Button
	onSelect  func(models.DisplayMode)
}

var selectableModes = []models.DisplayMode{models.ModeWorkout, models.ModeWeather, models.ModeNews}

func NewModeBar() *ModeBar {
	mb := &ModeBar{
		buttons: make(map[models.DisplayMode]*widget.Button, len(selectableModes)),
	}

	objects := make([]fyne.CanvasObject, 0, len(selectableModes))
	for _, mode := range selectableModes {
		btn := widget.NewButton(mode.String(), func() {
			if mb.onSelect != nil {
				mb.onSelect(mode)
			}
		})
		mb.buttons[mode] = btn
		objects = append(objects, btn)
	}
	mb.container = container.NewCenter(container.NewHBox(objects...))
	return mb
}

func (mb *ModeBar) SetSelectHandler(handler func(models.DisplayMode)) {
	mb.onSelect = handler
}

// SetActive highlights the button of the active mode.
func (mb *ModeBar) SetActive(active models.DisplayMode) {
	for mode, btn := range mb.buttons {
		importance := widget.MediumImportance
		if mode == active {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}
}

// ModeForRune maps the keys 1, 2 and 3 to the selectable modes.
func ModeForRune(r rune) (models.DisplayMode, bool) {
	switch r {
	case '1':
		return models.ModeWorkout, true
	case '2':
		return models.ModeWeather, true
	case '3':
		return models.ModeNews, true
	default:
		return models.ModeGreeting, false
	}
}

func (mb *ModeBar) GetContainer() *fyne.Container {
	return mb.container
}
