package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"training-dashboard/internal/models"
	"training-dashboard/internal/services"
)

// WeatherPanel shows current conditions and the hourly forecast strip.
type WeatherPanel struct {
	container *fyne.Container
	body      *fyne.Container
	shown     *models.WeatherReport
	rendered  bool
}

func NewWeatherPanel() *WeatherPanel {
	wp := &WeatherPanel{
		body: container.NewVBox(),
	}
	wp.container = container.NewStack(wp.body)
	return wp
}

// Update rebuilds the panel when a different report arrives.
func (wp *WeatherPanel) Update(report *models.WeatherReport) {
	if wp.rendered && report == wp.shown {
		return
	}
	wp.rendered = true
	wp.shown = report

	if report == nil {
		wp.body.Objects = []fyne.CanvasObject{
			newText("Weather data not available.", ItemSize, false),
		}
		wp.body.Refresh()
		return
	}

	hours := make([]fyne.CanvasObject, 0, len(report.Hourly)*2)
	for i, h := range report.Hourly {
		if i > 0 {
			hours = append(hours, layout.NewSpacer())
		}
		hours = append(hours, container.NewVBox(
			newText(h.Time, BodySize, true),
			newText(h.Temperature, BodySize, false),
			newText(h.Description, BodySize, false),
			newText(services.IconGlyph(h.Icon), ItemSize, false),
		))
	}

	objects := []fyne.CanvasObject{
		newHeading("Weather"),
		newLabel("Temperature: " + report.Temperature),
		newLabel("Conditions: " + report.Conditions),
		newText("Hourly Forecast:", BodySize, true),
		container.NewHScroll(container.NewHBox(hours...)),
	}
	if !report.FetchedAt.IsZero() {
		objects = append(objects, newText("Updated "+report.FetchedAt.Format("15:04"), BodySize, false))
	}
	wp.body.Objects = objects
	wp.body.Refresh()
}

func (wp *WeatherPanel) GetContainer() *fyne.Container {
	return wp.container
}
