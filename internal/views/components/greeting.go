package components

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// GreetingPanel is the idle screen: a large clock and the greeting line.
type GreetingPanel struct {
	container *fyne.Container
	clock     *canvas.Text
	greeting  *canvas.Text
}

func NewGreetingPanel() *GreetingPanel {
	gp := &GreetingPanel{
		clock:    newText("--:--:--", 100, true),
		greeting: newText("", 40, true),
	}
	gp.container = container.NewVBox(
		layout.NewSpacer(),
		gp.clock,
		gp.greeting,
		layout.NewSpacer(),
	)
	return gp
}

func (gp *GreetingPanel) Update(now time.Time, greeting string) {
	clock := now.Format("15:04:05")
	if gp.clock.Text != clock {
		gp.clock.Text = clock
		gp.clock.Refresh()
	}
	if gp.greeting.Text != greeting {
		gp.greeting.Text = greeting
		gp.greeting.Refresh()
	}
}

func (gp *GreetingPanel) GetContainer() *fyne.Container {
	return gp.container
}
