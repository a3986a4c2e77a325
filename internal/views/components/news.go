package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"training-dashboard/internal/models"
)

type NewsPanel struct {
	container *fyne.Container
	list      *fyne.Container
	last      string
	rendered  bool
}

func NewNewsPanel() *NewsPanel {
	np := &NewsPanel{
		list: container.NewVBox(),
	}
	np.container = container.NewBorder(
		newHeading("News Headlines"), nil, nil, nil,
		container.NewVScroll(np.list),
	)
	return np
}

// Update redraws the list when the headlines differ from those shown.
func (np *NewsPanel) Update(headlines []models.Headline) {
	key := headlinesKey(headlines)
	if np.rendered && key == np.last {
		return
	}
	np.rendered = true
	np.last = key

	objects := make([]fyne.CanvasObject, 0, len(headlines)*2)
	for _, h := range headlines {
		title := widget.NewLabel("• " + h.Title)
		title.TextStyle = fyne.TextStyle{Bold: true}
		title.Wrapping = fyne.TextWrapWord
		desc := widget.NewLabel("  " + h.Description)
		desc.Wrapping = fyne.TextWrapWord
		objects = append(objects, title, desc)
	}
	np.list.Objects = objects
	np.list.Refresh()
}

func (np *NewsPanel) GetContainer() *fyne.Container {
	return np.container
}

func headlinesKey(headlines []models.Headline) string {
	return fmt.Sprintf("%q", headlines)
}
