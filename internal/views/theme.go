package views

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// dashboardTheme enlarges text for viewing from across a room and optionally
// swaps in a custom font for every text style.
type dashboardTheme struct {
	base fyne.Theme
	font fyne.Resource
}

// NewTheme builds the dashboard theme. fontPath may be empty; a font that
// cannot be read is reported and the default font is kept.
func NewTheme(fontPath string) (fyne.Theme, error) {
	t := &dashboardTheme{base: theme.DefaultTheme()}
	if fontPath == "" {
		return t, nil
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return t, fmt.Errorf("loading font: %w", err)
	}
	t.font = fyne.NewStaticResource(filepath.Base(fontPath), data)
	return t, nil
}

func (t *dashboardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *dashboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil {
		return t.font
	}
	return t.base.Font(style)
}

func (t *dashboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *dashboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 24
	case theme.SizeNameHeadingText:
		return 36
	default:
		return t.base.Size(name)
	}
}
