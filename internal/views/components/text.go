package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// Text sizes used across the dashboard panels.
const (
	HeadingSize = 36
	ItemSize    = 28
	BodySize    = 24
)

var (
	setsColor    = color.NRGBA{R: 0x1e, G: 0x64, B: 0xff, A: 0xff}
	repsColor    = color.NRGBA{R: 0xe0, G: 0x2b, B: 0x2b, A: 0xff}
	secondsColor = color.NRGBA{R: 0x2b, G: 0xb0, B: 0x3a, A: 0xff}
)

// SegmentKind selects the colour of a text segment.
type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentName
	SegmentSets
	SegmentReps
	SegmentSeconds
)

// Segment is one differently styled run of a display line.
type Segment struct {
	Text string
	Kind SegmentKind
}

func newText(text string, size float32, bold bool) *canvas.Text {
	t := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}
	t.Alignment = fyne.TextAlignCenter
	return t
}

func newHeading(text string) *canvas.Text {
	return newText(text, HeadingSize, true)
}

func segmentText(s Segment, size float32) *canvas.Text {
	t := newText(s.Text, size, s.Kind != SegmentPlain)
	switch s.Kind {
	case SegmentSets:
		t.Color = setsColor
	case SegmentReps:
		t.Color = repsColor
	case SegmentSeconds:
		t.Color = secondsColor
	}
	return t
}
