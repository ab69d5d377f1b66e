package surface

import "image/color"

// Palette is the fixed set of stroke colors offered by the toolbar.
var Palette = []color.NRGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // black
	{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, // gray
	{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}, // silver
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // red
	{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}, // orange
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // yellow
	{R: 0x00, G: 0x80, B: 0x00, A: 0xff}, // green
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // lime
	{R: 0x00, G: 0x80, B: 0x80, A: 0xff}, // teal
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // cyan
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // blue
	{R: 0x00, G: 0x00, B: 0x80, A: 0xff}, // navy
	{R: 0x80, G: 0x00, B: 0x80, A: 0xff}, // purple
	{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}, // brown
}

// DefaultColor is the stroke color before any swatch is picked.
var DefaultColor = Palette[0]

const (
	MinBrush     = 1
	MaxBrush     = 20
	DefaultBrush = 3
)

// ClampBrush forces a brush width into the [MinBrush, MaxBrush] range.
func ClampBrush(w int) int {
	if w < MinBrush {
		return MinBrush
	}
	if w > MaxBrush {
		return MaxBrush
	}
	return w
}
