package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SimpleWhiteboard/internal/surface"
)

// --- Custom widget for color swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the control strip: the palette swatches, the brush
// size slider and the clear button, all acting directly on the board.
func NewToolbar(board *Whiteboard) fyne.CanvasObject {
	// --- Color palette ---
	swatches := make([]fyne.CanvasObject, 0, len(surface.Palette))
	for _, c := range surface.Palette {
		swatches = append(swatches, newColorSwatch(c, board.SetColor))
	}
	colorBox := container.NewHBox(swatches...)

	// --- Brush size slider ---
	sizeLabel := widget.NewLabel(strconv.Itoa(surface.DefaultBrush))
	sizeSlider := widget.NewSlider(surface.MinBrush, surface.MaxBrush)
	sizeSlider.Step = 1
	sizeSlider.SetValue(float64(surface.DefaultBrush))
	sizeSlider.OnChanged = func(val float64) {
		board.SetBrushSize(int(val))
		sizeLabel.SetText(strconv.Itoa(board.BrushSize()))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), sizeSlider)

	// --- Clear button ---
	clearButton := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.Clear)

	return container.NewHBox(
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		sizeLabel,
		widget.NewSeparator(),
		clearButton,
		layout.NewSpacer(),
	)
}
