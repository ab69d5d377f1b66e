package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"SimpleWhiteboard/internal/notify"
	"SimpleWhiteboard/internal/surface"
)

// Whiteboard is the drawing widget. It owns the current tool state and a
// two-state pointer session (idle / drawing); strokes go straight into the
// pixel surface, so there is nothing to replay or undo.
type Whiteboard struct {
	widget.BaseWidget

	surface  *surface.Surface
	notifier *notify.Notifier

	brushColor color.Color
	brushSize  int

	// Pointer session: active flag plus the anchor of the next segment,
	// in surface coordinates.
	drawing      bool
	lastX, lastY float64
}

var _ fyne.Widget = (*Whiteboard)(nil)
var _ fyne.Draggable = (*Whiteboard)(nil)
var _ desktop.Mouseable = (*Whiteboard)(nil)
var _ desktop.Hoverable = (*Whiteboard)(nil)
var _ mobile.Touchable = (*Whiteboard)(nil)

// New creates a board drawing on s. The notifier may be nil when no host
// integration cares about activity.
func New(s *surface.Surface, n *notify.Notifier) *Whiteboard {
	b := &Whiteboard{
		surface:    s,
		notifier:   n,
		brushColor: surface.DefaultColor,
		brushSize:  surface.DefaultBrush,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetColor selects the stroke color for segments drawn from now on.
func (b *Whiteboard) SetColor(c color.Color) {
	if c == nil {
		return
	}
	b.brushColor = c
}

// SetBrushSize selects the stroke width for segments drawn from now on,
// clamped to the allowed range.
func (b *Whiteboard) SetBrushSize(w int) {
	b.brushSize = surface.ClampBrush(w)
}

func (b *Whiteboard) BrushColor() color.Color { return b.brushColor }
func (b *Whiteboard) BrushSize() int          { return b.brushSize }

// Clear wipes the surface. Tool selections are untouched.
func (b *Whiteboard) Clear() {
	b.surface.Clear()
	b.Refresh()
}

// resolve maps a widget-local event position into surface coordinates,
// scaling each axis by buffer size over rendered size. The widget corners
// therefore map exactly to (0,0) and (width,height) at any display scale.
func (b *Whiteboard) resolve(pos fyne.Position) (float64, float64) {
	size := b.Size()
	sx, sy := 1.0, 1.0
	if size.Width > 0 {
		sx = float64(b.surface.Width()) / float64(size.Width)
	}
	if size.Height > 0 {
		sy = float64(b.surface.Height()) / float64(size.Height)
	}
	return float64(pos.X) * sx, float64(pos.Y) * sy
}

func (b *Whiteboard) beginStroke(pos fyne.Position) {
	if b.surface == nil {
		return
	}
	wasIdle := !b.drawing
	b.lastX, b.lastY = b.resolve(pos)
	b.drawing = true
	if wasIdle && b.notifier != nil {
		// Idle -> Drawing is the activity signal hosts listen for.
		b.notifier.Completed()
	}
}

func (b *Whiteboard) extendStroke(pos fyne.Position) {
	if !b.drawing || b.surface == nil {
		return
	}
	x, y := b.resolve(pos)
	b.surface.DrawSegment(b.lastX, b.lastY, x, y, b.brushColor, float64(b.brushSize))
	b.lastX, b.lastY = x, y
	b.Refresh()
}

// endStroke is idempotent: ending an idle session changes nothing.
func (b *Whiteboard) endStroke() {
	b.drawing = false
}

func (b *Whiteboard) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.beginStroke(e.Position)
	}
}

func (b *Whiteboard) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.endStroke()
	}
}

func (b *Whiteboard) Dragged(e *fyne.DragEvent) {
	b.extendStroke(e.Position)
}

func (b *Whiteboard) DragEnd() {
	b.endStroke()
}

func (b *Whiteboard) MouseIn(*desktop.MouseEvent)    {}
func (b *Whiteboard) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends any active session: strokes never continue across the
// pointer leaving the board.
func (b *Whiteboard) MouseOut() {
	b.endStroke()
}

func (b *Whiteboard) TouchDown(e *mobile.TouchEvent) {
	b.beginStroke(e.Position)
}

func (b *Whiteboard) TouchUp(*mobile.TouchEvent) {
	b.endStroke()
}

func (b *Whiteboard) TouchCancel(*mobile.TouchEvent) {
	b.endStroke()
}

func (b *Whiteboard) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	if b.surface != nil {
		r.img = canvas.NewImageFromImage(b.surface.Image())
		r.img.FillMode = canvas.ImageFillStretch
	}
	return r
}

type boardRenderer struct {
	board      *Whiteboard
	background *canvas.Rectangle
	img        *canvas.Image
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	if r.img == nil {
		return []fyne.CanvasObject{r.background}
	}
	return []fyne.CanvasObject{r.background, r.img}
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if r.img != nil {
		r.img.Resize(size)
	}
}

func (r *boardRenderer) Refresh() {
	if r.img != nil && r.board.surface != nil {
		r.img.Image = r.board.surface.Image()
		r.img.Refresh()
	}
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}
