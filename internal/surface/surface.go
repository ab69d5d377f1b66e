package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Surface is the fixed-size pixel buffer strokes are burned into. There is
// no retained model behind it: segments are rasterized immediately and
// clearing is irreversible.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// New creates a white surface of the given pixel dimensions. Non-positive
// dimensions fall back to the defaults.
func New(width, height int) *Surface {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	return &Surface{dc: dc, width: width, height: height}
}

func (s *Surface) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

func (s *Surface) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// DrawSegment strokes a single rounded-cap, rounded-join line between two
// points in surface coordinates. The color and width passed in are the ones
// burned into the buffer; later tool changes never touch drawn pixels.
// No-op when the surface or its context is unavailable.
func (s *Surface) DrawSegment(x1, y1, x2, y2 float64, col color.Color, width float64) {
	if s == nil || s.dc == nil {
		return
	}
	s.dc.SetColor(col)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// Clear wipes the whole buffer back to white.
func (s *Surface) Clear() {
	if s == nil || s.dc == nil {
		return
	}
	s.dc.ClearWithColor(gg.White)
}

// Image returns a snapshot of the current pixels.
func (s *Surface) Image() image.Image {
	if s == nil || s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// At reports the color of a single pixel, which is handy for tests and
// otherwise unused by the UI.
func (s *Surface) At(x, y int) color.Color {
	if s == nil || s.dc == nil {
		return color.Transparent
	}
	img := s.dc.Image()
	if img == nil {
		return color.Transparent
	}
	return img.At(x, y)
}
