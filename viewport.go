package stage

import "math"

// Viewport describes the active logical surface: the rectangle entities are
// tested against for on-screen visibility, and the mapping from screen pixels
// into that surface for pointer input.
//
// Screen coordinates map to logical coordinates through a uniform scale and a
// letterbox offset, as computed by Layout.
type Viewport struct {
	// Width and Height are the logical surface size.
	Width, Height float64

	scale   float64
	offsetX float64
	offsetY float64
}

// NewViewport returns a viewport of the given logical size with an identity
// screen mapping.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height, scale: 1}
}

// Bounds returns the logical surface as a Rect anchored at the origin.
func (v *Viewport) Bounds() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}

// Scale returns the screen pixels per logical unit.
func (v *Viewport) Scale() float64 {
	return v.scale
}

// Offset returns the letterbox offset in screen pixels.
func (v *Viewport) Offset() (x, y float64) {
	return v.offsetX, v.offsetY
}

// Layout fits the logical surface into a screen of outsideW x outsideH pixels,
// preserving aspect ratio and centering it with letterbox bars.
func (v *Viewport) Layout(outsideW, outsideH float64) {
	if v.Width <= 0 || v.Height <= 0 || outsideW <= 0 || outsideH <= 0 {
		v.scale, v.offsetX, v.offsetY = 1, 0, 0
		return
	}
	v.scale = math.Min(outsideW/v.Width, outsideH/v.Height)
	v.offsetX = (outsideW - v.Width*v.scale) / 2
	v.offsetY = (outsideH - v.Height*v.scale) / 2
}

// ScreenToLogical converts a screen position into logical coordinates. The
// second result is false when the position falls outside the surface (for
// example on a letterbox bar).
func (v *Viewport) ScreenToLogical(sx, sy float64) (Vec2, bool) {
	s := v.scale
	if s == 0 {
		s = 1
	}
	p := Vec2{X: (sx - v.offsetX) / s, Y: (sy - v.offsetY) / s}
	return p, v.Bounds().Contains(p.X, p.Y)
}

// LogicalToScreen converts a logical position into screen coordinates.
func (v *Viewport) LogicalToScreen(p Vec2) (float64, float64) {
	s := v.scale
	if s == 0 {
		s = 1
	}
	return p.X*s + v.offsetX, p.Y*s + v.offsetY
}
