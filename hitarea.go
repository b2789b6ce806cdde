package stage

// HitArea is an axis-aligned rectangle plus optional pointer callbacks.
// It is owned by exactly one Entity; see Entity.AttachHitArea.
type HitArea struct {
	Pos  Vec2
	Size Vec2

	// OnClick runs when the primary button is pressed while the pointer is
	// over the rectangle. Return Consumed to claim the click.
	OnClick func() ClickResult

	// OnHoverStart and OnHoverEnd fire once per hover transition.
	OnHoverStart func()
	OnHoverEnd   func()
}

// NewHitArea returns a hit-area covering the rectangle (x, y, w, h).
func NewHitArea(x, y, w, h float64) HitArea {
	return HitArea{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Bounds returns the rectangle as a Rect.
func (h *HitArea) Bounds() Rect {
	return Rect{X: h.Pos.X, Y: h.Pos.Y, Width: h.Size.X, Height: h.Size.Y}
}

// Contains reports whether p lies inside the rectangle. All four edges are
// inclusive.
func (h *HitArea) Contains(p Vec2) bool {
	return h.Bounds().Contains(p.X, p.Y)
}
