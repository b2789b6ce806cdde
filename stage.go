package stage

// Vec2 is a 2D vector used for pointer positions, hit-area offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ClickResult is the answer a hit-area's OnClick gives for the current frame's
// press. Only Consumed stops lower entities from receiving the click.
type ClickResult uint8

const (
	NotConsumed ClickResult = iota // the click passes through to entities behind
	Consumed                       // the entity claims the click for this frame
)

// String returns "consumed" or "not-consumed".
func (c ClickResult) String() string {
	if c == Consumed {
		return "consumed"
	}
	return "not-consumed"
}

// UpdateLevel selects how much input an entity sees during the update pass.
type UpdateLevel uint8

const (
	UpdateNoInput   UpdateLevel = iota // visibility bookkeeping and OnUpdate only
	UpdateHoverOnly                    // plus hover enter/leave detection
	UpdateFull                         // plus click testing
)

// String returns a short lowercase name for the level.
func (l UpdateLevel) String() string {
	switch l {
	case UpdateNoInput:
		return "no-input"
	case UpdateHoverOnly:
		return "hover-only"
	case UpdateFull:
		return "full"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event forwarded to an EventSink.
type EventType uint8

const (
	EventClick      EventType = iota // an entity consumed the frame's click
	EventHoverStart                  // the pointer entered an entity's hit-area
	EventHoverEnd                    // the pointer left an entity's hit-area
	EventShow                        // an entity's hit-area moved into the viewport
	EventHide                        // an entity's hit-area left the viewport
)
