package stage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState is the pointer as seen by one update pass.
type PointerState struct {
	// Pos is the pointer position in logical (viewport) coordinates.
	Pos Vec2
	// InSurface is false when the pointer is outside the active surface; Pos
	// is then meaningless and nothing is hovered.
	InSurface bool
	// JustPressed reports a primary-button press edge this frame.
	JustPressed bool
}

// PointerSource supplies pointer state to the update pass. Poll is called
// exactly once per frame, at the start of Registry.Update.
type PointerSource interface {
	Poll() PointerState
}

// --- Ebitengine pointer ---

// EbitenPointer reads the mouse and the first active touch from Ebitengine
// and maps them through a Viewport. Touch takes precedence over the mouse
// while a finger is down.
type EbitenPointer struct {
	viewport *Viewport
	touchIDs []ebiten.TouchID
	justIDs  []ebiten.TouchID
}

// NewEbitenPointer returns a pointer source mapping through v.
func NewEbitenPointer(v *Viewport) *EbitenPointer {
	return &EbitenPointer{viewport: v}
}

// Poll implements PointerSource.
func (p *EbitenPointer) Poll() PointerState {
	var st PointerState

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.justIDs = inpututil.AppendJustPressedTouchIDs(p.justIDs[:0])

	var sx, sy int
	if len(p.touchIDs) > 0 {
		sx, sy = ebiten.TouchPosition(p.touchIDs[0])
	} else {
		sx, sy = ebiten.CursorPosition()
	}
	st.Pos, st.InSurface = p.viewport.ScreenToLogical(float64(sx), float64(sy))
	st.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(p.justIDs) > 0
	return st
}
