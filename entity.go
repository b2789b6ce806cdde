package stage

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- ID counter ---

// entityIDCounter is a plain counter (no atomic — stage is single-threaded).
// IDs are never reused while the process runs, across all registries.
var entityIDCounter uint64

func nextEntityID() uint64 {
	entityIDCounter++
	return entityIDCounter
}

// --- Entity ---

// Entity is the addressable unit of the runtime: anything that wants to be
// updated, drawn, hovered or clicked once per frame. Entities are created by a
// Registry and stay registered until destroyed.
//
// All callbacks are optional. A nil callback is simply skipped.
type Entity struct {
	id    uint64
	scene string
	reg   *Registry

	// Name is a free-form label used in diagnostics.
	Name string

	// ZBase orders the entity against all others. Higher values are more
	// foreground: they see input first and are painted last. ZBase may be
	// changed at any time; it is read when each pass sorts.
	ZBase float64

	// UserData is an arbitrary payload for the owner of the entity.
	UserData any

	hitArea HitArea
	hasHit  bool

	OnUpdate func()
	OnDraw   func(screen *ebiten.Image)

	// OnOffscreenUpdate runs every processed frame whether or not the entity
	// is on-screen.
	OnOffscreenUpdate func()

	OnShow func()
	OnHide func()

	wasHovering bool
	wasVisible  bool

	tweens    []*TweenGroup
	destroyed bool
}

// ID returns the process-unique identifier assigned at construction.
func (e *Entity) ID() uint64 {
	return e.id
}

// Scene returns the owning scene, or "" for a global entity.
func (e *Entity) Scene() string {
	return e.scene
}

// IsHovering reports the hover state recorded by the last processed update.
func (e *Entity) IsHovering() bool {
	return e.wasHovering
}

// IsVisible reports the on-screen state recorded by the last processed update.
func (e *Entity) IsVisible() bool {
	return e.wasVisible
}

// IsDestroyed reports whether the entity has been removed from its registry.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// Destroy removes the entity from its registry. Safe to call from any
// callback, including the entity's own; the current pass skips it from
// this point on. No-op if already destroyed.
func (e *Entity) Destroy() {
	if e.destroyed || e.reg == nil {
		return
	}
	e.reg.Destroy(e)
}

// --- Hit-area ---

// AttachHitArea replaces any existing hit-area. Calling it again with the same
// value has no further effect. Hover state is kept so that swapping a
// rectangle under a resting pointer does not produce a spurious hover edge.
func (e *Entity) AttachHitArea(h HitArea) {
	e.hitArea = h
	e.hasHit = true
}

// DetachHitArea removes the hit-area. If the entity was hovered, OnHoverEnd is
// not fired; the hover flag is simply cleared.
func (e *Entity) DetachHitArea() {
	e.hitArea = HitArea{}
	e.hasHit = false
	e.wasHovering = false
}

// HitArea returns the attached hit-area, or nil if none. The returned pointer
// stays valid until the next AttachHitArea or DetachHitArea call.
func (e *Entity) HitArea() *HitArea {
	if !e.hasHit {
		return nil
	}
	return &e.hitArea
}

// IsPointInRect reports whether p lies inside the hit-area, edges inclusive.
// Returns false if the entity has no hit-area.
func (e *Entity) IsPointInRect(p Vec2) bool {
	if !e.hasHit {
		return false
	}
	return e.hitArea.Contains(p)
}

// IsOnScreen reports whether any part of the hit-area overlaps the active
// viewport. Entities without a hit-area are always on-screen.
func (e *Entity) IsOnScreen() bool {
	if !e.hasHit || e.reg == nil {
		return true
	}
	return e.hitArea.Bounds().Intersects(e.reg.viewport.Bounds())
}

// IsPaused reports whether the entity's scene is in its registry's paused set.
// Global entities are never paused.
func (e *Entity) IsPaused() bool {
	if e.scene == "" || e.reg == nil {
		return false
	}
	_, ok := e.reg.paused[e.scene]
	return ok
}

// --- Per-frame processing ---

// update runs one frame of the entity at the given level and reports whether
// the entity consumed the click.
func (e *Entity) update(level UpdateLevel, in PointerState, dt float32) ClickResult {
	if e.destroyed || e.IsPaused() {
		return NotConsumed
	}
	r := e.reg

	e.updateVisibility()
	if e.destroyed {
		return NotConsumed
	}
	if e.OnOffscreenUpdate != nil {
		r.guard(e, "OnOffscreenUpdate", e.OnOffscreenUpdate)
	}
	e.advanceTweens(dt)
	if e.OnUpdate != nil {
		r.guard(e, "OnUpdate", e.OnUpdate)
	}
	if level == UpdateNoInput || e.destroyed {
		return NotConsumed
	}

	hovering := in.InSurface && e.IsPointInRect(in.Pos)
	e.updateHover(hovering, in.Pos)
	if level != UpdateFull || e.destroyed {
		return NotConsumed
	}

	if !hovering || !in.JustPressed || e.hitArea.OnClick == nil {
		return NotConsumed
	}
	res := r.guardClick(e)
	if res == Consumed {
		r.emit(EventClick, e, in.Pos)
	}
	return res
}

// updateVisibility fires OnShow/OnHide on on-screen transitions only.
func (e *Entity) updateVisibility() {
	visible := e.IsOnScreen()
	if visible == e.wasVisible {
		return
	}
	e.wasVisible = visible
	if visible {
		if e.OnShow != nil {
			e.reg.guard(e, "OnShow", e.OnShow)
		}
		e.reg.emit(EventShow, e, Vec2{})
		return
	}
	if e.OnHide != nil {
		e.reg.guard(e, "OnHide", e.OnHide)
	}
	e.reg.emit(EventHide, e, Vec2{})
}

// updateHover fires OnHoverStart/OnHoverEnd on hover transitions only.
func (e *Entity) updateHover(hovering bool, at Vec2) {
	if hovering == e.wasHovering {
		return
	}
	e.wasHovering = hovering
	if hovering {
		if e.hitArea.OnHoverStart != nil {
			e.reg.guard(e, "OnHoverStart", e.hitArea.OnHoverStart)
		}
		e.reg.emit(EventHoverStart, e, at)
		return
	}
	if e.hitArea.OnHoverEnd != nil {
		e.reg.guard(e, "OnHoverEnd", e.hitArea.OnHoverEnd)
	}
	e.reg.emit(EventHoverEnd, e, at)
}

// draw paints the entity. Paused and off-screen entities are skipped.
func (e *Entity) draw(screen *ebiten.Image) {
	if e.destroyed || e.OnDraw == nil || e.IsPaused() || !e.IsOnScreen() {
		return
	}
	e.reg.guard(e, "OnDraw", func() { e.OnDraw(screen) })
}

// release drops callbacks and state once the entity leaves its registry.
func (e *Entity) release() {
	e.destroyed = true
	e.reg = nil
	e.tweens = nil
	e.UserData = nil
	e.hitArea = HitArea{}
	e.hasHit = false
	e.OnUpdate = nil
	e.OnDraw = nil
	e.OnOffscreenUpdate = nil
	e.OnShow = nil
	e.OnHide = nil
}
