package stage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of an entity's hit-area
// simultaneously. Groups created through the Entity tween helpers are
// advanced by the entity's own update, so they stop with a paused scene and
// keep running under a modal overlay. If the entity is destroyed or its
// hit-area detached, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && (g.target.IsDestroyed() || !g.target.hasHit) {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Cancel stops the group where it is.
func (g *TweenGroup) Cancel() {
	g.Done = true
}

// TweenPosition animates the hit-area position to (toX, toY) over duration
// seconds. The entity must have a hit-area; otherwise the returned group is
// already done.
func (e *Entity) TweenPosition(toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e}
	if !e.hasHit {
		g.Done = true
		return g
	}
	h := &e.hitArea
	g.tweens[0] = gween.New(float32(h.Pos.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(h.Pos.Y), float32(toY), duration, fn)
	g.fields[0] = &h.Pos.X
	g.fields[1] = &h.Pos.Y
	e.tweens = append(e.tweens, g)
	return g
}

// TweenBounds animates the whole hit-area rectangle to `to` over duration
// seconds.
func (e *Entity) TweenBounds(to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: e}
	if !e.hasHit {
		g.Done = true
		return g
	}
	h := &e.hitArea
	g.tweens[0] = gween.New(float32(h.Pos.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(h.Pos.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(h.Size.X), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(h.Size.Y), float32(to.Height), duration, fn)
	g.fields[0] = &h.Pos.X
	g.fields[1] = &h.Pos.Y
	g.fields[2] = &h.Size.X
	g.fields[3] = &h.Size.Y
	e.tweens = append(e.tweens, g)
	return g
}

// advanceTweens steps every running group and drops finished ones.
func (e *Entity) advanceTweens(dt float32) {
	if len(e.tweens) == 0 {
		return
	}
	n := 0
	for _, g := range e.tweens {
		g.Update(dt)
		if !g.Done {
			e.tweens[n] = g
			n++
		}
	}
	for i := n; i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = e.tweens[:n]
}
