package stage

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Update runs the update pass for one frame.
//
// Unpaused entities are visited in descending ZBase order. Without an active
// overlay, every entity gets a full update until one consumes the click;
// entities after the consumer only get hover updates for the rest of the
// frame. With an overlay active, entities at or above the modal threshold get
// full updates and the rest keep animating without input.
//
// Entities created during the pass are first visited next frame; entities
// destroyed during the pass are not visited again.
func (r *Registry) Update() {
	if r.inPass {
		r.log.Error("update pass re-entered from a callback, ignoring")
		return
	}
	r.inPass = true
	defer func() { r.inPass = false }()
	r.frame++

	var stats passStats
	var t0 time.Time
	if r.cfg.Debug {
		t0 = time.Now()
	}

	in := r.pollPointer()
	modal := r.overlay != nil && r.overlay()
	dt := float32(1.0 / float64(r.cfg.TickRate))

	order := r.snapshot(true)
	consumed := false
	for _, e := range order {
		if e.destroyed {
			continue
		}
		level := UpdateFull
		switch {
		case modal && e.ZBase < r.cfg.ModalThreshold:
			level = UpdateNoInput
		case consumed:
			level = UpdateHoverOnly
		}
		stats.visited[level]++
		if e.update(level, in, dt) == Consumed {
			consumed = true
			stats.consumer = e.id
		}
	}
	r.release(order)

	if r.cfg.Debug {
		stats.elapsed = time.Since(t0)
		stats.modal = modal
		r.debugLog("update", stats)
	}
}

// Draw runs the draw pass for one frame: unpaused, on-screen entities are
// painted in ascending ZBase order, so the most foreground entity is painted
// last. Draw does not touch hover or visibility state.
func (r *Registry) Draw(screen *ebiten.Image) {
	if r.inPass {
		r.log.Error("draw pass re-entered from a callback, ignoring")
		return
	}
	r.inPass = true
	defer func() { r.inPass = false }()

	var stats passStats
	var t0 time.Time
	if r.cfg.Debug {
		t0 = time.Now()
	}

	order := r.snapshot(false)
	for _, e := range order {
		e.draw(screen)
	}
	stats.drawn = len(order)
	r.release(order)

	if r.cfg.Debug {
		stats.elapsed = time.Since(t0)
		r.debugLog("draw", stats)
	}
}

// pollPointer samples the pointer source once for the frame.
func (r *Registry) pollPointer() PointerState {
	if r.pointer == nil {
		return PointerState{}
	}
	return r.pointer.Poll()
}

// --- Ordering ---

// snapshot copies the unpaused entities into the reusable order buffer and
// sorts them by ZBase: descending for the update pass, ascending for draw.
// The sort is a stable insertion sort, so equal ZBase keeps creation order.
func (r *Registry) snapshot(descending bool) []*Entity {
	buf := r.order[:0]
	for _, e := range r.entities {
		if !e.IsPaused() {
			buf = append(buf, e)
		}
	}
	for i := 1; i < len(buf); i++ {
		key := buf[i]
		j := i - 1
		for j >= 0 && zBefore(key, buf[j], descending) {
			buf[j+1] = buf[j]
			j--
		}
		buf[j+1] = key
	}
	r.order = buf
	return buf
}

// zBefore reports whether a must be visited strictly before b.
func zBefore(a, b *Entity, descending bool) bool {
	if descending {
		return a.ZBase > b.ZBase
	}
	return a.ZBase < b.ZBase
}

// release clears the snapshot so it does not keep destroyed entities alive.
func (r *Registry) release(order []*Entity) {
	for i := range order {
		order[i] = nil
	}
}

// --- Callback isolation ---

// guard runs fn and recovers a panic, logging it against e so that one faulty
// entity cannot abort the pass for everyone else.
func (r *Registry) guard(e *Entity, callback string, fn func()) {
	if r == nil {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			r.logPanic(e, callback, v)
		}
	}()
	fn()
}

// guardClick runs the hit-area OnClick. A panicking OnClick does not consume.
func (r *Registry) guardClick(e *Entity) (res ClickResult) {
	defer func() {
		if v := recover(); v != nil {
			r.logPanic(e, "OnClick", v)
			res = NotConsumed
		}
	}()
	return e.hitArea.OnClick()
}

func (r *Registry) logPanic(e *Entity, callback string, v any) {
	r.log.Error("entity callback panicked",
		zap.Uint64("entity", e.id),
		zap.String("name", e.Name),
		zap.String("scene", e.scene),
		zap.String("callback", callback),
		zap.Error(fmt.Errorf("panic: %v", v)),
	)
}
