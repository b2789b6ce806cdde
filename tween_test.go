package stage

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionAdvancesWithUpdate(t *testing.T) {
	reg, _, _ := newTestRegistry() // 60 ticks per second
	e := reg.NewSceneEntity("drawer", "", 0)
	e.AttachHitArea(NewHitArea(0, 0, 10, 10))
	g := e.TweenPosition(100, 50, 1, ease.Linear)

	for i := 0; i < 30; i++ {
		reg.Update()
	}
	if x := e.HitArea().Pos.X; math.Abs(x-50) > 0.5 {
		t.Errorf("halfway X = %v, want ~50", x)
	}
	for i := 0; i < 40; i++ {
		reg.Update()
	}
	if !g.Done {
		t.Error("tween should be done after its duration")
	}
	if p := e.HitArea().Pos; p != (Vec2{100, 50}) {
		t.Errorf("final Pos = %v, want {100 50}", p)
	}
	if len(e.tweens) != 0 {
		t.Errorf("finished tweens should be dropped, have %d", len(e.tweens))
	}
}

func TestTweenFreezesWhilePaused(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("drawer", "lobby", 0)
	e.AttachHitArea(NewHitArea(0, 0, 10, 10))
	e.TweenPosition(100, 0, 1, ease.Linear)

	reg.Update()
	x := e.HitArea().Pos.X
	reg.PauseScene("lobby")
	for i := 0; i < 10; i++ {
		reg.Update()
	}
	if e.HitArea().Pos.X != x {
		t.Errorf("X moved while paused: %v -> %v", x, e.HitArea().Pos.X)
	}
}

func TestTweenRunsUnderOverlay(t *testing.T) {
	reg, _, _ := newTestRegistry()
	reg.SetOverlay(func() bool { return true })
	e := reg.NewSceneEntity("bg", "", 0) // below the modal threshold
	e.AttachHitArea(NewHitArea(0, 0, 10, 10))
	e.TweenBounds(Rect{10, 10, 20, 20}, 0.5, ease.Linear)

	for i := 0; i < 40; i++ {
		reg.Update()
	}
	if b := e.HitArea().Bounds(); b != (Rect{10, 10, 20, 20}) {
		t.Errorf("Bounds = %+v, want {10 10 20 20}", b)
	}
}

func TestTweenStopsOnDetachOrDestroy(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)

	if g := e.TweenPosition(1, 1, 1, ease.Linear); !g.Done {
		t.Error("tween without a hit-area should be done immediately")
	}

	e.AttachHitArea(NewHitArea(0, 0, 10, 10))
	g := e.TweenPosition(100, 100, 1, ease.Linear)
	e.DetachHitArea()
	g.Update(0.1)
	if !g.Done {
		t.Error("tween should stop when the hit-area is detached")
	}

	e.AttachHitArea(NewHitArea(0, 0, 10, 10))
	g = e.TweenPosition(100, 100, 1, ease.Linear)
	e.Destroy()
	g.Update(0.1)
	if !g.Done {
		t.Error("tween should stop when the entity is destroyed")
	}

	g2 := &TweenGroup{}
	g2.Cancel()
	if !g2.Done {
		t.Error("Cancel should mark the group done")
	}
}
