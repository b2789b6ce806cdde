package stage

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIDsAreUniqueAndIncreasing(t *testing.T) {
	reg, _, _ := newTestRegistry()
	a := reg.NewSceneEntity("a", "", 0)
	b := reg.NewSceneEntity("b", "", 0)
	other := NewRegistry(DefaultConfig())
	c := other.NewSceneEntity("c", "", 0)

	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID(), "IDs are unique across registries")

	a.Destroy()
	d := reg.NewSceneEntity("d", "", 0)
	assert.Greater(t, d.ID(), c.ID(), "destroyed IDs are not reused")
}

func TestEntityIsPointInRect(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)

	assert.False(t, e.IsPointInRect(Vec2{0, 0}), "no hit-area never contains")

	e.AttachHitArea(NewHitArea(10, 10, 20, 20))
	assert.True(t, e.IsPointInRect(Vec2{10, 10}))
	assert.True(t, e.IsPointInRect(Vec2{30, 30}))
	assert.False(t, e.IsPointInRect(Vec2{31, 30}))
}

func TestEntityAttachHitAreaReplaces(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)

	e.AttachHitArea(NewHitArea(0, 0, 10, 10))
	e.AttachHitArea(NewHitArea(100, 100, 10, 10))
	e.AttachHitArea(NewHitArea(100, 100, 10, 10))

	require.NotNil(t, e.HitArea())
	assert.Equal(t, Rect{100, 100, 10, 10}, e.HitArea().Bounds())
	assert.False(t, e.IsPointInRect(Vec2{5, 5}))

	e.DetachHitArea()
	assert.Nil(t, e.HitArea())
}

func TestEntityIsOnScreen(t *testing.T) {
	reg, _, _ := newTestRegistry() // 640x480

	tests := []struct {
		name string
		area *HitArea
		want bool
	}{
		{"no hit-area", nil, true},
		{"inside", &HitArea{Pos: Vec2{10, 10}, Size: Vec2{10, 10}}, true},
		{"partially left", &HitArea{Pos: Vec2{-5, 10}, Size: Vec2{10, 10}}, true},
		{"partially below", &HitArea{Pos: Vec2{10, 475}, Size: Vec2{10, 10}}, true},
		{"fully left", &HitArea{Pos: Vec2{-20, 10}, Size: Vec2{10, 10}}, false},
		{"fully right", &HitArea{Pos: Vec2{650, 10}, Size: Vec2{10, 10}}, false},
		{"fully above", &HitArea{Pos: Vec2{10, -20}, Size: Vec2{10, 10}}, false},
		{"fully below", &HitArea{Pos: Vec2{10, 500}, Size: Vec2{10, 10}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := reg.NewSceneEntity(tt.name, "", 0)
			if tt.area != nil {
				e.AttachHitArea(*tt.area)
			}
			assert.Equal(t, tt.want, e.IsOnScreen())
		})
	}
}

func TestEntityIsPaused(t *testing.T) {
	reg, _, _ := newTestRegistry()
	global := reg.NewSceneEntity("g", "", 0)
	lobby := reg.NewSceneEntity("l", "lobby", 0)

	reg.PauseScene("lobby")
	assert.True(t, lobby.IsPaused())
	assert.False(t, global.IsPaused())

	reg.ResumeScene("lobby")
	assert.False(t, lobby.IsPaused())
}

func TestEntityUpdateLevels(t *testing.T) {
	tests := []struct {
		level       UpdateLevel
		wantHover   bool
		wantClicked bool
	}{
		{UpdateNoInput, false, false},
		{UpdateHoverOnly, true, false},
		{UpdateFull, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			reg, _, _ := newTestRegistry()
			var calls []string
			e := clickable(reg, "e", "", 0, 0, 0, 50, 50, Consumed, &calls)
			e.OnUpdate = func() { calls = append(calls, "update") }
			e.OnOffscreenUpdate = func() { calls = append(calls, "offscreen") }

			res := e.update(tt.level, PointerState{Pos: Vec2{10, 10}, InSurface: true, JustPressed: true}, 0)

			assert.Equal(t, tt.wantHover, e.IsHovering())
			assert.Equal(t, tt.wantClicked, res == Consumed)
			want := []string{"offscreen", "update"}
			if tt.wantClicked {
				want = append(want, "e")
			}
			assert.Equal(t, want, calls)
		})
	}
}

func TestEntityClickRequiresHoverAndPress(t *testing.T) {
	reg, _, _ := newTestRegistry()
	var calls []string
	e := clickable(reg, "e", "", 0, 0, 0, 50, 50, Consumed, &calls)

	assert.Equal(t, NotConsumed, e.update(UpdateFull, PointerState{Pos: Vec2{100, 100}, InSurface: true, JustPressed: true}, 0))
	assert.Equal(t, NotConsumed, e.update(UpdateFull, PointerState{Pos: Vec2{10, 10}, InSurface: true}, 0))
	assert.Equal(t, NotConsumed, e.update(UpdateFull, PointerState{Pos: Vec2{10, 10}, JustPressed: true}, 0),
		"pointer outside the surface never hovers")
	assert.Empty(t, calls)
}

func TestEntityNotConsumedResult(t *testing.T) {
	reg, _, _ := newTestRegistry()
	var calls []string
	e := clickable(reg, "e", "", 0, 0, 0, 50, 50, NotConsumed, &calls)

	res := e.update(UpdateFull, PointerState{Pos: Vec2{10, 10}, InSurface: true, JustPressed: true}, 0)
	assert.Equal(t, NotConsumed, res)
	assert.Equal(t, []string{"e"}, calls, "OnClick still runs")
}

func TestEntityHoverEdges(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)
	var starts, ends int
	area := NewHitArea(0, 0, 50, 50)
	area.OnHoverStart = func() { starts++ }
	area.OnHoverEnd = func() { ends++ }
	e.AttachHitArea(area)

	in := PointerState{Pos: Vec2{10, 10}, InSurface: true}
	out := PointerState{Pos: Vec2{100, 100}, InSurface: true}
	for _, st := range []PointerState{in, in, in, out, out, in} {
		e.update(UpdateHoverOnly, st, 0)
	}
	assert.Equal(t, 2, starts)
	assert.Equal(t, 1, ends)
	assert.True(t, e.IsHovering())
}

func TestEntityShowHideEdges(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)
	var shows, hides int
	e.OnShow = func() { shows++ }
	e.OnHide = func() { hides++ }
	e.AttachHitArea(NewHitArea(10, 10, 10, 10))

	e.update(UpdateNoInput, PointerState{}, 0)
	e.update(UpdateNoInput, PointerState{}, 0)
	assert.Equal(t, 1, shows, "first visible frame shows once")
	assert.Equal(t, 0, hides)

	e.HitArea().Pos = Vec2{-100, 10}
	e.update(UpdateNoInput, PointerState{}, 0)
	e.update(UpdateNoInput, PointerState{}, 0)
	assert.Equal(t, 1, hides)
	assert.False(t, e.IsVisible())

	e.HitArea().Pos = Vec2{-5, 10} // overlapping by 5px
	e.update(UpdateNoInput, PointerState{}, 0)
	assert.Equal(t, 2, shows)
	assert.Equal(t, 1, hides)
}

func TestEntityOffscreenUpdateRunsWhenHidden(t *testing.T) {
	reg, _, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)
	e.AttachHitArea(NewHitArea(-100, -100, 10, 10))
	var offscreen, drawn int
	e.OnOffscreenUpdate = func() { offscreen++ }
	e.OnDraw = func(*ebiten.Image) { drawn++ }

	reg.Update()
	reg.Draw(nil)
	assert.Equal(t, 1, offscreen)
	assert.Equal(t, 0, drawn, "off-screen entities are not drawn")
}

func TestEntityPausedSkipsEverything(t *testing.T) {
	reg, _, _ := newTestRegistry()
	var calls []string
	e := clickable(reg, "e", "lobby", 0, 0, 0, 50, 50, Consumed, &calls)
	e.OnUpdate = func() { calls = append(calls, "update") }
	reg.PauseScene("lobby")

	for _, level := range []UpdateLevel{UpdateNoInput, UpdateHoverOnly, UpdateFull} {
		res := e.update(level, PointerState{Pos: Vec2{10, 10}, InSurface: true, JustPressed: true}, 0)
		assert.Equal(t, NotConsumed, res)
	}
	assert.Empty(t, calls)
	assert.False(t, e.IsHovering())
}

func TestEntityDestroyFromOwnCallback(t *testing.T) {
	reg, ptr, _ := newTestRegistry()
	e := reg.NewSceneEntity("e", "", 0)
	area := NewHitArea(0, 0, 50, 50)
	area.OnClick = func() ClickResult { return Consumed }
	e.AttachHitArea(area)
	e.OnUpdate = func() { e.Destroy() }

	ptr.InjectClick(10, 10)
	assert.NotPanics(t, reg.Update)
	assert.True(t, e.IsDestroyed())
	assert.False(t, e.IsHovering(), "destroyed before the hover test")
	assert.Equal(t, 0, reg.Len())
}
