package stage

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newTestRegistry returns a registry with a 640x480 viewport, an injected
// pointer and an observed logger capturing everything from debug up.
func newTestRegistry() (*Registry, *InjectedPointer, *observer.ObservedLogs) {
	cfg := DefaultConfig()
	cfg.ViewportWidth = 640
	cfg.ViewportHeight = 480
	reg := NewRegistry(cfg)

	core, logs := observer.New(zapcore.DebugLevel)
	reg.SetLogger(zap.New(core))

	ptr := NewInjectedPointer()
	reg.SetPointerSource(ptr)
	return reg, ptr, logs
}

// clickable creates an entity with a hit-area at (x, y, w, h) whose OnClick
// appends name to *log and returns result.
func clickable(reg *Registry, name, scene string, z float64, x, y, w, h float64, result ClickResult, log *[]string) *Entity {
	e := reg.NewSceneEntity(name, scene, z)
	area := NewHitArea(x, y, w, h)
	area.OnClick = func() ClickResult {
		*log = append(*log, name)
		return result
	}
	e.AttachHitArea(area)
	return e
}
