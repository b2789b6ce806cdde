package stage

import (
	"go.uber.org/zap"
)

// OverlayFunc reports whether a blocking overlay (modal, loading screen) is
// active this frame.
type OverlayFunc func() bool

// SceneProvider returns the identifier of the current scene. It is consulted
// when an entity is created without an explicit scene.
type SceneProvider func() string

// EventSink is the interface for optional interaction forwarding (for example
// to an ECS). When set on a Registry, click, hover and visibility edges are
// forwarded as InteractionEvents.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for an EventSink.
type InteractionEvent struct {
	Type     EventType
	EntityID uint64
	Scene    string
	X, Y     float64
}

// Registry owns every live entity and the set of paused scenes, and runs the
// per-frame update and draw passes. A Registry is not safe for concurrent
// use; it is meant to be driven from a single game loop.
type Registry struct {
	cfg      Config
	log      *zap.Logger
	viewport *Viewport
	pointer  PointerSource
	overlay  OverlayFunc
	scenes   SceneProvider
	sink     EventSink

	entities []*Entity
	byID     map[uint64]*Entity
	paused   map[string]struct{}

	// Per-pass snapshot buffer, reused across frames.
	order  []*Entity
	inPass bool
	frame  uint64
}

// NewRegistry creates an empty registry configured by cfg. Zero fields of cfg
// fall back to DefaultConfig values.
func NewRegistry(cfg Config) *Registry {
	cfg = cfg.withDefaults()
	return &Registry{
		cfg:      cfg,
		log:      zap.NewNop(),
		viewport: NewViewport(cfg.ViewportWidth, cfg.ViewportHeight),
		byID:     make(map[uint64]*Entity),
		paused:   make(map[string]struct{}),
	}
}

// Config returns the registry configuration.
func (r *Registry) Config() Config {
	return r.cfg
}

// SetModalThreshold changes the minimum ZBase that still receives full input
// while an overlay is active.
func (r *Registry) SetModalThreshold(z float64) {
	r.cfg.ModalThreshold = z
}

// SetDebugMode enables or disables per-frame pass statistics at debug level.
func (r *Registry) SetDebugMode(enabled bool) {
	r.cfg.Debug = enabled
}

// SetLogger sets the diagnostic logger. nil restores the no-op logger.
func (r *Registry) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l
}

// Logger returns the diagnostic logger.
func (r *Registry) Logger() *zap.Logger {
	return r.log
}

// SetPointerSource sets where the update pass reads pointer state from.
// With no source, the pointer is treated as outside the surface.
func (r *Registry) SetPointerSource(p PointerSource) {
	r.pointer = p
}

// SetOverlay sets the modal overlay query.
func (r *Registry) SetOverlay(fn OverlayFunc) {
	r.overlay = fn
}

// SetSceneProvider sets the current-scene query used by NewEntity.
func (r *Registry) SetSceneProvider(fn SceneProvider) {
	r.scenes = fn
}

// SetEventSink sets the optional interaction event sink.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetViewport replaces the viewport used for on-screen tests.
func (r *Registry) SetViewport(v *Viewport) {
	if v == nil {
		v = NewViewport(r.cfg.ViewportWidth, r.cfg.ViewportHeight)
	}
	r.viewport = v
}

// Viewport returns the viewport used for on-screen tests.
func (r *Registry) Viewport() *Viewport {
	return r.viewport
}

// Teardown destroys every entity, clears the paused set and drops all
// collaborators. The registry stays usable afterwards.
func (r *Registry) Teardown() {
	r.DestroyAll()
	clear(r.paused)
	r.pointer = nil
	r.overlay = nil
	r.scenes = nil
	r.sink = nil
	_ = r.log.Sync()
}

// --- Construction ---

// NewEntity creates an entity owned by the current scene, as reported by the
// SceneProvider. If there is no provider or it reports no scene, a warning is
// logged and the entity is global.
func (r *Registry) NewEntity(name string, z float64) *Entity {
	var scene string
	if r.scenes != nil {
		scene = r.scenes()
	}
	if scene == "" {
		r.log.Warn("no current scene, entity is global",
			zap.String("entity", name))
	}
	return r.NewSceneEntity(name, scene, z)
}

// NewSceneEntity creates an entity owned by the given scene. An empty scene
// makes the entity global: it is never paused.
//
// Entities created while a pass is running are first visited on the next
// frame.
func (r *Registry) NewSceneEntity(name, scene string, z float64) *Entity {
	e := &Entity{
		id:    nextEntityID(),
		scene: scene,
		reg:   r,
		Name:  name,
		ZBase: z,
	}
	r.entities = append(r.entities, e)
	r.byID[e.id] = e
	return e
}

// --- Queries ---

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Entities returns every live entity in creation order. The returned slice is
// a copy.
func (r *Registry) Entities() []*Entity {
	out := make([]*Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// Entity looks up a live entity by ID.
func (r *Registry) Entity(id uint64) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// EntitiesByID returns the live entities among ids, in the order given.
// Unknown IDs are skipped.
func (r *Registry) EntitiesByID(ids ...uint64) []*Entity {
	var out []*Entity
	for _, id := range ids {
		if e, ok := r.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesByScene returns the live entities owned by scene, in creation order.
func (r *Registry) EntitiesByScene(scene string) []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.scene == scene {
			out = append(out, e)
		}
	}
	return out
}

// --- Scene lifecycle ---

// PauseScene excludes every entity of scene from both passes until
// ResumeScene. Entity state is left untouched. Pausing an already paused
// scene only logs a warning.
func (r *Registry) PauseScene(scene string) {
	if scene == "" {
		r.log.Warn("global entities cannot be paused")
		return
	}
	if _, ok := r.paused[scene]; ok {
		r.log.Warn("scene already paused", zap.String("scene", scene))
		return
	}
	r.paused[scene] = struct{}{}
	r.log.Info("scene paused", zap.String("scene", scene))
}

// ResumeScene reverses PauseScene. Resuming a scene that is not paused only
// logs a warning.
func (r *Registry) ResumeScene(scene string) {
	if _, ok := r.paused[scene]; !ok {
		r.log.Warn("scene not paused", zap.String("scene", scene))
		return
	}
	delete(r.paused, scene)
	r.log.Info("scene resumed", zap.String("scene", scene))
}

// IsScenePaused reports whether scene is in the paused set.
func (r *Registry) IsScenePaused(scene string) bool {
	_, ok := r.paused[scene]
	return ok
}

// PausedScenes returns the paused scene identifiers in no particular order.
func (r *Registry) PausedScenes() []string {
	out := make([]string, 0, len(r.paused))
	for s := range r.paused {
		out = append(out, s)
	}
	return out
}

// --- Destruction ---

// Destroy removes e from the registry. No-op for entities that belong to
// another registry or are already destroyed.
func (r *Registry) Destroy(e *Entity) {
	if e == nil || e.reg != r {
		return
	}
	r.removeWhere(func(x *Entity) bool { return x == e })
}

// DestroyEntitiesByScene removes every entity owned by scene and returns how
// many were removed. The scene's pause state is left as is.
func (r *Registry) DestroyEntitiesByScene(scene string) int {
	n := r.removeWhere(func(e *Entity) bool { return e.scene == scene })
	r.log.Info("scene entities destroyed",
		zap.String("scene", scene), zap.Int("count", n))
	return n
}

// DestroyAll removes every entity.
func (r *Registry) DestroyAll() {
	n := r.removeWhere(func(*Entity) bool { return true })
	if n > 0 {
		r.log.Info("all entities destroyed", zap.Int("count", n))
	}
}

// removeWhere releases and removes matching entities, preserving the order of
// the rest. A running pass holds its own snapshot and skips released
// entities, so this is safe to call from callbacks.
func (r *Registry) removeWhere(match func(*Entity) bool) int {
	n := 0
	removed := 0
	for _, e := range r.entities {
		if match(e) {
			delete(r.byID, e.id)
			e.release()
			removed++
			continue
		}
		r.entities[n] = e
		n++
	}
	for i := n; i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = r.entities[:n]
	return removed
}

// --- Events ---

func (r *Registry) emit(t EventType, e *Entity, at Vec2) {
	if r == nil || r.sink == nil {
		return
	}
	r.sink.EmitEvent(InteractionEvent{
		Type:     t,
		EntityID: e.id,
		Scene:    e.scene,
		X:        at.X,
		Y:        at.Y,
	})
}
