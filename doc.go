// Package stage is the per-frame scene-object runtime for [Ebitengine]
// applications: it owns every interactive or drawable element, decides in
// what order they see pointer input and get painted, and arbitrates which
// element consumes the click of a frame.
//
// Menus, drawers, scrolling containers and custom buttons are built on top of
// stage. They create entities, attach rectangular hit-areas and callbacks, and
// query entity state; stage never draws anything itself.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	reg := stage.NewRegistry(stage.DefaultConfig())
//	// ... create entities ...
//	stage.Run(reg, stage.RunConfig{Title: "My Game"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Registry.Update] and [Registry.Draw] once per frame, in that order:
//
//	func (g *Game) Update() error        { g.reg.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.reg.Draw(s) }
//
// # Entities
//
// Every element is an [Entity] created by a [Registry]. ZBase orders
// entities: higher is more foreground. The update pass visits entities from
// the highest ZBase down, so the topmost element gets the first chance to
// consume a click; the draw pass paints from the lowest up.
//
//	btn := reg.NewSceneEntity("play", "menu", 10)
//	area := stage.NewHitArea(100, 100, 200, 48)
//	area.OnClick = func() stage.ClickResult { start(); return stage.Consumed }
//	btn.AttachHitArea(area)
//	btn.OnDraw = func(screen *ebiten.Image) { drawButton(screen) }
//
// Only one entity consumes the click of a frame. Entities behind the consumer
// still track hover so highlighting does not stick.
//
// # Scenes
//
// Entities belong to a scene (or none, making them global). Scenes can be
// paused and resumed as a unit without losing entity state, or destroyed.
//
// # Overlays
//
// While the [OverlayFunc] reports an active overlay, only entities at or
// above [Config.ModalThreshold] receive input; the rest keep animating.
//
// [Ebitengine]: https://ebitengine.org
package stage
