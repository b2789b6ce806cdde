package stage

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title. Defaults to "stage".
	Title string
	// Width and Height set the window size in screen pixels. When zero, the
	// registry's viewport size is used.
	Width, Height int
	// ClearColor fills the screen before the draw pass. A nil value leaves
	// the screen as Ebitengine cleared it.
	ClearColor color.Color
	// Script, if set, is stepped once per frame before the update pass and
	// replaces the Ebitengine pointer with its injected pointer.
	Script *ScriptRunner
	// ScreenshotDir is where Game.Screenshot writes PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string
	// ShowFPS adds an FPS/TPS readout entity above everything else.
	ShowFPS bool
}

// Game adapts a Registry to ebiten.Game: one update pass per tick and one
// draw pass per frame. The logical screen is the registry's viewport, so
// Ebitengine performs the letterboxing and pointer mapping.
type Game struct {
	// ScreenshotDir is the output directory for Screenshot.
	ScreenshotDir string

	reg             *Registry
	clear           color.Color
	script          *ScriptRunner
	screenshotQueue []string
}

// NewGame wraps reg. If reg has no pointer source, an EbitenPointer over the
// registry's viewport is installed.
func NewGame(reg *Registry, cfg RunConfig) *Game {
	g := &Game{
		ScreenshotDir: cfg.ScreenshotDir,
		reg:           reg,
		clear:         cfg.ClearColor,
		script:        cfg.Script,
	}
	if g.ScreenshotDir == "" {
		g.ScreenshotDir = "screenshots"
	}
	if cfg.Script != nil {
		cfg.Script.OnScreenshot = g.Screenshot
	}
	if cfg.ShowFPS {
		NewFPSWidget(reg)
	}
	switch {
	case cfg.Script != nil:
		reg.SetPointerSource(cfg.Script.Pointer())
	case reg.pointer == nil:
		reg.SetPointerSource(NewEbitenPointer(reg.Viewport()))
	}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		g.script.Step(g.reg)
	}
	g.reg.Update()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.clear != nil {
		screen.Fill(g.clear)
	}
	g.reg.Draw(screen)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	vp := g.reg.Viewport()
	return int(vp.Width), int(vp.Height)
}

// Run opens a window and drives reg until the window is closed. The registry
// is torn down on return.
func Run(reg *Registry, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "stage"
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		vp := reg.Viewport()
		w, h = int(vp.Width), int(vp.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(reg.Config().TickRate)

	defer reg.Teardown()
	return ebiten.RunGame(NewGame(reg, cfg))
}
