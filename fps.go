package stage

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidgetZ is the ZBase of the FPS widget: above every other entity.
const FPSWidgetZ = math.MaxFloat64

// NewFPSWidget creates a global entity that displays the current FPS and TPS
// in the top-left corner. The text is refreshed about every 0.5 seconds and
// drawn from an internal image with ebitenutil.DebugPrint.
func NewFPSWidget(reg *Registry) *Entity {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	e := reg.NewSceneEntity("fps_widget", "", FPSWidgetZ)
	dt := 1.0 / float64(reg.Config().TickRate)

	lastUpdate := math.Inf(1)
	e.OnOffscreenUpdate = func() {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	e.OnDraw = func(screen *ebiten.Image) {
		screen.DrawImage(img, nil)
	}
	return e
}
