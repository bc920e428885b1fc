package wicket

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget is a small overlay box displaying the current FPS and TPS.
// Add it near the top of the tree and at high z so it draws over content.
type FPSWidget struct {
	*Box

	img    *ebiten.Image
	frames int
}

// NewFPSWidget creates an FPS/TPS readout box.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	w := &FPSWidget{
		Box: NewBox(BoxDefinition{Width: 100, Height: 32}),
		img: ebiten.NewImage(100, 32),
	}
	w.Box.drawer = w
	w.refresh()
	return w
}

// DrawBox paints the cached readout, refreshing it about twice a second.
func (w *FPSWidget) DrawBox(dst *ebiten.Image, screen Rect) {
	w.frames++
	if w.frames >= 30 {
		w.frames = 0
		w.refresh()
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(screen.X, screen.Y)
	dst.DrawImage(w.img, &op)
}

func (w *FPSWidget) refresh() {
	w.img.Clear()
	// Semi-transparent background for readability.
	fillRect(w.img, Rect{Width: 100, Height: 32}, Color{A: 0.5})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
