package wicket

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drawer paints a box's visual. screen is the box's rectangle in screen
// pixels, top-left origin; the world-to-screen flip has already happened.
type Drawer interface {
	DrawBox(dst *ebiten.Image, screen Rect)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(dst *ebiten.Image, screen Rect)

func (f DrawerFunc) DrawBox(dst *ebiten.Image, screen Rect) { f(dst, screen) }

// SetDrawer installs a custom drawer painted after the box's background and
// before its children.
func (b *Box) SetDrawer(d Drawer) { b.drawer = d }

// screenRect converts a box's world rect to screen pixels. World coordinates
// are Y-up with the origin at the stage's bottom-left; the screen is Y-down
// with the origin at the top-left, so the flip maps the box's top edge to
// the rect's screen Y.
func (s *Stage) screenRect(world Rect) Rect {
	return Rect{
		X:      world.X,
		Y:      s.height - (world.Y + world.Height),
		Width:  world.Width,
		Height: world.Height,
	}
}

// Draw paints the box tree onto screen in painter order: each box's
// background, then its drawer, then its children from bottom z to top.
func (s *Stage) Draw(screen *ebiten.Image) {
	s.drawBox(screen, s.root)
	s.flushScreenshots(screen)
}

func (s *Stage) drawBox(dst *ebiten.Image, b *Box) {
	if b.killed {
		return
	}
	world := b.WorldRect()
	if bg := b.backgroundColor(); bg != nil {
		fillRect(dst, s.screenRect(world), *bg)
	}
	if b.drawer != nil {
		b.drawer.DrawBox(dst, s.screenRect(world))
	}
	childDst := dst
	if b.clip != nil {
		childDst = clipImage(dst, s.screenRect(b.clip.WorldRect()))
	}
	for _, c := range b.children {
		s.drawBox(childDst, c)
	}
}

// clipImage restricts drawing to the given screen rect. The sub-image keeps
// the parent's coordinate system, so draw code needs no adjustment.
func clipImage(dst *ebiten.Image, r Rect) *ebiten.Image {
	clip := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
	return dst.SubImage(clip.Intersect(dst.Bounds())).(*ebiten.Image)
}

// fillRect draws a solid rectangle by scaling the shared white pixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	a := float32(clamp01(c.A))
	op.ColorScale.Scale(float32(clamp01(c.R))*a, float32(clamp01(c.G))*a, float32(clamp01(c.B))*a, a)
	dst.DrawImage(WhitePixel, &op)
}
