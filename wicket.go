package wicket

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default background tint.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Neg returns the negation of v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The widget coordinate system has its
// origin at the bottom-left, with Y increasing upward; the flip to screen
// space happens once, at draw time.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the minimal rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	left := min(r.X, other.X)
	bottom := min(r.Y, other.Y)
	right := max(r.X+r.Width, other.X+other.Width)
	top := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: left, Y: bottom, Width: right - left, Height: top - bottom}
}

// MouseButton is a bitmask of mouse buttons. Events may carry several buttons
// at once, and press state on a MouseBox is the bitwise OR of everything
// pressed inside it.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 1 << iota
	MouseButtonRight
	MouseButtonMiddle
)

// Contains reports whether every button in other is also set in b.
// An empty mask is contained in everything.
func (b MouseButton) Contains(other MouseButton) bool {
	return b&other == other
}

// Intersects reports whether b and other share at least one button.
func (b MouseButton) Intersects(other MouseButton) bool {
	return b&other != 0
}

// KeyModifiers is a bitmask of keyboard modifier state.
type KeyModifiers uint16

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
	ModNumLock
	ModCapsLock
	ModScrollLock
)

// Key identifies a keyboard key. Key codes are Ebitengine's.
type Key = ebiten.Key

// EventResult is the tri-state outcome of an event callback.
//
// The distinction between EventDefault and EventUnhandled is load-bearing:
// press, release, and drag dispatch treat EventDefault as consumed (a
// configured callback that expresses no opinion stops propagation), while
// hover, unhover, and motion dispatch treat only an explicit EventHandled as
// consumed, so that overlapping hover regions coexist.
type EventResult uint8

const (
	// EventDefault means the callback expressed no opinion.
	EventDefault EventResult = iota
	// EventHandled stops the event propagating to handlers below.
	EventHandled
	// EventUnhandled explicitly lets the event continue propagating.
	EventUnhandled
)

// DynamicSize marks a BoxDefinition dimension as computed at runtime rather
// than fixed. How it is computed depends on DynamicSizeBehaviour.
const DynamicSize = -1
