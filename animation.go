package wicket

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Box simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenBackground) and register it with Stage.Animate, or call Update(dt)
// yourself each frame. If the target box is killed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Box
	// onApply runs after each write, for values that need propagation
	// beyond the raw field (size changes).
	onApply func()
	done    bool
}

// Done reports whether the group has finished.
func (g *TweenGroup) Done() bool { return g.done }

// Update advances all tweens by dt seconds and writes the values to the
// target fields. Returns true once every tween has finished or the target
// box has been killed.
func (g *TweenGroup) Update(dt float32) bool {
	if g.done {
		return true
	}
	if g.target != nil && g.target.killed {
		g.done = true
		return true
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if g.onApply != nil {
		g.onApply()
	}
	g.done = allDone
	return g.done
}

// TweenPosition animates box.X and box.Y to the given local coordinates
// over duration seconds using the easing function.
func TweenPosition(box *Box, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: box}
	g.tweens[0] = gween.New(float32(box.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(box.Y), float32(toY), duration, fn)
	g.fields[0] = &box.X
	g.fields[1] = &box.Y
	return g
}

// TweenSize animates the box's width and height to the given size, firing
// the usual size-change propagation on every step.
func TweenSize(box *Box, toWidth, toHeight float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: box}
	var w, h float64 = box.width, box.height
	g.tweens[0] = gween.New(float32(w), float32(toWidth), duration, fn)
	g.tweens[1] = gween.New(float32(h), float32(toHeight), duration, fn)
	g.fields[0] = &w
	g.fields[1] = &h
	g.onApply = func() { box.SetSize(w, h) }
	return g
}

// TweenBackground animates the box's background color to the target color.
// A box with no background starts from transparent black.
func TweenBackground(box *Box, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := Color{}
	if bg := box.backgroundColor(); bg != nil {
		from = *bg
	}
	c := from
	box.SetBackground(c)
	g := &TweenGroup{count: 4, target: box}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	g.onApply = func() { box.SetBackground(c) }
	return g
}
