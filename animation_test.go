package wicket

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	b := NewBox(BoxDefinition{Width: 50, Height: 50})
	g := TweenPosition(b, 100, 200, 1, ease.Linear)

	if g.Update(0.5) {
		t.Fatal("tween should not finish at the halfway point")
	}
	if b.X != 50 || b.Y != 100 {
		t.Errorf("box at (%v, %v), want (50, 100)", b.X, b.Y)
	}

	if !g.Update(0.5) {
		t.Fatal("tween should finish after the full duration")
	}
	if b.X != 100 || b.Y != 200 {
		t.Errorf("box at (%v, %v), want (100, 200)", b.X, b.Y)
	}
	if !g.Done() {
		t.Error("finished group should report done")
	}
	// Updating a finished group is a no-op.
	if !g.Update(1) {
		t.Error("finished group should stay done")
	}
}

func TestTweenStopsWhenBoxKilled(t *testing.T) {
	s := NewStage(800, 600)
	b := NewBox(BoxDefinition{Width: 50, Height: 50})
	s.Add(b)
	g := TweenPosition(b, 100, 0, 1, ease.Linear)

	g.Update(0.25)
	b.Kill()
	if !g.Update(0.25) {
		t.Error("tween on a killed box should finish immediately")
	}
	if b.X != 25 {
		t.Errorf("box X = %v, want frozen at 25", b.X)
	}
}

func TestTweenSizePropagates(t *testing.T) {
	parent := NewBox(BoxDefinition{Width: DynamicSize, Height: DynamicSize})
	child := NewBox(BoxDefinition{Width: 100, Height: 100})
	parent.Add(child)

	g := TweenSize(child, 200, 50, 1, ease.Linear)
	g.Update(0.5)
	if child.Width() != 150 || child.Height() != 75 {
		t.Errorf("child = %vx%v, want 150x75", child.Width(), child.Height())
	}
	// The fit-children parent follows every step.
	if parent.Width() != 150 || parent.Height() != 75 {
		t.Errorf("parent = %vx%v, want 150x75", parent.Width(), parent.Height())
	}

	g.Update(0.5)
	if child.Width() != 200 || child.Height() != 50 {
		t.Errorf("child = %vx%v, want 200x50", child.Width(), child.Height())
	}
}

func TestTweenBackground(t *testing.T) {
	b := NewBox(BoxDefinition{Width: 50, Height: 50})
	to := Color{R: 1, G: 0.5, A: 1}
	g := TweenBackground(b, to, 1, ease.Linear)

	// Starting a background tween on a bare box begins from transparent.
	if bg := b.backgroundColor(); bg == nil || *bg != (Color{}) {
		t.Fatalf("starting background = %+v, want transparent", bg)
	}

	g.Update(1)
	if bg := b.backgroundColor(); bg == nil || *bg != to {
		t.Errorf("final background = %+v, want %+v", bg, to)
	}
}

func TestTweenBackgroundFromExisting(t *testing.T) {
	b := NewBox(BoxDefinition{Width: 50, Height: 50})
	b.SetBackground(Color{R: 1, A: 1})
	g := TweenBackground(b, Color{B: 1, A: 1}, 1, ease.Linear)

	g.Update(0.5)
	bg := b.backgroundColor()
	if bg == nil || bg.R != 0.5 || bg.B != 0.5 || bg.A != 1 {
		t.Errorf("midpoint background = %+v", bg)
	}
}
