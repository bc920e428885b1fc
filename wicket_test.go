package wicket

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if !r.Contains(10, 20) {
		t.Error("bottom-left corner should be inside")
	}
	if !r.Contains(40, 60) {
		t.Error("top-right corner should be inside")
	}
	if !r.Contains(25, 40) {
		t.Error("interior point should be inside")
	}
	if r.Contains(9.99, 40) {
		t.Error("point left of rect should be outside")
	}
	if r.Contains(25, 60.01) {
		t.Error("point above rect should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if !a.Intersects(Rect{X: 50, Y: 50, Width: 100, Height: 100}) {
		t.Error("overlapping rects should intersect")
	}
	// Adjacent rects share an edge and count as intersecting.
	if !a.Intersects(Rect{X: 100, Y: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{X: 101, Y: 0, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 50, Height: 50}
	b := Rect{X: 100, Y: 20, Width: 50, Height: 100}

	u := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 150, Height: 120}
	if u != want {
		t.Errorf("union = %+v, want %+v", u, want)
	}
}

func TestMouseButtonMask(t *testing.T) {
	all := MouseButtonLeft | MouseButtonRight

	if !all.Contains(MouseButtonLeft) {
		t.Error("mask should contain left")
	}
	if all.Contains(MouseButtonLeft | MouseButtonMiddle) {
		t.Error("mask should not contain middle")
	}
	if !all.Contains(0) {
		t.Error("empty mask is contained in everything")
	}
	if !all.Intersects(MouseButtonRight | MouseButtonMiddle) {
		t.Error("masks sharing right should intersect")
	}
	if all.Intersects(MouseButtonMiddle) {
		t.Error("disjoint masks should not intersect")
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0.5, A: 1}.toRGBA()
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("unexpected conversion: %+v", c)
	}
	// Out-of-range components clamp instead of wrapping.
	c = Color{R: 2, G: -1, B: 0, A: 1}.toRGBA()
	if c.R != 255 || c.G != 0 {
		t.Errorf("expected clamped conversion, got %+v", c)
	}
}
