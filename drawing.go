package wicket

import "math"

// MouseDefinedRect records a rectangle dragged out by the mouse on a
// RectDrawingBox, along with the buttons and modifiers held when it began.
//
// The minimum size is 1x1 so that a click without movement still produces a
// rect that can intersect things and be drawn.
type MouseDefinedRect struct {
	Canvas    *RectDrawingBox
	Buttons   MouseButton
	Modifiers KeyModifiers
	// Start and End are in the canvas's local space. End updates as the
	// drag proceeds; direction does not matter.
	Start, End Vec2
}

// Vector returns the displacement from start to end.
func (r *MouseDefinedRect) Vector() Vec2 {
	return Vec2{r.End.X - r.Start.X, r.End.Y - r.Start.Y}
}

// BottomLeft returns the bottom-left corner of the defined rectangle,
// whichever direction it was drawn in.
func (r *MouseDefinedRect) BottomLeft() Vec2 {
	return Vec2{min(r.Start.X, r.End.X), min(r.Start.Y, r.End.Y)}
}

// Dimensions returns the width and height of the defined rect, at least 1x1.
func (r *MouseDefinedRect) Dimensions() (w, h float64) {
	v := r.Vector()
	w, h = math.Abs(v.X), math.Abs(v.Y)
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return w, h
}

// AsRect returns the defined rect in canvas-local coordinates.
func (r *MouseDefinedRect) AsRect() Rect {
	bl := r.BottomLeft()
	w, h := r.Dimensions()
	return Rect{X: bl.X, Y: bl.Y, Width: w, Height: h}
}

// AsWorldRect returns the defined rect in world coordinates.
func (r *MouseDefinedRect) AsWorldRect() Rect {
	bl := r.BottomLeft()
	x, y := r.Canvas.PointToWorld(bl.X, bl.Y)
	w, h := r.Dimensions()
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectDrawingBoxDefinition describes a box users can draw rectangles in.
// Callbacks fire at the start of a drawing, on every change, and on
// completion. Color fills the live rect while drawing; the zero value gets
// a translucent green.
type RectDrawingBoxDefinition struct {
	BoxDefinition
	OnStart    func(*MouseDefinedRect)
	OnChange   func(*MouseDefinedRect)
	OnComplete func(*MouseDefinedRect)
	Color      Color
}

var defaultDrawingColor = Color{R: 0.2, G: 0.85, B: 0.3, A: 0.4}

// RectDrawingBox is a rectangular area where rects can be drawn with the
// mouse. One rect is tracked per pressed button combination: pressing a
// second button mid-drag starts a second rect from the current position,
// and each completes when its buttons release.
type RectDrawingBox struct {
	*MouseBox

	drawDef RectDrawingBoxDefinition

	inProgress map[MouseButton]*MouseDefinedRect
	displays   map[MouseButton]*Box
}

// NewRectDrawingBox creates a drawing box. A definition with no size fills
// its parent.
func NewRectDrawingBox(def RectDrawingBoxDefinition) *RectDrawingBox {
	if def.Width == 0 && def.Height == 0 {
		def.Width = DynamicSize
		def.Height = DynamicSize
		def.DynamicSizeBehaviour = MatchParent
	}
	if def.Color == (Color{}) {
		def.Color = defaultDrawingColor
	}
	rb := &RectDrawingBox{
		drawDef:    def,
		inProgress: make(map[MouseButton]*MouseDefinedRect),
		displays:   make(map[MouseButton]*Box),
	}
	rb.MouseBox = NewMouseBox(MouseBoxDefinition{
		BoxDefinition: def.BoxDefinition,
		OnPress:       rb.onPress,
		OnRelease:     rb.onRelease,
		OnDrag:        rb.onDrag,
	})
	return rb
}

// DrawingDefinition returns the drawing definition.
func (rb *RectDrawingBox) DrawingDefinition() RectDrawingBoxDefinition { return rb.drawDef }

func (rb *RectDrawingBox) updateDisplay(buttons MouseButton) {
	rect := rb.inProgress[buttons].AsRect()
	if old := rb.displays[buttons]; old != nil {
		rb.Remove(old)
	}
	display := NewBox(BoxDefinition{
		Width:           rect.Width,
		Height:          rect.Height,
		BackgroundColor: &rb.drawDef.Color,
	})
	display.X = rect.X
	display.Y = rect.Y
	rb.displays[buttons] = display
	rb.Add(display)
}

func (rb *RectDrawingBox) onPress(_ *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	rb.StartDragging()
	lx, ly := rb.PointToLocal(x, y)
	rect := &MouseDefinedRect{
		Canvas:    rb,
		Buttons:   rb.pressed,
		Modifiers: mods,
		Start:     Vec2{lx, ly},
		End:       Vec2{lx, ly},
	}
	rb.inProgress[buttons] = rect
	rb.updateDisplay(buttons)

	if rb.drawDef.OnStart != nil {
		rb.drawDef.OnStart(rect)
	}
	return EventDefault
}

func (rb *RectDrawingBox) onRelease(_ *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	rect := rb.inProgress[buttons]
	if rect == nil {
		return EventUnhandled
	}
	lx, ly := rb.PointToLocal(x, y)
	rect.End = Vec2{lx, ly}

	if rb.drawDef.OnComplete != nil {
		rb.drawDef.OnComplete(rect)
	}

	delete(rb.inProgress, buttons)
	if display := rb.displays[buttons]; display != nil {
		rb.Remove(display)
		delete(rb.displays, buttons)
	}

	// Other button combinations may still be drawing.
	if rb.pressed&^buttons == 0 {
		rb.StopDragging()
	}
	return EventDefault
}

func (rb *RectDrawingBox) onDrag(_ *MouseBox, x, y, dx, dy float64, buttons MouseButton, mods KeyModifiers) EventResult {
	lx, ly := rb.PointToLocal(x, y)
	// The event's buttons mask is everything currently pressed; each rect
	// in progress tracks the same pointer, so update them all.
	for b, rect := range rb.inProgress {
		rect.End = Vec2{lx, ly}
		rb.updateDisplay(b)
		if rb.drawDef.OnChange != nil {
			rb.drawDef.OnChange(rect)
		}
	}
	return EventDefault
}
