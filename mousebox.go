package wicket

// MouseClickCallback is invoked for press, press-outside, and release events.
// x and y are world coordinates.
type MouseClickCallback func(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult

// MouseMotionCallback is invoked for hover, unhover, and motion events.
type MouseMotionCallback func(box *MouseBox, x, y, dx, dy float64) EventResult

// MouseDragCallback is invoked for drag events.
type MouseDragCallback func(box *MouseBox, x, y, dx, dy float64, buttons MouseButton, mods KeyModifiers) EventResult

// MouseBoxDefinition describes a box that reacts to mouse events. All
// callbacks are optional.
//
// For press, release, and drag a configured callback that returns
// EventDefault consumes the event; return EventUnhandled to let it continue.
// For hover, unhover, and motion only an explicit EventHandled consumes, so
// overlapping hover regions can all react to the same movement.
type MouseBoxDefinition struct {
	BoxDefinition
	OnPress        MouseClickCallback
	OnPressOutside MouseClickCallback // informational; never consumes
	OnRelease      MouseClickCallback
	OnHover        MouseMotionCallback
	OnUnhover      MouseMotionCallback
	OnMotion       MouseMotionCallback
	OnDrag         MouseDragCallback
}

func doNothingClick(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
	return EventHandled
}

func doNothingMotion(*MouseBox, float64, float64, float64, float64) EventResult {
	return EventHandled
}

func doNothingDrag(*MouseBox, float64, float64, float64, float64, MouseButton, KeyModifiers) EventResult {
	return EventHandled
}

// MouseVoidBoxDefinition builds a definition that swallows every mouse event
// inside the box. Used as the base of Window so clicks within a window never
// fall through to whatever sits underneath it.
func MouseVoidBoxDefinition(def BoxDefinition) MouseBoxDefinition {
	return MouseBoxDefinition{
		BoxDefinition:  def,
		OnPress:        doNothingClick,
		OnPressOutside: doNothingClick,
		OnRelease:      doNothingClick,
		OnHover:        doNothingMotion,
		OnUnhover:      doNothingMotion,
		OnMotion:       doNothingMotion,
		OnDrag:         doNothingDrag,
	}
}

// MouseBox is a Box that reacts to mouse events.
//
// Press and release do not start or stop dragging automatically; no single
// policy fits every widget, so callers use StartDragging and StopDragging
// from their own press/release callbacks (DraggableBox shows the pattern).
// Drag events are then gated only by the dragging flag, never by
// hit-testing, because a fast pointer can leave the hit area between two
// drag events.
type MouseBox struct {
	*Box

	def MouseBoxDefinition

	hovered  bool
	dragging bool
	// Bitwise OR of buttons pressed inside the box and not yet released.
	// Voided entirely when the pointer leaves the hit area.
	pressed MouseButton

	// CoordFilter is an extra hit predicate supplied externally, for
	// example by a ViewPortBox restricting interaction to the visible
	// region. Nil means no extra restriction.
	CoordFilter func(x, y float64) bool

	// Replaceable handling predicates. Composite widgets widen or narrow
	// these instead of subclassing; the defaults derive from which
	// callbacks the definition configures.
	shouldPress   func(buttons MouseButton) bool
	shouldRelease func(buttons MouseButton) bool
	shouldHover   func() bool
	shouldMotion  func() bool
	shouldDrag    func() bool
}

// NewMouseBox creates a mouse-reactive box from the definition.
func NewMouseBox(def MouseBoxDefinition) *MouseBox {
	def.BoxDefinition.validate()
	mb := &MouseBox{
		Box: NewBox(def.BoxDefinition),
		def: def,
	}
	mb.Box.mouse = mb
	mb.shouldPress = mb.defaultShouldPress
	mb.shouldRelease = mb.defaultShouldRelease
	mb.shouldHover = mb.defaultShouldHover
	mb.shouldMotion = mb.defaultShouldMotion
	mb.shouldDrag = mb.defaultShouldDrag
	return mb
}

// MouseDefinition returns the current mouse definition.
func (mb *MouseBox) MouseDefinition() MouseBoxDefinition { return mb.def }

// SetMouseDefinition replaces the mouse definition and re-resolves the size.
func (mb *MouseBox) SetMouseDefinition(def MouseBoxDefinition) {
	mb.def = def
	mb.Box.SetDefinition(def.BoxDefinition)
}

// Hovered reports whether the pointer is currently over the box.
func (mb *MouseBox) Hovered() bool { return mb.hovered }

// Pressed returns the buttons currently pressed inside the box.
func (mb *MouseBox) Pressed() MouseButton { return mb.pressed }

// Dragging reports whether the box is currently in a drag.
func (mb *MouseBox) Dragging() bool { return mb.dragging }

// StartDragging makes the box start listening to drag events.
func (mb *MouseBox) StartDragging() { mb.dragging = true }

// StopDragging makes the box stop listening to drag events.
func (mb *MouseBox) StopDragging() { mb.dragging = false }

func (mb *MouseBox) defaultShouldPress(MouseButton) bool {
	return mb.def.OnPress != nil || mb.def.OnPressOutside != nil
}

// defaultShouldRelease requires an overlapping prior press inside the box,
// so clicking off the box, moving on, and releasing fires nothing.
func (mb *MouseBox) defaultShouldRelease(buttons MouseButton) bool {
	return mb.def.OnRelease != nil && mb.pressed.Intersects(buttons)
}

func (mb *MouseBox) defaultShouldHover() bool {
	return mb.def.OnHover != nil || mb.def.OnUnhover != nil
}

func (mb *MouseBox) defaultShouldMotion() bool {
	return mb.def.OnMotion != nil
}

func (mb *MouseBox) defaultShouldDrag() bool {
	return mb.dragging && mb.def.OnDrag != nil
}

// hitTest reports whether the world point hits this box, honoring the
// CoordFilter if one is set.
func (mb *MouseBox) hitTest(x, y float64) bool {
	if mb.killed || mb.stage == nil {
		return false
	}
	if mb.CoordFilter != nil && !mb.CoordFilter(x, y) {
		return false
	}
	return mb.ContainsCoord(x, y)
}

func (mb *MouseBox) handlePress(x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if !mb.shouldPress(buttons) {
		return EventUnhandled
	}
	if mb.hitTest(x, y) {
		mb.pressed |= buttons
		if mb.def.OnPress != nil {
			if mb.def.OnPress(mb, x, y, buttons, mods) != EventUnhandled {
				return EventHandled
			}
		}
	} else if mb.def.OnPressOutside != nil {
		mb.def.OnPressOutside(mb, x, y, buttons, mods)
	}
	return EventUnhandled
}

func (mb *MouseBox) handleRelease(x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if !mb.shouldRelease(buttons) {
		return EventUnhandled
	}
	if !mb.hitTest(x, y) {
		return EventUnhandled
	}
	result := EventDefault
	if mb.def.OnRelease != nil {
		result = mb.def.OnRelease(mb, x, y, buttons, mods)
	}
	// Clear after the callback so it can still see the pre-release state.
	mb.pressed &^= buttons
	if result != EventUnhandled {
		return EventHandled
	}
	return EventUnhandled
}

// handleMotion turns a single pointer movement into hover, motion, or
// unhover. Hover state and the press-voiding on exit are tracked whether or
// not callbacks are configured; only the callbacks themselves are gated by
// the predicates.
func (mb *MouseBox) handleMotion(x, y, dx, dy float64) EventResult {
	hover := mb.shouldHover()
	motion := mb.shouldMotion()

	if mb.hitTest(x, y) {
		result := EventDefault
		if !mb.hovered {
			mb.hovered = true
			if hover && mb.def.OnHover != nil {
				result = mb.def.OnHover(mb, x, y, dx, dy)
			}
		}
		// Hover that did not explicitly handle falls through to motion.
		if result != EventHandled && motion {
			result = mb.def.OnMotion(mb, x, y, dx, dy)
		}
		if result == EventHandled {
			return EventHandled
		}
		return EventUnhandled
	}

	if mb.hovered {
		mb.hovered = false
		// Leaving the box entirely voids any partial press state.
		mb.pressed = 0
		if hover && mb.def.OnUnhover != nil {
			if mb.def.OnUnhover(mb, x, y, dx, dy) == EventHandled {
				return EventHandled
			}
		}
	}
	return EventUnhandled
}

func (mb *MouseBox) handleDrag(x, y, dx, dy float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if !mb.shouldDrag() {
		return EventUnhandled
	}
	if mb.def.OnDrag == nil {
		return EventUnhandled
	}
	if mb.def.OnDrag(mb, x, y, dx, dy, buttons, mods) != EventUnhandled {
		return EventHandled
	}
	return EventUnhandled
}
