package wicket

// FocusStack records the order in which FocusBoxes were focused, most recent
// first. There is deliberately no package-level stack; every FocusBox is
// constructed against an explicit stack, so independent UIs (and tests)
// never share focus state.
type FocusStack struct {
	stack []*FocusBox
}

// NewFocusStack creates an empty focus stack.
func NewFocusStack() *FocusStack {
	return &FocusStack{}
}

// CurrentFocus returns the currently focused box, or nil if none is focused.
func (fs *FocusStack) CurrentFocus() *FocusBox {
	if len(fs.stack) == 0 {
		return nil
	}
	top := fs.stack[0]
	if top.focused {
		return top
	}
	return nil
}

// register appends a focus box at the back of the stack.
func (fs *FocusStack) register(fb *FocusBox) {
	fs.stack = append(fs.stack, fb)
}

// unregister removes a focus box from the stack. Removal implicitly ends its
// focus as far as the stack is concerned; no callbacks fire.
func (fs *FocusStack) unregister(fb *FocusBox) {
	for i, b := range fs.stack {
		if b == fb {
			copy(fs.stack[i:], fs.stack[i+1:])
			fs.stack[len(fs.stack)-1] = nil
			fs.stack = fs.stack[:len(fs.stack)-1]
			return
		}
	}
}

// notifyFocused moves the box to the front of the stack and makes every
// other member lose focus, keeping the single-owner invariant.
func (fs *FocusStack) notifyFocused(fb *FocusBox) {
	fs.unregister(fb)
	fs.stack = append(fs.stack, nil)
	copy(fs.stack[1:], fs.stack)
	fs.stack[0] = fb

	for _, other := range fs.stack[1:] {
		other.LoseFocus()
	}
}

// FocusBoxDefinition describes a FocusBox: the focus area's shape plus
// optional focus transition callbacks.
type FocusBoxDefinition struct {
	BoxDefinition
	OnTakeFocus func()
	OnLoseFocus func()
}

// FocusBox is a MouseBox that takes focus from its stack when clicked.
// A click inside takes focus without consuming the event, so the region
// underneath still reacts; a click outside drops focus.
type FocusBox struct {
	*MouseBox

	def     FocusBoxDefinition
	stack   *FocusStack
	focused bool

	// Variant hooks, run between the focused-flag flip and the stack
	// notification. Variants append rather than override so they stack.
	takeExtras []func()
	loseExtras []func()
}

// NewFocusBox creates a focus box registered against the given stack.
// Panics if stack is nil.
func NewFocusBox(def FocusBoxDefinition, stack *FocusStack) *FocusBox {
	if stack == nil {
		panic("wicket: focus box requires a focus stack")
	}
	fb := &FocusBox{def: def, stack: stack}
	fb.MouseBox = NewMouseBox(MouseBoxDefinition{
		BoxDefinition:  def.BoxDefinition,
		OnPress:        fb.onClick,
		OnPressOutside: fb.onClickOutside,
	})
	fb.enterHooks = append(fb.enterHooks, func() {
		stack.register(fb)
	})
	fb.exitHooks = append(fb.exitHooks, func() {
		stack.unregister(fb)
	})
	return fb
}

// Focused reports whether this box currently holds focus.
func (fb *FocusBox) Focused() bool { return fb.focused }

// TakeFocus makes this box the focused one, demoting every other member of
// the stack. Returns whether a transition occurred; re-taking focus on the
// already-focused box is a no-op.
func (fb *FocusBox) TakeFocus() bool {
	if fb.focused {
		return false
	}
	fb.focused = true
	for _, fn := range fb.takeExtras {
		fn()
	}
	fb.stack.notifyFocused(fb)
	if fb.def.OnTakeFocus != nil {
		fb.def.OnTakeFocus()
	}
	return true
}

// LoseFocus drops focus from this box. Returns whether a transition
// occurred.
func (fb *FocusBox) LoseFocus() bool {
	if !fb.focused {
		return false
	}
	fb.focused = false
	for _, fn := range fb.loseExtras {
		fn()
	}
	if fb.def.OnLoseFocus != nil {
		fb.def.OnLoseFocus()
	}
	return true
}

func (fb *FocusBox) onClick(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
	fb.TakeFocus()
	// Never consume; whatever sits under the focus area reacts too.
	return EventUnhandled
}

func (fb *FocusBox) onClickOutside(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
	fb.LoseFocus()
	return EventUnhandled
}

// focusTarget is the box whose subtree a focus variant acts on: the widget
// the focus box was added to, or the focus box itself while detached.
func (fb *FocusBox) focusTarget() *Box {
	if fb.parent != nil {
		return fb.parent
	}
	return fb.Box
}

// setKeyboardFocus walks the subtree toggling the focus flag on every
// keyboard handler.
func setKeyboardFocus(b *Box, focused bool) {
	if b.keys != nil {
		b.keys.hasFocus = focused
	}
	for _, c := range b.children {
		setKeyboardFocus(c, focused)
	}
}

// KeyboardFocusBox is a FocusBox that additionally routes keyboard focus:
// on taking or losing focus it toggles the focus flag on every keyboard
// handler in the owning widget's subtree, gating FocusRequired handlers.
type KeyboardFocusBox struct {
	*FocusBox
}

// NewKeyboardFocusBox creates a keyboard-routing focus box.
func NewKeyboardFocusBox(def FocusBoxDefinition, stack *FocusStack) *KeyboardFocusBox {
	kb := &KeyboardFocusBox{FocusBox: NewFocusBox(def, stack)}
	kb.takeExtras = append(kb.takeExtras, func() {
		setKeyboardFocus(kb.focusTarget(), true)
	})
	kb.loseExtras = append(kb.loseExtras, func() {
		setKeyboardFocus(kb.focusTarget(), false)
	})
	return kb
}

// VisualKeyboardFocusBox is a KeyboardFocusBox that also raises the owning
// widget to the top of its siblings on focus-take and restores the original
// z-order on focus-loss.
//
// Raising z re-registers the whole subtree on the handler stack, which
// desynchronizes the dispatch already in flight, so the triggering press is
// consumed and re-dispatched through the stage's queue; the newly topmost
// handlers then get first refusal on the same physical click.
type VisualKeyboardFocusBox struct {
	*KeyboardFocusBox

	originalZ int
}

// NewVisualKeyboardFocusBox creates a visual+keyboard focus box.
func NewVisualKeyboardFocusBox(def FocusBoxDefinition, stack *FocusStack) *VisualKeyboardFocusBox {
	vb := &VisualKeyboardFocusBox{KeyboardFocusBox: NewKeyboardFocusBox(def, stack)}
	vb.enterHooks = append(vb.enterHooks, func() {
		// Skip re-capture during the take-focus z round trip, or the
		// raised z would become the restore target.
		if p := vb.parent; p != nil && p.parent != nil && !vb.focused {
			vb.originalZ = p.z
		}
	})
	vb.takeExtras = append(vb.takeExtras, func() {
		if p := vb.parent; p != nil && p.parent != nil {
			p.SetZTop()
		}
	})
	vb.loseExtras = append(vb.loseExtras, func() {
		if p := vb.parent; p != nil && p.parent != nil {
			p.SetZValue(vb.originalZ)
		}
	})
	vb.MouseBox.def.OnPress = vb.onClick
	return vb
}

func (vb *VisualKeyboardFocusBox) onClick(_ *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if !vb.TakeFocus() {
		return EventUnhandled
	}
	if s := vb.stage; s != nil {
		s.RequestRedispatch(func() {
			s.MousePress(x, y, buttons, mods)
		})
	}
	return EventHandled
}

// MakeFocusable adds a visual+keyboard focus box covering the given box.
// The focus box matches the box's size and sits at a very high z so it is
// always the first child to see events.
func MakeFocusable(box *Box, stack *FocusStack) *VisualKeyboardFocusBox {
	fb := NewVisualKeyboardFocusBox(FocusBoxDefinition{
		BoxDefinition: BoxDefinition{
			Width:                DynamicSize,
			Height:               DynamicSize,
			DynamicSizeBehaviour: MatchParent,
		},
	}, stack)
	box.AddZ(fb.Box, 10000)
	return fb
}
