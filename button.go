package wicket

// ButtonBlue is the default button base color.
var ButtonBlue = Color{R: 0, G: 0.435, B: 1, A: 1}

// ButtonDefinition describes a visible, clickable button.
//
// The mouse callbacks are optional; the button reacts to presses, releases
// and hovering whenever a color for that state is set, even with no
// callbacks, so color feedback needs no configuration beyond the colors.
type ButtonDefinition struct {
	MouseBoxDefinition
	Text           string
	Font           Font
	TextColor      Color
	TextPadding    float64
	BaseColor      Color
	DepressedColor *Color
	HoverColor     *Color
}

// Button is a MouseBox with a label and per-state background colors.
type Button struct {
	*MouseBox

	btnDef ButtonDefinition
	label  *TextBox

	userOnPress   MouseClickCallback
	userOnRelease MouseClickCallback
	userOnHover   MouseMotionCallback
	userOnUnhover MouseMotionCallback

	// resting applies the non-pressed color. Replaceable so ToggleButton
	// can keep the depressed color while latched on.
	resting func()
}

// NewButton creates a button. A definition with no size fits the label text
// plus padding.
func NewButton(def ButtonDefinition) *Button {
	if def.Font == nil {
		def.Font = BasicFont()
	}
	if def.TextColor == (Color{}) {
		def.TextColor = ColorWhite
	}
	if def.BaseColor == (Color{}) {
		def.BaseColor = ButtonBlue
	}

	b := &Button{
		btnDef:        def,
		userOnPress:   def.OnPress,
		userOnRelease: def.OnRelease,
		userOnHover:   def.OnHover,
		userOnUnhover: def.OnUnhover,
	}

	mdef := def.MouseBoxDefinition
	if mdef.Width == 0 && mdef.Height == 0 && def.Text != "" {
		w, h := def.Font.MeasureString(def.Text)
		mdef.Width = w + 2*def.TextPadding
		mdef.Height = h + 2*def.TextPadding
	}
	mdef.OnPress = b.onPress
	mdef.OnRelease = b.onRelease
	mdef.OnHover = b.onHover
	mdef.OnUnhover = b.onUnhover
	b.MouseBox = NewMouseBox(mdef)
	b.resting = b.restingColor
	b.SetBackground(def.BaseColor)

	// Color feedback must work without callbacks, so widen the handling
	// predicates beyond the configured-callback defaults.
	b.shouldPress = b.shouldHandlePress
	b.shouldRelease = b.shouldHandleRelease
	b.shouldHover = b.shouldHandleHover

	if def.Text != "" {
		b.label = NewTextBox(TextBoxDefinition{
			Text:      def.Text,
			Font:      def.Font,
			TextColor: def.TextColor,
		})
		b.Add(b.label.Box)
		b.centerLabel()
	}
	return b
}

// ButtonDefinition returns the button's definition.
func (b *Button) ButtonDefinition() ButtonDefinition { return b.btnDef }

// Label returns the button's label text box, or nil for a textless button.
func (b *Button) Label() *TextBox { return b.label }

// SetText replaces the label text and re-centers it.
func (b *Button) SetText(text string) {
	b.btnDef.Text = text
	if b.label == nil {
		return
	}
	b.label.SetText(text)
	b.centerLabel()
}

func (b *Button) centerLabel() {
	b.label.AlignAnchorWithOtherAnchor(b.Box, CenterCenter, CenterCenter, 0)
}

func (b *Button) shouldHandlePress(MouseButton) bool {
	// Handle with only a release callback too, to record which mouse
	// button was used.
	return b.userOnPress != nil || b.userOnRelease != nil || b.btnDef.DepressedColor != nil
}

func (b *Button) shouldHandleRelease(buttons MouseButton) bool {
	return b.shouldHandlePress(buttons) && b.pressed.Intersects(buttons)
}

func (b *Button) shouldHandleHover() bool {
	return b.userOnHover != nil || b.userOnUnhover != nil || b.btnDef.HoverColor != nil
}

func (b *Button) onPress(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if b.btnDef.DepressedColor != nil {
		b.SetBackground(*b.btnDef.DepressedColor)
	}
	if b.userOnPress != nil {
		return b.userOnPress(box, x, y, buttons, mods)
	}
	return EventDefault
}

func (b *Button) onRelease(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	b.resting()
	if b.userOnRelease != nil {
		return b.userOnRelease(box, x, y, buttons, mods)
	}
	return EventDefault
}

// restingColor applies the color for the button's non-pressed state.
func (b *Button) restingColor() {
	if b.hovered && b.btnDef.HoverColor != nil {
		b.SetBackground(*b.btnDef.HoverColor)
	} else {
		b.SetBackground(b.btnDef.BaseColor)
	}
}

func (b *Button) onHover(box *MouseBox, x, y, dx, dy float64) EventResult {
	if b.btnDef.HoverColor != nil {
		b.SetBackground(*b.btnDef.HoverColor)
	}
	if b.userOnHover != nil {
		return b.userOnHover(box, x, y, dx, dy)
	}
	return EventDefault
}

func (b *Button) onUnhover(box *MouseBox, x, y, dx, dy float64) EventResult {
	b.resting()
	if b.userOnUnhover != nil {
		return b.userOnUnhover(box, x, y, dx, dy)
	}
	return EventDefault
}

// ToggleButtonDefinition describes a button that latches between two states.
type ToggleButtonDefinition struct {
	ButtonDefinition
	OnToggle func(on bool)
}

// ToggleButton is a Button that toggles on each press. While toggled on it
// keeps the depressed color.
type ToggleButton struct {
	*Button

	toggleDef ToggleButtonDefinition
	toggled   bool
}

// NewToggleButton creates a toggle button.
func NewToggleButton(def ToggleButtonDefinition) *ToggleButton {
	t := &ToggleButton{toggleDef: def}
	bdef := def.ButtonDefinition
	userOnPress := bdef.OnPress
	bdef.OnPress = func(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
		t.SetToggled(!t.toggled)
		if userOnPress != nil {
			return userOnPress(box, x, y, buttons, mods)
		}
		return EventDefault
	}
	t.Button = NewButton(bdef)

	// A toggle must always react to presses, even with no callbacks or
	// depressed color configured.
	t.shouldPress = func(MouseButton) bool { return true }
	t.resting = t.toggleRestingColor
	return t
}

// Toggled reports whether the button is currently toggled on.
func (t *ToggleButton) Toggled() bool { return t.toggled }

// SetToggled sets the toggle state, updating the color and firing OnToggle
// on a change.
func (t *ToggleButton) SetToggled(on bool) {
	if t.toggled == on {
		return
	}
	t.toggled = on
	if on && t.btnDef.DepressedColor != nil {
		t.SetBackground(*t.btnDef.DepressedColor)
	} else if !on {
		t.restingColor()
	}
	if t.toggleDef.OnToggle != nil {
		t.toggleDef.OnToggle(on)
	}
}

// toggleRestingColor keeps the depressed color while toggled on.
func (t *ToggleButton) toggleRestingColor() {
	if t.toggled && t.btnDef.DepressedColor != nil {
		t.SetBackground(*t.btnDef.DepressedColor)
		return
	}
	t.Button.restingColor()
}
