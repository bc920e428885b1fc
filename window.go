package wicket

// Default window chrome colors.
var (
	WindowTitleBarBlue   = Color{R: 0.078, G: 0.47, B: 1, A: 1}
	WindowBodyGrey       = Color{R: 0.078, G: 0.078, B: 0.078, A: 1}
	CloseButtonMagenta   = Color{R: 0.784, G: 0, B: 0.498, A: 1}
	CloseButtonHoverPink = Color{R: 1, G: 0, B: 0.498, A: 1}
)

// WindowDefinition describes a draggable, closeable window with a title bar.
//
// Width and Height size the window body; the title bar is added on top.
// Leave them as DynamicSize to fit the body content plus padding. The base
// box swallows every mouse event inside the window so nothing underneath
// receives a click through it; window content is added above and sees
// events first.
type WindowDefinition struct {
	BoxDefinition
	Title     string
	TitleFont Font

	// TitleBarHeight of zero means the title font's line height plus the
	// button spacing.
	TitleBarHeight        float64
	TitleBarButtonSpacing float64
	TitleBarColor         Color

	// Padding between the body content and the window edges.
	Padding float64

	OnClose MouseClickCallback
}

func (def *WindowDefinition) applyDefaults() {
	if def.TitleFont == nil {
		def.TitleFont = BasicFont()
	}
	if def.TitleBarButtonSpacing == 0 {
		def.TitleBarButtonSpacing = 2
	}
	if def.TitleBarHeight == 0 {
		def.TitleBarHeight = def.TitleFont.LineHeight() + 2*def.TitleBarButtonSpacing
	}
	if def.TitleBarColor == (Color{}) {
		def.TitleBarColor = WindowTitleBarBlue
	}
	if def.BackgroundColor == nil {
		bg := WindowBodyGrey
		def.BackgroundColor = &bg
	}
	if def.Padding == 0 {
		def.Padding = 15
	}
}

// Window is a draggable, closeable box with a title bar. Content goes into
// Body, a BoxColumn filling bottom to top.
type Window struct {
	*MouseBox

	winDef WindowDefinition

	title       *TextBox
	titleBarBg  *Box
	dragZone    *DraggableBox
	closeButton *Button
	focusBox    *VisualKeyboardFocusBox
	body        *BoxColumn
}

// NewWindow creates a window. With a non-nil focus stack the window raises
// itself and takes keyboard focus when clicked.
func NewWindow(def WindowDefinition, stack *FocusStack) *Window {
	def.BoxDefinition.validate()
	def.applyDefaults()
	w := &Window{winDef: def}

	// The window base swallows all mouse events within its area.
	base := MouseVoidBoxDefinition(BoxDefinition{
		Width:           1,
		Height:          1,
		BackgroundColor: def.BackgroundColor,
	})
	w.MouseBox = NewMouseBox(base)

	w.titleBarBg = NewBox(BoxDefinition{
		Width:                DynamicSize,
		Height:               def.TitleBarHeight,
		DynamicSizeBehaviour: MatchParent,
		BackgroundColor:      &w.winDef.TitleBarColor,
	})
	w.AddZNoResize(w.titleBarBg, -2)

	w.dragZone = NewDraggableBox(DraggableBoxDefinition{
		MouseBoxDefinition: MouseBoxDefinition{
			BoxDefinition: BoxDefinition{
				Width:                DynamicSize,
				Height:               def.TitleBarHeight,
				DynamicSizeBehaviour: MatchParent,
			},
		},
		DragParent: true,
	})
	w.AddZNoResize(w.dragZone.Box, -1)

	buttonSize := def.TitleBarHeight - 2*def.TitleBarButtonSpacing
	w.closeButton = NewButton(ButtonDefinition{
		MouseBoxDefinition: MouseBoxDefinition{
			BoxDefinition: BoxDefinition{Width: buttonSize, Height: buttonSize},
			OnRelease:     w.closeReleased,
		},
		Text:       "X",
		Font:       def.TitleFont,
		BaseColor:  CloseButtonMagenta,
		HoverColor: &CloseButtonHoverPink,
	})
	w.AddNoResize(w.closeButton.Box)

	if def.Title != "" {
		w.title = NewTextBox(TextBoxDefinition{
			Text: def.Title,
			Font: def.TitleFont,
		})
		w.AddNoResize(w.title.Box)
	}

	w.body = NewBoxColumn(BoxLayoutDefinition{
		BoxDefinition: BoxDefinition{Width: DynamicSize, Height: DynamicSize},
		Spacing:       10,
		Alignment:     CenterCenter,
	})
	w.AddNoResize(w.body.Box)
	// Body content growing or shrinking re-fits a dynamically sized window.
	w.body.sizeHooks = append(w.body.sizeHooks, w.refit)

	if stack != nil {
		w.focusBox = MakeFocusable(w.Box, stack)
	}

	w.refit()
	return w
}

// WindowDefinition returns the window's definition.
func (w *Window) WindowDefinition() WindowDefinition { return w.winDef }

// Body returns the column holding the window's content.
func (w *Window) Body() *BoxColumn { return w.body }

// CloseButton returns the window's close button.
func (w *Window) CloseButton() *Button { return w.closeButton }

// DragZone returns the title bar's draggable area.
func (w *Window) DragZone() *DraggableBox { return w.dragZone }

// Title returns the title text box, or nil for an untitled window.
func (w *Window) Title() *TextBox { return w.title }

// AddToBody adds content to the window body. Content stacks bottom to top
// in the order added.
func (w *Window) AddToBody(child *Box) {
	w.body.AddBox(child)
}

// MakeFocused raises the window and gives it keyboard focus, as a click on
// it would. No-op for a window built without a focus stack.
func (w *Window) MakeFocused() {
	if w.focusBox != nil {
		w.focusBox.TakeFocus()
	}
}

// Close closes the window as if the close button were released.
func (w *Window) Close() {
	w.closeReleased(w.closeButton.MouseBox, 0, 0, MouseButtonLeft, 0)
}

func (w *Window) closeReleased(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if w.winDef.OnClose != nil {
		w.winDef.OnClose(box, x, y, buttons, mods)
	}
	w.Kill()
	return EventHandled
}

// refit resizes a dynamically sized window around its body and re-places
// the chrome.
func (w *Window) refit() {
	def := w.winDef
	width, height := def.Width, def.Height
	if def.isDynamic() {
		width = w.body.width + 2*def.Padding
		if mw := w.minTitleBarWidth(); mw > width {
			width = mw
		}
		height = w.body.height + 2*def.Padding
	}
	w.SetSize(width, height+def.TitleBarHeight)
	w.arrangeChildren()
}

// minTitleBarWidth is the narrowest the window can be while fitting the
// title text and title bar buttons.
func (w *Window) minTitleBarWidth() float64 {
	width := w.closeButton.width + 2*w.winDef.TitleBarButtonSpacing
	if w.title != nil {
		width += w.title.width + 10
	}
	return width
}

func (w *Window) arrangeChildren() {
	sp := w.winDef.TitleBarButtonSpacing
	w.closeButton.AlignAnchorWithOtherAnchorOffset(w.Box, RightTop, RightTop, Vec2{-sp, -sp})
	w.titleBarBg.AlignAnchorWithOtherAnchorOffset(w.Box, LeftTop, LeftTop, Vec2{})
	w.dragZone.AlignAnchorWithOtherAnchorOffset(w.Box, LeftTop, LeftTop, Vec2{})
	if w.title != nil {
		inset := (w.winDef.TitleBarHeight - w.title.height) / 2
		w.title.AlignAnchorWithOtherAnchorOffset(w.Box, LeftTop, LeftTop, Vec2{10, -inset})
	}
	w.body.AlignAnchorWithOtherAnchorOffset(w.Box, CenterBottom, CenterBottom, Vec2{0, w.winDef.Padding})
}
