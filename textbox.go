package wicket

import "github.com/hajimehoshi/ebiten/v2"

// TextBoxDefinition describes a box sized to fit a piece of text.
//
// A nil Font falls back to BasicFont. A zero TextColor means white.
type TextBoxDefinition struct {
	Text            string
	Font            Font
	TextColor       Color
	Padding         float64
	BackgroundColor *Color
}

// TextBox is a rectangle containing text, sized to fit it.
type TextBox struct {
	*Box

	textDef TextBoxDefinition
}

// NewTextBox creates a text box.
func NewTextBox(def TextBoxDefinition) *TextBox {
	if def.Font == nil {
		def.Font = BasicFont()
	}
	if def.TextColor == (Color{}) {
		def.TextColor = ColorWhite
	}
	w, h := def.Font.MeasureString(def.Text)
	tb := &TextBox{
		Box: NewBox(BoxDefinition{
			Width:           w + 2*def.Padding,
			Height:          h + 2*def.Padding,
			BackgroundColor: def.BackgroundColor,
		}),
		textDef: def,
	}
	tb.Box.drawer = tb
	return tb
}

// TextDefinition returns the text box definition.
func (tb *TextBox) TextDefinition() TextBoxDefinition { return tb.textDef }

// Text returns the displayed text.
func (tb *TextBox) Text() string { return tb.textDef.Text }

// SetText replaces the displayed text and resizes the box to fit, notifying
// the parent of the size change.
func (tb *TextBox) SetText(text string) {
	tb.textDef.Text = text
	w, h := tb.textDef.Font.MeasureString(text)
	tb.SetSize(w+2*tb.textDef.Padding, h+2*tb.textDef.Padding)
}

// SetTextColor changes the text color.
func (tb *TextBox) SetTextColor(c Color) { tb.textDef.TextColor = c }

// DrawBox paints the text inside the box's padding.
func (tb *TextBox) DrawBox(dst *ebiten.Image, screen Rect) {
	if tb.textDef.Text == "" {
		return
	}
	p := tb.textDef.Padding
	tb.textDef.Font.Draw(dst, tb.textDef.Text, screen.X+p, screen.Y+p, tb.textDef.TextColor)
}
