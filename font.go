package wicket

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font measures and draws text for widget labels. Coordinates passed to
// Draw are screen pixels of the text's top-left corner.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
	Draw(dst *ebiten.Image, s string, x, y float64, c Color)
}

// faceFont implements Font over any text/v2 face.
type faceFont struct {
	face text.Face
	lh   float64
}

func (f *faceFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

func (f *faceFont) LineHeight() float64 { return f.lh }

func (f *faceFont) Draw(dst *ebiten.Image, s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(clamp01(c.R)),
		float32(clamp01(c.G)),
		float32(clamp01(c.B)),
		float32(clamp01(c.A)),
	)
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// NewFaceFont wraps an x/image font face as a Font.
func NewFaceFont(face font.Face) Font {
	m := face.Metrics()
	return &faceFont{
		face: text.NewGoXFace(face),
		lh:   float64(m.Height) / 64,
	}
}

// BasicFont is a small fixed-width font that needs no assets. Good enough
// for default widget chrome and tests.
func BasicFont() Font {
	return NewFaceFont(basicfont.Face7x13)
}

// LoadTTFFont parses TTF data into a Font of the given size.
func LoadTTFFont(ttfData []byte, size float64) (Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("wicket: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &faceFont{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}
