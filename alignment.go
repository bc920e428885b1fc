package wicket

// HorizontalAlignment selects an X position within a rectangle.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenterX
	AlignRight
)

// VerticalAlignment selects a Y position within a rectangle.
type VerticalAlignment uint8

const (
	AlignBottom VerticalAlignment = iota
	AlignCenterY
	AlignTop
)

// PositionalAnchor is a pair of alignments naming one of the nine canonical
// points of a rectangle.
type PositionalAnchor struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// The nine canonical anchors.
var (
	LeftBottom   = PositionalAnchor{AlignLeft, AlignBottom}
	LeftCenter   = PositionalAnchor{AlignLeft, AlignCenterY}
	LeftTop      = PositionalAnchor{AlignLeft, AlignTop}
	CenterBottom = PositionalAnchor{AlignCenterX, AlignBottom}
	CenterCenter = PositionalAnchor{AlignCenterX, AlignCenterY}
	CenterTop    = PositionalAnchor{AlignCenterX, AlignTop}
	RightBottom  = PositionalAnchor{AlignRight, AlignBottom}
	RightCenter  = PositionalAnchor{AlignRight, AlignCenterY}
	RightTop     = PositionalAnchor{AlignRight, AlignTop}
)

// CoordInRect returns the position of the anchor within a width x height
// rectangle whose bottom-left corner is the origin.
func (a PositionalAnchor) CoordInRect(width, height float64) Vec2 {
	var p Vec2
	switch a.Horizontal {
	case AlignLeft:
		p.X = 0
	case AlignCenterX:
		p.X = width / 2
	case AlignRight:
		p.X = width
	default:
		panic("wicket: invalid horizontal alignment")
	}
	switch a.Vertical {
	case AlignBottom:
		p.Y = 0
	case AlignCenterY:
		p.Y = height / 2
	case AlignTop:
		p.Y = height
	default:
		panic("wicket: invalid vertical alignment")
	}
	return p
}

// Direction returns the outward unit direction of the anchor, component-wise.
// Center components have no direction, so scalar spacing never perturbs them.
func (a PositionalAnchor) Direction() Vec2 {
	var d Vec2
	switch a.Horizontal {
	case AlignLeft:
		d.X = -1
	case AlignRight:
		d.X = 1
	}
	switch a.Vertical {
	case AlignBottom:
		d.Y = -1
	case AlignTop:
		d.Y = 1
	}
	return d
}
