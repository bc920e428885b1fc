package wicket

// BoxLayoutDefinition describes an arrangement of boxes.
//
// NumColumns and NumRows select the layout shape; zero means unspecified:
//
//	(0, 1) a single row
//	(1, 0) a single column
//	(x, y) an x-by-y grid, filling from the bottom-left
//
// Alignment names the point of each box aligned within its row or column:
// a row aligns the vertical component against its tallest member, a column
// the horizontal component against its widest.
type BoxLayoutDefinition struct {
	BoxDefinition
	Spacing    float64
	NumColumns int
	NumRows    int
	Alignment  PositionalAnchor
}

// DefaultBoxLayoutDefinition returns a single dynamically sized row with
// ten units of spacing and center alignment.
func DefaultBoxLayoutDefinition() BoxLayoutDefinition {
	return BoxLayoutDefinition{
		BoxDefinition: BoxDefinition{Width: DynamicSize, Height: DynamicSize},
		Spacing:       10,
		NumRows:       1,
		Alignment:     CenterCenter,
	}
}

// Layout is the common surface of BoxRow and BoxColumn, letting grid
// builders and callers treat either shape uniformly.
type Layout interface {
	Base() *Box
	AddBox(b *Box)
	InsertBox(i int, b *Box)
	RemoveBox(b *Box)
	Boxes() []*Box
	UpdateLayout()
}

// BoxLayout carries the shared state of the layout containers: the ordered
// box list and the re-arrange hook installed by the concrete shape.
type BoxLayout struct {
	*Box

	layoutDef BoxLayoutDefinition
	boxes     []*Box
	arrange   func()
}

func newBoxLayout(def BoxLayoutDefinition) *BoxLayout {
	// A layout exists to wrap its contents; an explicit zero-size layout
	// is meaningless, so an unset size means dynamic.
	if def.Width == 0 {
		def.Width = DynamicSize
	}
	if def.Height == 0 {
		def.Height = DynamicSize
	}
	return &BoxLayout{
		Box:       NewBox(def.BoxDefinition),
		layoutDef: def,
	}
}

// Base returns the layout's underlying box.
func (l *BoxLayout) Base() *Box { return l.Box }

// LayoutDefinition returns the layout's definition.
func (l *BoxLayout) LayoutDefinition() BoxLayoutDefinition { return l.layoutDef }

// Boxes returns the ordered laid-out boxes. Callers must not modify it.
func (l *BoxLayout) Boxes() []*Box { return l.boxes }

// AddBox appends a box to the layout and rearranges.
func (l *BoxLayout) AddBox(b *Box) {
	l.Add(b)
	l.boxes = append(l.boxes, b)
	l.UpdateLayout()
}

// InsertBox inserts a box at the given index in the layout order.
func (l *BoxLayout) InsertBox(i int, b *Box) {
	if i < 0 || i > len(l.boxes) {
		panic("wicket: layout insert index out of range")
	}
	l.Add(b)
	l.boxes = append(l.boxes, nil)
	copy(l.boxes[i+1:], l.boxes[i:])
	l.boxes[i] = b
	l.UpdateLayout()
}

// RemoveBox removes a box from the layout and rearranges the rest.
func (l *BoxLayout) RemoveBox(b *Box) {
	for i, other := range l.boxes {
		if other == b {
			copy(l.boxes[i:], l.boxes[i+1:])
			l.boxes[len(l.boxes)-1] = nil
			l.boxes = l.boxes[:len(l.boxes)-1]
			l.Remove(b)
			l.UpdateLayout()
			return
		}
	}
	panic("wicket: box is not part of this layout")
}

// UpdateLayout recomputes the position of every box in the layout.
func (l *BoxLayout) UpdateLayout() {
	if len(l.boxes) == 0 {
		return
	}
	l.arrange()
	l.UpdateRect()
}

// BoxRow arranges boxes horizontally, left to right.
type BoxRow struct {
	*BoxLayout
}

// NewBoxRow creates a row of the given boxes.
func NewBoxRow(def BoxLayoutDefinition, boxes ...*Box) *BoxRow {
	r := &BoxRow{BoxLayout: newBoxLayout(def)}
	r.arrange = r.arrangeRow
	for _, b := range boxes {
		r.AddBox(b)
	}
	return r
}

func (r *BoxRow) arrangeRow() {
	tallest := 0.0
	for _, b := range r.boxes {
		if b.height > tallest {
			tallest = b.height
		}
	}

	x := 0.0
	for _, b := range r.boxes {
		b.X = x
		x += b.width + r.layoutDef.Spacing
		switch r.layoutDef.Alignment.Vertical {
		case AlignBottom:
			b.Y = 0
		case AlignCenterY:
			b.Y = tallest/2 - b.height/2
		case AlignTop:
			b.Y = tallest - b.height
		default:
			panic("wicket: invalid vertical alignment")
		}
	}
}

// BoxColumn arranges boxes vertically, bottom to top.
type BoxColumn struct {
	*BoxLayout
}

// NewBoxColumn creates a column of the given boxes.
func NewBoxColumn(def BoxLayoutDefinition, boxes ...*Box) *BoxColumn {
	c := &BoxColumn{BoxLayout: newBoxLayout(def)}
	c.arrange = c.arrangeColumn
	for _, b := range boxes {
		c.AddBox(b)
	}
	return c
}

func (c *BoxColumn) arrangeColumn() {
	widest := 0.0
	for _, b := range c.boxes {
		if b.width > widest {
			widest = b.width
		}
	}

	y := 0.0
	for _, b := range c.boxes {
		b.Y = y
		y += b.height + c.layoutDef.Spacing
		switch c.layoutDef.Alignment.Horizontal {
		case AlignLeft:
			b.X = 0
		case AlignCenterX:
			b.X = widest/2 - b.width/2
		case AlignRight:
			b.X = widest - b.width
		default:
			panic("wicket: invalid horizontal alignment")
		}
	}
}

// BuildRectangularGrid arranges boxes into a grid, filling from the
// bottom-left. The result is a column of rows when NumColumns is set, or a
// row of columns when only NumRows is set; the final row or column may be
// short. The definition is shared by the outer layout and every inner one.
func BuildRectangularGrid(def BoxLayoutDefinition, boxes []*Box) Layout {
	var (
		outerIsColumn bool
		perElement    int
		maxElements   int
	)
	switch {
	case def.NumColumns > 0:
		outerIsColumn = true
		perElement = def.NumColumns
		maxElements = def.NumRows
	case def.NumRows > 0:
		outerIsColumn = false
		perElement = def.NumRows
		maxElements = def.NumColumns
	default:
		panic("wicket: grid layout requires num columns or num rows")
	}
	if maxElements <= 0 {
		maxElements = len(boxes)
	}

	var elements []*Box
	for i := 0; i < maxElements; i++ {
		lo := i * perElement
		if lo >= len(boxes) {
			break
		}
		hi := min(lo+perElement, len(boxes))
		if outerIsColumn {
			elements = append(elements, NewBoxRow(def, boxes[lo:hi]...).Box)
		} else {
			elements = append(elements, NewBoxColumn(def, boxes[lo:hi]...).Box)
		}
	}

	if outerIsColumn {
		return NewBoxColumn(def, elements...)
	}
	return NewBoxRow(def, elements...)
}

// CreateBoxLayout builds the layout shape selected by the definition.
func CreateBoxLayout(def BoxLayoutDefinition, boxes []*Box) Layout {
	switch {
	case def.NumColumns == 0 && def.NumRows == 1:
		return NewBoxRow(def, boxes...)
	case def.NumColumns == 1 && def.NumRows == 0:
		return NewBoxColumn(def, boxes...)
	default:
		return BuildRectangularGrid(def, boxes)
	}
}
