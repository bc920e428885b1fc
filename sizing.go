package wicket

// UpdateRect re-resolves the box's size from its definition and, if the size
// changed, propagates the change through the tree.
func (b *Box) UpdateRect() {
	w, h := b.resolveSize()
	if w == b.width && h == b.height {
		return
	}
	b.width = w
	b.height = h
	b.onSizeChange()
}

// resolveSize computes the box's size. Fixed dimensions come straight from
// the definition; dynamic dimensions depend on the behaviour.
func (b *Box) resolveSize() (w, h float64) {
	w, h = b.def.Width, b.def.Height
	if !b.def.isDynamic() {
		return w, h
	}

	switch b.def.DynamicSizeBehaviour {
	case FitChildren:
		bounds := b.BoundingRectOfChildren()
		if w == DynamicSize {
			w = bounds.Width
		}
		if h == DynamicSize {
			h = bounds.Height
		}
	case MatchParent:
		if w == DynamicSize {
			if b.parent != nil {
				w = b.parent.width
			} else {
				w = 0
			}
		}
		if h == DynamicSize {
			if b.parent != nil {
				h = b.parent.height
			} else {
				h = 0
			}
		}
	default:
		panic("wicket: unknown dynamic size behaviour")
	}
	return w, h
}

// onSizeChange runs after the resolved size actually changed: local size
// hooks first, then the parent (a fit-children parent may need to grow or
// shrink), then every child (a match-parent child must follow).
func (b *Box) onSizeChange() {
	for _, fn := range b.sizeHooks {
		fn()
	}
	if b.parent != nil {
		b.parent.OnChildSizeChanged()
	}
	for _, c := range b.children {
		c.OnParentSizeChanged()
	}
}

// OnChildSizeChanged re-resolves this box if it sizes itself dynamically.
// Called by children whose resolved size changed.
func (b *Box) OnChildSizeChanged() {
	if b.def.isDynamic() {
		b.UpdateRect()
	}
}

// OnParentSizeChanged re-resolves this box if it sizes itself dynamically.
// Called by the parent whenever its own size may have changed.
func (b *Box) OnParentSizeChanged() {
	if b.def.isDynamic() {
		b.UpdateRect()
	}
}

// BoundingRectOfChildren returns the smallest rectangle, in this box's local
// space, covering every descendant box. Descendants that dynamically match
// their parent's size contribute zero size in the matched dimensions; their
// position still counts. Without this exclusion a match-parent child inside a
// fit-children parent would feed its own size back into the bound and the
// two could never settle.
func (b *Box) BoundingRectOfChildren() Rect {
	var bounds *Rect
	b.accumulateDescendantBounds(&bounds)
	if bounds == nil {
		return Rect{}
	}
	lx, ly := b.PointToLocal(bounds.X, bounds.Y)
	return Rect{X: lx, Y: ly, Width: bounds.Width, Height: bounds.Height}
}

func (b *Box) accumulateDescendantBounds(bounds **Rect) {
	for _, c := range b.children {
		r := c.WorldRect()
		if c.def.DynamicSizeBehaviour == MatchParent {
			if c.def.Width == DynamicSize {
				r.Width = 0
			}
			if c.def.Height == DynamicSize {
				r.Height = 0
			}
		}
		if *bounds == nil {
			u := r
			*bounds = &u
		} else {
			u := (*bounds).Union(r)
			*bounds = &u
		}
		c.accumulateDescendantBounds(bounds)
	}
}
