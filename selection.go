package wicket

// SelectableBoxDefinition describes a box that a SelectionDrawingBox can
// highlight and select. Callbacks receive the selection rect that caused
// the change, or nil when the state was set directly.
//
// AdditiveModifiers is a mask of modifiers that make a new selection add to
// the current one instead of replacing it; holding any one of them is
// enough. Zero means every new selection replaces the old.
type SelectableBoxDefinition struct {
	BoxDefinition
	OnHighlight   func(*MouseDefinedRect)
	OnUnhighlight func(*MouseDefinedRect)
	OnSelect      func(*MouseDefinedRect)
	OnDeselect    func(*MouseDefinedRect)

	// OnNewSelectionStart overrides what happens to an already-selected
	// box when a fresh selection begins. Return whether the box remains
	// selected. The default deselects unless an additive modifier is
	// held.
	OnNewSelectionStart func(*MouseDefinedRect) bool

	AdditiveModifiers KeyModifiers
}

// SelectableBox is a box that can be rubber-band selected. Add it to any
// box to make that area selectable.
type SelectableBox struct {
	*Box

	selDef      SelectableBoxDefinition
	selected    bool
	highlighted bool
}

// NewSelectableBox creates a selectable box.
func NewSelectableBox(def SelectableBoxDefinition) *SelectableBox {
	def.BoxDefinition.validate()
	sb := &SelectableBox{Box: NewBox(def.BoxDefinition), selDef: def}
	sb.Box.selectable = sb
	return sb
}

// SelectableDefinition returns the selectable definition.
func (sb *SelectableBox) SelectableDefinition() SelectableBoxDefinition { return sb.selDef }

// Selected reports whether the box is currently selected.
func (sb *SelectableBox) Selected() bool { return sb.selected }

// Highlighted reports whether the box is inside an in-progress selection.
func (sb *SelectableBox) Highlighted() bool { return sb.highlighted }

// SetSelected sets the selection state directly, firing the select or
// deselect callback on a change.
func (sb *SelectableBox) SetSelected(selected bool) {
	if selected && !sb.selected {
		sb.doSelect(nil)
	} else if !selected && sb.selected {
		sb.deselect(nil)
	}
}

// SetHighlighted sets the highlight state directly, firing the highlight
// or unhighlight callback on a change.
func (sb *SelectableBox) SetHighlighted(highlighted bool) {
	if highlighted && !sb.highlighted {
		sb.highlight(nil)
	} else if !highlighted && sb.highlighted {
		sb.unhighlight(nil)
	}
}

func (sb *SelectableBox) highlight(rect *MouseDefinedRect) {
	sb.highlighted = true
	if sb.selDef.OnHighlight != nil {
		sb.selDef.OnHighlight(rect)
	}
}

func (sb *SelectableBox) unhighlight(rect *MouseDefinedRect) {
	sb.highlighted = false
	if sb.selDef.OnUnhighlight != nil {
		sb.selDef.OnUnhighlight(rect)
	}
}

func (sb *SelectableBox) doSelect(rect *MouseDefinedRect) {
	sb.selected = true
	if sb.selDef.OnSelect != nil {
		sb.selDef.OnSelect(rect)
	}
}

func (sb *SelectableBox) deselect(rect *MouseDefinedRect) {
	sb.selected = false
	if sb.selDef.OnDeselect != nil {
		sb.selDef.OnDeselect(rect)
	}
}

// newSelectionStarted notifies an already-selected box that a fresh
// selection is beginning; returns whether it remains selected.
func (sb *SelectableBox) newSelectionStarted(rect *MouseDefinedRect) bool {
	if sb.selDef.OnNewSelectionStart != nil {
		return sb.selDef.OnNewSelectionStart(rect)
	}
	if rect.Modifiers&sb.selDef.AdditiveModifiers == 0 {
		sb.deselect(rect)
		return false
	}
	return true
}

// collectSelectable gathers every SelectableBox in the subtree.
func collectSelectable(b *Box, buf []*SelectableBox) []*SelectableBox {
	if b.selectable != nil {
		buf = append(buf, b.selectable)
	}
	for _, c := range b.children {
		buf = collectSelectable(c, buf)
	}
	return buf
}

// SelectionDrawingBox lets the user drag out a rubber-band rectangle that
// highlights and then selects every SelectableBox it touches.
//
// The selectable set is cached when a drawing starts; boxes created mid-drag
// are missed, which is a deliberate trade for not re-walking the tree on
// every pointer move.
type SelectionDrawingBox struct {
	*RectDrawingBox

	cache   []*SelectableBox
	pending map[*SelectableBox]struct{}
	current map[*SelectableBox]struct{}
}

// NewSelectionDrawingBox creates a selection drawing box. The definition's
// drawing callbacks are replaced with the selection machinery.
func NewSelectionDrawingBox(def RectDrawingBoxDefinition) *SelectionDrawingBox {
	sb := &SelectionDrawingBox{
		pending: make(map[*SelectableBox]struct{}),
		current: make(map[*SelectableBox]struct{}),
	}
	def.OnStart = sb.cacheSelectableBoxes
	def.OnChange = sb.handleSelectionChange
	def.OnComplete = sb.handleSelectionComplete
	sb.RectDrawingBox = NewRectDrawingBox(def)
	return sb
}

// CurrentSelection returns the boxes in the completed selection.
func (sb *SelectionDrawingBox) CurrentSelection() []*SelectableBox {
	out := make([]*SelectableBox, 0, len(sb.current))
	for b := range sb.current {
		out = append(out, b)
	}
	return out
}

func (sb *SelectionDrawingBox) cacheSelectableBoxes(rect *MouseDefinedRect) {
	sb.cache = sb.cache[:0]
	if sb.stage != nil {
		sb.cache = collectSelectable(sb.stage.root, sb.cache)
	}
	sb.pending = make(map[*SelectableBox]struct{})

	// Boxes from the previous completed selection may deselect themselves
	// now that a new selection is starting.
	for b := range sb.current {
		if !b.newSelectionStarted(rect) {
			delete(sb.current, b)
		}
	}
}

func (sb *SelectionDrawingBox) intersecting(rect *MouseDefinedRect) map[*SelectableBox]struct{} {
	world := rect.AsWorldRect()
	out := make(map[*SelectableBox]struct{})
	for _, b := range sb.cache {
		if b.stage != nil && b.WorldRect().Intersects(world) {
			out[b] = struct{}{}
		}
	}
	return out
}

func (sb *SelectionDrawingBox) handleSelectionChange(rect *MouseDefinedRect) {
	intersected := sb.intersecting(rect)

	for b := range intersected {
		if _, ok := sb.pending[b]; !ok {
			sb.pending[b] = struct{}{}
			if !b.selected {
				b.highlight(rect)
			}
		}
	}
	for b := range sb.pending {
		if _, ok := intersected[b]; !ok {
			delete(sb.pending, b)
			if !b.selected {
				b.unhighlight(rect)
			}
		}
	}
}

func (sb *SelectionDrawingBox) handleSelectionComplete(rect *MouseDefinedRect) {
	intersected := sb.intersecting(rect)

	for b := range sb.pending {
		if _, ok := intersected[b]; !ok && !b.selected {
			b.unhighlight(rect)
		}
	}
	sb.pending = make(map[*SelectableBox]struct{})

	for b := range intersected {
		sb.current[b] = struct{}{}
	}
	for b := range sb.current {
		if !b.selected {
			b.doSelect(rect)
		}
	}
}
