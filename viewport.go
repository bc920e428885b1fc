package wicket

// ViewPortBox shows only a movable rectangular window onto its children.
//
// The viewport itself is a child box of this holder, kept at high z so
// anything added to it (a drag handle, say) gets events before the content
// it floats over. Content added with Add is drawn clipped to the viewport's
// on-screen area, and any mouse-handling content only responds while the
// cursor is inside the viewport, so invisible widgets cannot be clicked.
type ViewPortBox struct {
	*Box

	viewport *Box
}

// NewViewPortBox creates a viewport of the given definition. The definition
// describes the visible window; the holder box fits its children.
func NewViewPortBox(def BoxDefinition) *ViewPortBox {
	def.validate()
	v := &ViewPortBox{
		Box:      NewBox(BoxDefinition{Width: DynamicSize, Height: DynamicSize}),
		viewport: NewBox(def),
	}
	v.Box.clip = v.viewport
	v.Box.AddZ(v.viewport, 100)
	return v
}

// Viewport returns the box defining the visible window. Move it to pan the
// view over the content.
func (v *ViewPortBox) Viewport() *Box { return v.viewport }

// Add adds content that is only visible, and only interactive, within the
// viewport window.
func (v *ViewPortBox) Add(child *Box) { v.AddZ(child, 0) }

// AddZ adds content at the given z. Every mouse-handling box in the child's
// subtree is filtered to the viewport area.
func (v *ViewPortBox) AddZ(child *Box, z int) {
	v.Box.AddZ(child, z)
	v.filterMouseBoxes(child)
}

func (v *ViewPortBox) filterMouseBoxes(b *Box) {
	if b.mouse != nil {
		b.mouse.CoordFilter = v.viewport.ContainsCoord
	}
	for _, c := range b.children {
		v.filterMouseBoxes(c)
	}
}

// AddToViewport adds a child to the viewport window itself rather than the
// clipped content, e.g. a DraggableBox that pans the view.
func (v *ViewPortBox) AddToViewport(child *Box) { v.viewport.Add(child) }

// BoxIsVisible reports whether the given box overlaps the viewport window.
// Only content under this ViewPortBox is actually clipped by it.
func (v *ViewPortBox) BoxIsVisible(b *Box) bool {
	return b.WorldRect().Intersects(v.viewport.WorldRect())
}
