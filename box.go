package wicket

// DynamicSizeBehaviour selects how a dynamic Box dimension is resolved.
type DynamicSizeBehaviour uint8

const (
	// FitChildren sizes the box to the bounding rect of its descendants.
	FitChildren DynamicSizeBehaviour = iota
	// MatchParent copies the parent's resolved size; a box with no parent
	// resolves to zero.
	MatchParent
)

// BoxDefinition is the immutable style and behavior description of a Box.
// Width or Height of DynamicSize opt into dynamic sizing; fixed dimensions
// are used verbatim. A nil BackgroundColor draws no background.
//
// Definitions are values. Replacing one via SetDefinition never mutates a
// definition shared with another box.
type BoxDefinition struct {
	Width, Height        float64
	DynamicSizeBehaviour DynamicSizeBehaviour
	BackgroundColor      *Color
}

func (d BoxDefinition) validate() {
	if d.DynamicSizeBehaviour != FitChildren && d.DynamicSizeBehaviour != MatchParent {
		panic("wicket: unknown dynamic size behaviour")
	}
}

// isDynamic reports whether at least one dimension is resolved at runtime.
func (d BoxDefinition) isDynamic() bool {
	return d.Width == DynamicSize || d.Height == DynamicSize
}

// Box is the fundamental scene node: a positioned rectangle with z-ordered
// children, a resolved size, and an enter/exit lifecycle against a Stage.
//
// Position (X, Y) is in the parent's coordinate space, measuring the
// bottom-left corner of the box. Size is resolved from the definition by
// UpdateRect and cached.
type Box struct {
	X, Y float64

	def           BoxDefinition
	width, height float64

	parent   *Box
	children []*Box
	z        int

	stage  *Stage
	killed bool

	background *Color

	// Capability slots. A plain Box has none; wrappers such as MouseBox
	// and KeyboardHandler install themselves here so the Stage can route
	// events without the box knowing the wrapper types.
	mouse      *MouseBox
	keys       *KeyboardHandler
	selectable *SelectableBox
	drawer     Drawer
	// clip, when set, restricts drawing of this box's children to that
	// box's on-screen area. Installed by ViewPortBox.
	clip *Box

	enterHooks []func()
	exitHooks  []func()
	sizeHooks  []func()
}

// NewBox creates a box from the given definition and resolves its initial
// size. Panics if the definition is invalid.
func NewBox(def BoxDefinition) *Box {
	def.validate()
	b := &Box{def: def}
	b.UpdateRect()
	return b
}

// Definition returns the box's current definition.
func (b *Box) Definition() BoxDefinition { return b.def }

// SetDefinition replaces the definition and re-resolves the size.
func (b *Box) SetDefinition(def BoxDefinition) {
	def.validate()
	b.def = def
	b.UpdateRect()
}

// SetSize fixes the definition to the given dimensions and re-resolves.
func (b *Box) SetSize(width, height float64) {
	b.def.Width = width
	b.def.Height = height
	b.UpdateRect()
}

// Width returns the resolved width.
func (b *Box) Width() float64 { return b.width }

// Height returns the resolved height.
func (b *Box) Height() float64 { return b.height }

// Rect returns the resolved rectangle in local space (origin at 0,0).
func (b *Box) Rect() Rect { return Rect{Width: b.width, Height: b.height} }

// Parent returns the parent box, or nil for a root or detached box.
func (b *Box) Parent() *Box { return b.parent }

// Children returns the z-ordered child slice. Callers must not modify it.
func (b *Box) Children() []*Box { return b.children }

// Stage returns the stage this box is currently entered on, or nil.
func (b *Box) Stage() *Stage { return b.stage }

// Killed reports whether the box has been permanently destroyed.
func (b *Box) Killed() bool { return b.killed }

// SetBackground overrides the definition's background color at runtime.
func (b *Box) SetBackground(c Color) {
	b.background = &c
}

// ClearBackground removes any runtime background override.
func (b *Box) ClearBackground() {
	b.background = nil
}

// backgroundColor returns the effective background, or nil for none.
func (b *Box) backgroundColor() *Color {
	if b.background != nil {
		return b.background
	}
	return b.def.BackgroundColor
}

// Add appends child at z-order zero.
func (b *Box) Add(child *Box) {
	b.addChild(child, 0, false)
}

// AddZ appends child at the given z-order. Larger z draws later and receives
// events earlier. Ties keep insertion order.
func (b *Box) AddZ(child *Box, z int) {
	b.addChild(child, z, false)
}

// AddNoResize appends child without re-resolving this box's dynamic size.
// Used when the caller is about to rearrange children and resize explicitly.
func (b *Box) AddNoResize(child *Box) {
	b.addChild(child, 0, true)
}

// AddZNoResize appends child at the given z-order without re-resolving.
func (b *Box) AddZNoResize(child *Box, z int) {
	b.addChild(child, z, true)
}

func (b *Box) addChild(child *Box, z int, noResize bool) {
	if child == nil {
		panic("wicket: cannot add nil child")
	}
	if child == b {
		panic("wicket: cannot add box to itself")
	}
	if b.killed || child.killed {
		panic("wicket: cannot add killed box")
	}
	for a := b; a != nil; a = a.parent {
		if a == child {
			panic("wicket: cannot add ancestor as child")
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child, true)
	}

	child.z = z
	i := len(b.children)
	for ; i > 0; i-- {
		if b.children[i-1].z <= z {
			break
		}
	}
	b.children = append(b.children, nil)
	copy(b.children[i+1:], b.children[i:])
	b.children[i] = child
	child.parent = b

	if b.stage != nil {
		child.enter(b.stage)
	}

	debugCheckTree(b)
	b.resizeAndNotify(noResize)
}

// Remove detaches child from this box, exiting it from the stage.
func (b *Box) Remove(child *Box) {
	b.removeChild(child, false)
}

// RemoveNoResize detaches child without re-resolving this box's dynamic size.
func (b *Box) RemoveNoResize(child *Box) {
	b.removeChild(child, true)
}

func (b *Box) removeChild(child *Box, noResize bool) {
	i := -1
	for j, c := range b.children {
		if c == child {
			i = j
			break
		}
	}
	if i < 0 {
		panic("wicket: box is not a child of this box")
	}

	copy(b.children[i:], b.children[i+1:])
	b.children[len(b.children)-1] = nil
	b.children = b.children[:len(b.children)-1]

	if child.stage != nil {
		child.exit()
	}
	child.parent = nil

	b.resizeAndNotify(noResize)
}

// resizeAndNotify applies the post-mutation sizing protocol: re-resolve this
// box if it is dynamically sized, then tell every remaining child the parent
// size may have changed. The notification runs even when this box is fixed
// size, so a newly attached match-parent child picks up its size immediately.
func (b *Box) resizeAndNotify(noResize bool) {
	if !noResize && b.def.isDynamic() {
		b.UpdateRect()
	}
	for _, c := range b.children {
		c.OnParentSizeChanged()
	}
}

// Kill permanently destroys the box and its subtree, detaching it from its
// parent and stage. A killed box must not be reused.
//
// The subtree is marked killed before it exits, so exit hooks can tell a
// kill apart from a plain removal or a z-order re-add.
func (b *Box) Kill() {
	if b.killed {
		return
	}
	b.kill()
	if b.parent != nil {
		b.parent.Remove(b)
	} else if b.stage != nil {
		b.exit()
	}
}

func (b *Box) kill() {
	b.killed = true
	for _, c := range b.children {
		c.kill()
	}
}

// enter attaches the subtree to a stage. Handlers push parent-first, so
// children end up nearer the top of the handler stack and receive events
// before their parents.
func (b *Box) enter(s *Stage) {
	b.stage = s
	if b.mouse != nil || b.keys != nil {
		s.pushHandler(b)
	}
	for _, fn := range b.enterHooks {
		fn()
	}
	for _, c := range b.children {
		c.enter(s)
	}
}

// exit detaches the subtree from its stage, unwinding in reverse of enter.
func (b *Box) exit() {
	for _, fn := range b.exitHooks {
		fn()
	}
	if b.stage != nil && (b.mouse != nil || b.keys != nil) {
		b.stage.removeHandler(b)
	}
	for _, c := range b.children {
		c.exit()
	}
	b.stage = nil
}

// ZValue returns the z-order of this box within its parent.
// Panics if the box has no parent.
func (b *Box) ZValue() int {
	if b.parent == nil {
		panic("wicket: box has no parent")
	}
	return b.z
}

// SetZValue moves the box to the given z-order within its parent by removing
// and re-adding it. The box exits and re-enters the stage in the process, so
// calling this from inside event dispatch can skip handlers for the rest of
// the current event; consume the event and use Stage.RequestRedispatch
// instead.
func (b *Box) SetZValue(z int) {
	if b.parent == nil {
		panic("wicket: box has no parent")
	}
	p := b.parent
	p.removeChild(b, false)
	p.addChild(b, z, false)
}

// SetZTop raises the box above all of its current siblings. No-op if the box
// is already on top.
func (b *Box) SetZTop() {
	if b.parent == nil {
		panic("wicket: box has no parent")
	}
	siblings := b.parent.children
	if siblings[len(siblings)-1] == b {
		return
	}
	b.SetZValue(siblings[len(siblings)-1].z + 1)
}

// SetZBottom lowers the box below all of its current siblings. No-op if the
// box is already at the bottom.
func (b *Box) SetZBottom() {
	if b.parent == nil {
		panic("wicket: box has no parent")
	}
	siblings := b.parent.children
	if siblings[0] == b {
		return
	}
	b.SetZValue(siblings[0].z - 1)
}

// PointToWorld converts a point in this box's local space to world space.
func (b *Box) PointToWorld(x, y float64) (float64, float64) {
	for n := b; n != nil; n = n.parent {
		x += n.X
		y += n.Y
	}
	return x, y
}

// PointToLocal converts a point in world space to this box's local space.
func (b *Box) PointToLocal(x, y float64) (float64, float64) {
	for n := b; n != nil; n = n.parent {
		x -= n.X
		y -= n.Y
	}
	return x, y
}

// WorldRect returns the box's rectangle in world space.
func (b *Box) WorldRect() Rect {
	x, y := b.PointToWorld(0, 0)
	return Rect{X: x, Y: y, Width: b.width, Height: b.height}
}

// ContainsCoord reports whether the world-space point lies inside the box.
func (b *Box) ContainsCoord(x, y float64) bool {
	return b.WorldRect().Contains(x, y)
}

// AnchorCoord returns the world-space position of one of the box's anchors.
func (b *Box) AnchorCoord(anchor PositionalAnchor) Vec2 {
	p := anchor.CoordInRect(b.width, b.height)
	x, y := b.PointToWorld(p.X, p.Y)
	return Vec2{x, y}
}

// VectorBetweenAnchors returns the world-space vector from this box's anchor
// to the other box's anchor.
func (b *Box) VectorBetweenAnchors(other *Box, selfAnchor, otherAnchor PositionalAnchor) Vec2 {
	from := b.AnchorCoord(selfAnchor)
	to := other.AnchorCoord(otherAnchor)
	return Vec2{to.X - from.X, to.Y - from.Y}
}

// AlignAnchorWithOtherAnchor moves this box so that selfAnchor coincides with
// the other box's otherAnchor, then offsets it by spacing along the outward
// direction of selfAnchor. Spacing along a Center component is always zero.
func (b *Box) AlignAnchorWithOtherAnchor(other *Box, otherAnchor, selfAnchor PositionalAnchor, spacing float64) {
	v := b.VectorBetweenAnchors(other, selfAnchor, otherAnchor)
	d := selfAnchor.Direction()
	b.X += v.X + spacing*d.X
	b.Y += v.Y + spacing*d.Y
}

// AlignAnchorWithOtherAnchorOffset is like AlignAnchorWithOtherAnchor but
// applies an exact offset vector instead of directional spacing.
func (b *Box) AlignAnchorWithOtherAnchorOffset(other *Box, otherAnchor, selfAnchor PositionalAnchor, offset Vec2) {
	v := b.VectorBetweenAnchors(other, selfAnchor, otherAnchor)
	b.X += v.X + offset.X
	b.Y += v.Y + offset.Y
}
