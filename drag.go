package wicket

// SnapBoxDefinition describes a SnapBox.
//
// CanReceive overrides the acceptance test for incoming draggable boxes;
// the default accepts only while unoccupied. OnReceive and OnRelease fire
// when a draggable box snaps on and off.
type SnapBoxDefinition struct {
	BoxDefinition
	CanReceive func(*DraggableBox) bool
	OnReceive  func(*DraggableBox)
	OnRelease  func(*DraggableBox)
}

// SnapBox is a Box that a DraggableBox dragged over it snaps to, aligning
// centers. Snap boxes are single occupancy: a second draggable box cannot
// snap on until the first releases.
type SnapBox struct {
	*Box

	def      SnapBoxDefinition
	occupant *DraggableBox
}

// NewSnapBox creates a snap box.
func NewSnapBox(def SnapBoxDefinition) *SnapBox {
	def.BoxDefinition.validate()
	return &SnapBox{Box: NewBox(def.BoxDefinition), def: def}
}

// Occupant returns the draggable box currently snapped here, or nil.
func (sb *SnapBox) Occupant() *DraggableBox { return sb.occupant }

// Occupied reports whether a draggable box is currently snapped here.
func (sb *SnapBox) Occupied() bool { return sb.occupant != nil }

// CanReceiveBox reports whether the given draggable box may snap here.
func (sb *SnapBox) CanReceiveBox(db *DraggableBox) bool {
	if sb.def.CanReceive != nil {
		return sb.def.CanReceive(db)
	}
	return !sb.Occupied()
}

// receive marks the snap box occupied and fires OnReceive.
func (sb *SnapBox) receive(db *DraggableBox) {
	sb.occupant = db
	if sb.def.OnReceive != nil {
		sb.def.OnReceive(db)
	}
}

// release clears the occupant and fires OnRelease.
func (sb *SnapBox) release(db *DraggableBox) {
	sb.occupant = nil
	if sb.def.OnRelease != nil {
		sb.def.OnRelease(db)
	}
}

// DraggableBoxDefinition describes a draggable box.
//
// With SnapBoxes set, dragging over one of them aligns centers. With
// SnapOnRelease also set, ending a drag away from any snap box springs the
// box back to the last one; SnapBoxes must then be non-empty.
//
// BoundingBox, if set, confines the drag target to that box's area. The
// comparison happens in world space, so the bounding box need not be an
// ancestor of the draggable box.
//
// DragParent makes dragging move the parent instead of the box itself,
// which also moves this box since its coordinates originate at the parent.
// Window title bars use this.
type DraggableBoxDefinition struct {
	MouseBoxDefinition
	SnapBoxes     []*SnapBox
	SnapOnRelease bool
	BoundingBox   *Box
	DragParent    bool
}

// DraggableBox is a MouseBox that moves its drag target while dragged.
type DraggableBox struct {
	*MouseBox

	dragDef DraggableBoxDefinition

	originalOnPress   MouseClickCallback
	originalOnRelease MouseClickCallback
	originalOnDrag    MouseDragCallback

	snappedTo *SnapBox
	// Accumulated pointer motion since the drag started or last left a
	// snap box. While snapped this holds the negated center-alignment
	// vector, so dragging right at a snap boundary toggles on and off
	// instead of sticking.
	dragRecord Vec2
}

// NewDraggableBox creates a draggable box. Panics if SnapOnRelease is set
// without snap boxes.
func NewDraggableBox(def DraggableBoxDefinition) *DraggableBox {
	if def.SnapOnRelease && len(def.SnapBoxes) == 0 {
		panic("wicket: snap-on-release requires snap boxes")
	}
	db := &DraggableBox{
		dragDef:           def,
		originalOnPress:   def.OnPress,
		originalOnRelease: def.OnRelease,
		originalOnDrag:    def.OnDrag,
	}
	mdef := def.MouseBoxDefinition
	mdef.OnPress = db.startDragging
	mdef.OnRelease = db.stopDragging
	mdef.OnDrag = db.handleDragEvent
	db.MouseBox = NewMouseBox(mdef)

	// Drag continuation must never depend on hit-testing; only the
	// dragging flag gates it.
	db.shouldDrag = db.Dragging
	// A killed box must not keep a snap box occupied. SetZValue also exits
	// and re-enters, so only a real kill forces the release; snap-on-release
	// reservation does not survive the box's death.
	db.exitHooks = append(db.exitHooks, func() {
		if db.killed && db.snappedTo != nil {
			sb := db.snappedTo
			db.snappedTo = nil
			sb.release(db)
		}
	})
	if def.DragParent {
		db.shouldPress = func(MouseButton) bool { return db.dragTarget() != nil }
		db.shouldRelease = func(buttons MouseButton) bool {
			return db.dragTarget() != nil && db.pressed.Intersects(buttons)
		}
	}
	return db
}

// DragDefinition returns the draggable definition.
func (db *DraggableBox) DragDefinition() DraggableBoxDefinition { return db.dragDef }

// SnappedTo returns the snap box this box currently occupies, or nil.
func (db *DraggableBox) SnappedTo() *SnapBox { return db.snappedTo }

// dragTarget is the box moved by dragging: the parent in DragParent mode,
// otherwise this box itself.
func (db *DraggableBox) dragTarget() *Box {
	if db.dragDef.DragParent {
		return db.parent
	}
	return db.Box
}

// moveDragTarget shifts the drag target by delta, clamped to the bounding
// box if one is configured.
func (db *DraggableBox) moveDragTarget(delta Vec2) {
	target := db.dragTarget()
	proposed := Vec2{target.X + delta.X, target.Y + delta.Y}
	if db.dragDef.BoundingBox != nil {
		proposed = db.clampToBoundary(target, proposed)
	}
	target.X = proposed.X
	target.Y = proposed.Y
}

// clampToBoundary adjusts a proposed target position (in the target's
// parent space) so the target stays inside the bounding box, compared in
// world space.
func (db *DraggableBox) clampToBoundary(target *Box, proposed Vec2) Vec2 {
	wx, wy := proposed.X, proposed.Y
	if target.parent != nil {
		wx, wy = target.parent.PointToWorld(proposed.X, proposed.Y)
	}
	boundary := db.dragDef.BoundingBox.WorldRect()

	if diff := wx - boundary.X; diff < 0 {
		proposed.X -= diff
	} else if diff := wx + target.width - (boundary.X + boundary.Width); diff > 0 {
		proposed.X -= diff
	}
	if diff := wy - boundary.Y; diff < 0 {
		proposed.Y -= diff
	} else if diff := wy + target.height - (boundary.Y + boundary.Height); diff > 0 {
		proposed.Y -= diff
	}
	return proposed
}

func (db *DraggableBox) startDragging(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	db.StartDragging()
	db.dragRecord = Vec2{}
	if db.originalOnPress != nil {
		db.originalOnPress(box, x, y, buttons, mods)
	}
	return EventHandled
}

func (db *DraggableBox) stopDragging(box *MouseBox, x, y float64, buttons MouseButton, mods KeyModifiers) EventResult {
	db.StopDragging()
	if db.dragDef.SnapOnRelease && db.snappedTo != nil {
		db.dragRecord = Vec2{}
		db.alignWithSnapBox(db.snappedTo)
	}
	if db.originalOnRelease != nil {
		db.originalOnRelease(box, x, y, buttons, mods)
	}
	return EventHandled
}

func (db *DraggableBox) handleDragEvent(box *MouseBox, x, y, dx, dy float64, buttons MouseButton, mods KeyModifiers) EventResult {
	if len(db.dragDef.SnapBoxes) == 0 {
		db.moveDragTarget(Vec2{dx, dy})
	} else {
		db.dragRecord.X += dx
		db.dragRecord.Y += dy
		// Move by the whole accumulated record, not just the delta.
		// If we are still over the current snap box the alignment below
		// moves us straight back; if we escaped, the record is exactly
		// the displacement the pointer earned since snapping.
		db.moveDragTarget(db.dragRecord)

		snapped := false
		for _, sb := range db.dragDef.SnapBoxes {
			if sb.killed || sb.stage == nil {
				continue
			}
			if (sb == db.snappedTo || sb.CanReceiveBox(db)) &&
				db.WorldRect().Intersects(sb.WorldRect()) {
				db.SnapTo(sb)
				snapped = true
				break
			}
		}
		if !snapped {
			db.dragRecord = Vec2{}
			db.UnsnapIfSnapped()
		}
	}

	if db.originalOnDrag != nil {
		db.originalOnDrag(box, x, y, dx, dy, buttons, mods)
	}
	return EventHandled
}

// SnapTo snaps this box to the given snap box, aligning centers. Receive
// and release notifications fire only when the target actually changes;
// re-snapping to the current target just re-aligns.
func (db *DraggableBox) SnapTo(sb *SnapBox) {
	if db.snappedTo != sb {
		if db.snappedTo != nil {
			db.snappedTo.release(db)
		}
		db.snappedTo = sb
		sb.receive(db)
	}
	db.alignWithSnapBox(sb)
}

// UnsnapIfSnapped releases the current snap box, if any. No-op for
// snap-on-release boxes, which reserve their target to spring back to.
// Does not move the box.
func (db *DraggableBox) UnsnapIfSnapped() {
	if db.dragDef.SnapOnRelease {
		return
	}
	if db.snappedTo != nil {
		db.snappedTo.release(db)
		db.snappedTo = nil
	}
}

func (db *DraggableBox) alignWithSnapBox(sb *SnapBox) {
	alignment := db.VectorBetweenAnchors(sb.Box, CenterCenter, CenterCenter)
	db.moveDragTarget(alignment)
	if db.snappedTo != nil {
		db.dragRecord = alignment.Neg()
	}
}
