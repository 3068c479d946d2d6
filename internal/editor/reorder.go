package editor

// DragState is the reorder controller: idle -> dragging(i) -> idle. It is
// deliberately decoupled from any input-event API; callers translate their
// toolkit's drag events into the three intent signals below.
type DragState struct {
	dragged int
	active  bool
}

// Begin starts dragging slot i. Starting a new drag silently replaces any
// drag already in progress (a single pointer drives the UI).
func (d *DragState) Begin(i int) {
	if i < 0 || i >= SlotCount {
		return
	}
	d.dragged = i
	d.active = true
}

// Over acknowledges hovering over slot j; required before a drop can land
// there. It never mutates state.
func (d *DragState) Over(j int) bool {
	return d.active && j >= 0 && j < SlotCount
}

// Drop completes the gesture onto slot j, returning the permuted set. When
// no drag is active or j is the dragged slot itself, the set is returned
// unchanged and ok is false. The drag ends either way.
func (d *DragState) Drop(j int, s SlotSet) (out SlotSet, ok bool) {
	if !d.active || j < 0 || j >= SlotCount {
		return s, false
	}
	from := d.dragged
	d.active = false
	if from == j {
		return s, false
	}
	return s.Reordered(from, j), true
}

// Dragging reports the active dragged index, if any.
func (d *DragState) Dragging() (int, bool) {
	if !d.active {
		return 0, false
	}
	return d.dragged, true
}

// Cancel ends any drag in progress without permuting.
func (d *DragState) Cancel() { d.active = false }
