package editor

// Sensitivity scales pointer deltas into focal-point percentage moves.
// Smaller means finer control.
const Sensitivity = 0.2

// PanState is the focal-point controller: idle -> adjusting(i) -> idle, with
// a nested press-drag gesture while adjusting. Deltas accumulate from the
// previously recorded point, not the original press anchor, and the sign is
// inverted so the image content follows the pointer.
type PanState struct {
	adjusting int
	active    bool

	dragging bool
	anchorX  float64
	anchorY  float64
}

// ToggleAdjust enters or leaves adjust mode for slot i. Entering while
// another slot is adjusting implicitly leaves that one; at most one slot
// adjusts at a time.
func (p *PanState) ToggleAdjust(i int) {
	if i < 0 || i >= SlotCount {
		return
	}
	if p.active && p.adjusting == i {
		p.active = false
		p.dragging = false
		return
	}
	p.adjusting = i
	p.active = true
	p.dragging = false
}

// Adjusting reports the slot currently in adjust mode, if any.
func (p *PanState) Adjusting() (int, bool) {
	if !p.active {
		return 0, false
	}
	return p.adjusting, true
}

// PointerDown records the press anchor. Ignored unless slot i is the one
// being adjusted.
func (p *PanState) PointerDown(i int, x, y float64) {
	if !p.active || p.adjusting != i {
		return
	}
	p.dragging = true
	p.anchorX = x
	p.anchorY = y
}

// PointerMove applies one pointer-move to the set: the delta from the last
// recorded point pans the focal point against the drag direction, scaled by
// Sensitivity and clamped per axis. The anchor advances to the current
// point so deltas stay incremental.
func (p *PanState) PointerMove(i int, x, y float64, s SlotSet) SlotSet {
	if !p.dragging || !p.active || p.adjusting != i {
		return s
	}
	dx := x - p.anchorX
	dy := y - p.anchorY
	p.anchorX = x
	p.anchorY = y

	focal := s[i].Focal
	return s.WithFocal(i, focal.X-dx*Sensitivity, focal.Y-dy*Sensitivity)
}

// PointerRelease ends the drag-in-progress. It is wired to a global release
// listener, so it fires wherever the pointer is let go; adjust mode itself
// stays on until toggled off or another slot is selected.
func (p *PanState) PointerRelease() { p.dragging = false }
