package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAdjust(t *testing.T) {
	var p PanState

	_, ok := p.Adjusting()
	assert.False(t, ok)

	p.ToggleAdjust(1)
	i, ok := p.Adjusting()
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	// Toggling the same slot leaves adjust mode.
	p.ToggleAdjust(1)
	_, ok = p.Adjusting()
	assert.False(t, ok)
}

func TestToggleAdjustSwitchesSlots(t *testing.T) {
	var p PanState
	p.ToggleAdjust(0)
	p.ToggleAdjust(2)
	i, ok := p.Adjusting()
	assert.True(t, ok)
	assert.Equal(t, 2, i, "selecting another slot switches without an explicit off")
}

func TestPointerMoveInvertedAndScaled(t *testing.T) {
	var p PanState
	s := NewSlotSet()

	p.ToggleAdjust(0)
	p.PointerDown(0, 100, 100)

	// +10px right, +20px down -> focal moves left and up at 0.2 per px.
	s = p.PointerMove(0, 110, 120, s)
	assert.InDelta(t, 48, s[0].Focal.X, 1e-9)
	assert.InDelta(t, 46, s[0].Focal.Y, 1e-9)
}

func TestPointerMoveDeltasAreIncremental(t *testing.T) {
	var p PanState
	s := NewSlotSet()

	p.ToggleAdjust(0)
	p.PointerDown(0, 0, 0)

	// Two moves to the same point: the second has zero delta because the
	// anchor advanced on the first.
	s = p.PointerMove(0, 50, 0, s)
	first := s[0].Focal
	s = p.PointerMove(0, 50, 0, s)
	assert.Equal(t, first, s[0].Focal)

	// A third move continues from the new anchor.
	s = p.PointerMove(0, 60, 0, s)
	assert.InDelta(t, first.X-2, s[0].Focal.X, 1e-9)
}

func TestPointerMoveClampsPerAxis(t *testing.T) {
	var p PanState
	s := NewSlotSet()

	p.ToggleAdjust(0)
	p.PointerDown(0, 0, 0)

	// A huge drag pins X at 0 while Y stays in range.
	s = p.PointerMove(0, 1000, -10, s)
	assert.Equal(t, 0.0, s[0].Focal.X)
	assert.InDelta(t, 52, s[0].Focal.Y, 1e-9)
}

func TestPointerMoveRequiresDown(t *testing.T) {
	var p PanState
	s := NewSlotSet()
	p.ToggleAdjust(0)
	got := p.PointerMove(0, 10, 10, s)
	assert.Equal(t, s, got, "moves before a press are ignored")
}

func TestPointerDownIgnoredForOtherSlot(t *testing.T) {
	var p PanState
	s := NewSlotSet()
	p.ToggleAdjust(0)
	p.PointerDown(1, 5, 5)
	got := p.PointerMove(1, 20, 20, s)
	assert.Equal(t, s, got)
}

func TestPointerReleaseEndsDragNotAdjust(t *testing.T) {
	var p PanState
	s := NewSlotSet()

	p.ToggleAdjust(0)
	p.PointerDown(0, 0, 0)
	p.PointerRelease()

	got := p.PointerMove(0, 10, 10, s)
	assert.Equal(t, s, got, "release ends the drag")

	i, ok := p.Adjusting()
	assert.True(t, ok, "release keeps adjust mode on")
	assert.Equal(t, 0, i)

	// A fresh press resumes adjusting.
	p.PointerDown(0, 0, 0)
	got = p.PointerMove(0, 10, 0, s)
	assert.NotEqual(t, s, got)
}
