// Package editor implements the admin product editor: the four-slot image
// composition model, its drag-reorder and focal-point controllers, the
// product draft, and the session that assembles everything into a persisted
// record. The package is pure domain logic; transport and storage are
// injected.
package editor

import "github.com/google/uuid"

// SlotCount is fixed: one main image (index 0) plus three additional.
const SlotCount = 4

// Point is a focal-point coordinate: percentage offsets into the source
// image, each axis in [0,100].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultFocal centers the crop.
var DefaultFocal = Point{X: 50, Y: 50}

// StagedFile is an in-memory image payload pending upload.
type StagedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ImageSlot is one position in the composition. URL is either a resolved
// remote URL, a local data-URL preview (while File is staged), or empty.
type ImageSlot struct {
	ID    string
	URL   string
	File  *StagedFile
	Focal Point
}

// Empty reports whether the slot holds no image.
func (s ImageSlot) Empty() bool { return s.URL == "" }

// SlotSet is the ordered composition of exactly SlotCount slots. All
// mutations are value operations returning a replacement set; the length
// never changes.
type SlotSet [SlotCount]ImageSlot

// NewSlotSet returns four empty slots with fresh ids and centered focal
// points.
func NewSlotSet() SlotSet {
	var set SlotSet
	for i := range set {
		set[i] = ImageSlot{ID: uuid.NewString(), Focal: DefaultFocal}
	}
	return set
}

// WithImage stages a file at index with its preview URL. The slot gets a new
// id and its focal point resets to center, discarding any prior adjustment.
// Out-of-range indexes are a no-op.
func (s SlotSet) WithImage(index int, file *StagedFile, previewURL string) SlotSet {
	if index < 0 || index >= SlotCount {
		return s
	}
	s[index] = ImageSlot{
		ID:    uuid.NewString(),
		URL:   previewURL,
		File:  file,
		Focal: DefaultFocal,
	}
	return s
}

// Cleared empties the slot at index, keeping its id.
func (s SlotSet) Cleared(index int) SlotSet {
	if index < 0 || index >= SlotCount {
		return s
	}
	s[index] = ImageSlot{ID: s[index].ID, Focal: DefaultFocal}
	return s
}

// Reordered removes the slot at from and reinserts it at to, shifting the
// slots in between. No-op when from == to or either index is out of range.
func (s SlotSet) Reordered(from, to int) SlotSet {
	if from == to || from < 0 || from >= SlotCount || to < 0 || to >= SlotCount {
		return s
	}
	moved := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = moved
	return s
}

// WithFocal replaces the focal point at index, clamping each axis to
// [0,100] independently.
func (s SlotSet) WithFocal(index int, x, y float64) SlotSet {
	if index < 0 || index >= SlotCount {
		return s
	}
	s[index].Focal = Point{X: clamp(x, 0, 100), Y: clamp(y, 0, 100)}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HydrateSlots builds a SlotSet from a persisted record: main image in slot
// 0, additional images in slots 1..3. Missing slots are padded empty; extra
// additional images beyond three are silently dropped, matching the store's
// shape.
func HydrateSlots(rec Record) SlotSet {
	set := NewSlotSet()
	set[0].URL = rec.Image
	set[0].Focal = clampPoint(rec.ImagePositions.Main)
	for i := 0; i < SlotCount-1 && i < len(rec.AdditionalImages); i++ {
		set[i+1].URL = rec.AdditionalImages[i]
		if i < len(rec.ImagePositions.Additional) {
			set[i+1].Focal = clampPoint(rec.ImagePositions.Additional[i])
		}
	}
	return set
}

// clampPoint sanitizes a stored point. Defaulting of absent positions is the
// store adapter's job; here a point is only forced back into range.
func clampPoint(p Point) Point {
	return Point{X: clamp(p.X, 0, 100), Y: clamp(p.Y, 0, 100)}
}
