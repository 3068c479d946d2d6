package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urls(s SlotSet) [SlotCount]string {
	var out [SlotCount]string
	for i, slot := range s {
		out[i] = slot.URL
	}
	return out
}

func setWithURLs(u ...string) SlotSet {
	s := NewSlotSet()
	for i, v := range u {
		s[i].URL = v
	}
	return s
}

func TestNewSlotSet(t *testing.T) {
	s := NewSlotSet()
	seen := map[string]bool{}
	for _, slot := range s {
		assert.True(t, slot.Empty())
		assert.Equal(t, DefaultFocal, slot.Focal)
		assert.NotEmpty(t, slot.ID)
		assert.False(t, seen[slot.ID], "slot ids must be unique")
		seen[slot.ID] = true
	}
}

func TestWithImageResetsFocalAndID(t *testing.T) {
	s := NewSlotSet()
	s = s.WithFocal(1, 10, 90)
	oldID := s[1].ID

	file := &StagedFile{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}}
	s = s.WithImage(1, file, "data:preview")

	assert.Equal(t, "data:preview", s[1].URL)
	assert.Same(t, file, s[1].File)
	assert.Equal(t, DefaultFocal, s[1].Focal, "staging a new image recenters the focal point")
	assert.NotEqual(t, oldID, s[1].ID, "staging a new image mints a new id")
}

func TestClearedKeepsID(t *testing.T) {
	s := setWithURLs("a", "b")
	id := s[1].ID
	s = s.Cleared(1)
	assert.True(t, s[1].Empty())
	assert.Equal(t, id, s[1].ID)
	assert.Equal(t, DefaultFocal, s[1].Focal)
}

func TestReordered(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     [SlotCount]string
	}{
		{"forward", 0, 2, [SlotCount]string{"b", "c", "a", "d"}},
		{"backward", 3, 1, [SlotCount]string{"a", "d", "b", "c"}},
		{"adjacent", 1, 2, [SlotCount]string{"a", "c", "b", "d"}},
		{"same index", 2, 2, [SlotCount]string{"a", "b", "c", "d"}},
		{"full span", 0, 3, [SlotCount]string{"b", "c", "d", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setWithURLs("a", "b", "c", "d")
			assert.Equal(t, tt.want, urls(s.Reordered(tt.from, tt.to)))
		})
	}
}

func TestReorderedCarriesFocalWithImage(t *testing.T) {
	s := setWithURLs("a", "b", "c", "d")
	s = s.WithFocal(0, 10, 20)
	id := s[0].ID

	s = s.Reordered(0, 3)

	require.Equal(t, "a", s[3].URL)
	assert.Equal(t, Point{X: 10, Y: 20}, s[3].Focal, "focal point travels with its image")
	assert.Equal(t, id, s[3].ID, "identity travels with its image")
}

func TestReorderedInverse(t *testing.T) {
	// Moving from->to then to->from restores the original order.
	for from := 0; from < SlotCount; from++ {
		for to := 0; to < SlotCount; to++ {
			s := setWithURLs("a", "b", "c", "d")
			got := s.Reordered(from, to).Reordered(to, from)
			assert.Equal(t, urls(s), urls(got), "from=%d to=%d", from, to)
		}
	}
}

func TestReorderedOutOfRange(t *testing.T) {
	s := setWithURLs("a", "b", "c", "d")
	assert.Equal(t, urls(s), urls(s.Reordered(-1, 2)))
	assert.Equal(t, urls(s), urls(s.Reordered(1, SlotCount)))
}

func TestWithFocalClamps(t *testing.T) {
	s := NewSlotSet()
	s = s.WithFocal(0, 1000, -50)
	assert.Equal(t, Point{X: 100, Y: 0}, s[0].Focal)

	s = s.WithFocal(0, 33.5, 66.25)
	assert.Equal(t, Point{X: 33.5, Y: 66.25}, s[0].Focal)
}

func TestHydrateSlots(t *testing.T) {
	rec := Record{
		Image:            "main.jpg",
		AdditionalImages: []string{"a1.jpg", "a2.jpg"},
		ImagePositions: ImagePositions{
			Main:       Point{X: 10, Y: 20},
			Additional: []Point{{X: 30, Y: 40}},
		},
	}
	s := HydrateSlots(rec)

	assert.Equal(t, "main.jpg", s[0].URL)
	assert.Equal(t, Point{X: 10, Y: 20}, s[0].Focal)
	assert.Equal(t, "a1.jpg", s[1].URL)
	assert.Equal(t, Point{X: 30, Y: 40}, s[1].Focal)
	assert.Equal(t, "a2.jpg", s[2].URL)
	assert.Equal(t, DefaultFocal, s[2].Focal, "missing stored position defaults to center")
	assert.True(t, s[3].Empty(), "missing additional image pads an empty slot")
}

func TestHydrateSlotsTruncatesExtras(t *testing.T) {
	rec := Record{
		Image:            "main.jpg",
		AdditionalImages: []string{"a1", "a2", "a3", "a4", "a5"},
	}
	s := HydrateSlots(rec)
	assert.Equal(t, [SlotCount]string{"main.jpg", "a1", "a2", "a3"}, urls(s))
}

func TestHydrateSlotsClampsStoredPoints(t *testing.T) {
	rec := Record{
		Image:          "main.jpg",
		ImagePositions: ImagePositions{Main: Point{X: 250, Y: -10}},
	}
	s := HydrateSlots(rec)
	assert.Equal(t, Point{X: 100, Y: 0}, s[0].Focal)
}
