package editor

import "context"

// ImagePositions mirrors the persisted positioning document: one focal point
// for the main image and one per additional image, index-aligned with
// AdditionalImages.
type ImagePositions struct {
	Main       Point   `json:"main"`
	Additional []Point `json:"additional"`
}

// Record is the persisted product shape the editor stages. The store owns
// the canonical copy; the editor only ever hands over a full candidate
// write.
type Record struct {
	ID               string
	Name             string
	Price            string
	Description      string
	Category         string
	Image            string
	AdditionalImages []string
	ImagePositions   ImagePositions
}

// Store is the document-store collaborator the editor submits to.
type Store interface {
	CreateRecord(ctx context.Context, rec Record) (id string, err error)
	UpdateRecord(ctx context.Context, id string, rec Record) error
}

// Uploader resolves every staged file in the set into a remote URL,
// preserving slot order and failing fast on the first error.
type Uploader interface {
	Resolve(ctx context.Context, slots SlotSet) (SlotSet, error)
}

// Previewer turns a staged file into a local preview URL (a data URL in
// practice) for display before the real upload happens on submit.
type Previewer interface {
	PreviewURL(file StagedFile) (string, error)
}
