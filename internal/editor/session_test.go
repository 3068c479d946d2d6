package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
)

type fakePreviewer struct {
	err   error
	calls int
}

func (f *fakePreviewer) PreviewURL(file StagedFile) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "data:preview/" + file.Name, nil
}

type fakeUploader struct {
	err     error
	calls   int
	block   chan struct{} // when set, Resolve waits until closed
	entered chan struct{} // when set, closed once Resolve starts
}

func (f *fakeUploader) Resolve(ctx context.Context, slots SlotSet) (SlotSet, error) {
	f.calls++
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return slots, f.err
	}
	for i := range slots {
		if slots[i].File != nil {
			slots[i].URL = "https://cdn.test/" + slots[i].File.Name
			slots[i].File = nil
		}
	}
	return slots, nil
}

type fakeStore struct {
	created []Record
	updated map[string]Record
	err     error
}

func (f *fakeStore) CreateRecord(ctx context.Context, rec Record) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, rec)
	return "new-id", nil
}

func (f *fakeStore) UpdateRecord(ctx context.Context, id string, rec Record) error {
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = map[string]Record{}
	}
	f.updated[id] = rec
	return nil
}

func newTestSession(t *testing.T) (*Session, *fakePreviewer, *fakeUploader, *fakeStore) {
	t.Helper()
	pv := &fakePreviewer{}
	up := &fakeUploader{}
	st := &fakeStore{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSession(pv, up, st, log), pv, up, st
}

func stageImage(t *testing.T, s *Session, index int, name string) {
	t.Helper()
	err := s.SetSlotImage(index, StagedFile{Name: name, ContentType: "image/jpeg", Data: []byte{0xFF}})
	require.NoError(t, err)
}

func TestStartCreateOpensBlankForm(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	st := s.State()
	assert.Equal(t, ViewList, st.View)

	s.StartCreate()
	st = s.State()
	assert.Equal(t, ViewForm, st.View)
	assert.False(t, st.Editing)
	assert.Equal(t, "Rs. ", st.Draft.Price)
	assert.Equal(t, "Bridal", st.Draft.Category)
	assert.Equal(t, -1, st.Adjusting)
	assert.Equal(t, -1, st.Dragging)
	assert.False(t, st.Dirty)
}

func TestFormOperationsRequireForm(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	assert.ErrorIs(t, s.SetField("name", "x"), ErrNotInForm)
	assert.ErrorIs(t, s.ClearSlot(0), ErrNotInForm)
	err := s.SetSlotImage(0, StagedFile{Name: "a.jpg"})
	assert.ErrorIs(t, err, ErrNotInForm)

	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotInForm)
}

func TestSetSlotImageStagesPreview(t *testing.T) {
	s, pv, _, _ := newTestSession(t)
	s.StartCreate()

	stageImage(t, s, 0, "main.jpg")

	st := s.State()
	assert.Equal(t, 1, pv.calls)
	assert.Equal(t, "data:preview/main.jpg", st.Slots[0].URL)
	assert.NotNil(t, st.Slots[0].File)
	assert.Equal(t, DefaultFocal, st.Slots[0].Focal)
	assert.True(t, st.Dirty)
}

func TestSetSlotImageRejectsUnreadableImage(t *testing.T) {
	s, pv, _, _ := newTestSession(t)
	pv.err = errors.New("bad image")
	s.StartCreate()

	err := s.SetSlotImage(0, StagedFile{Name: "broken.jpg"})
	require.Error(t, err)
	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
	assert.False(t, s.State().Dirty)
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	s, _, up, st := newTestSession(t)
	s.StartCreate()

	_, err := s.Submit(context.Background())
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Equal(t, "Please fill in Name, Price, and at least the Main Image.", ae.PublicMsg)
	assert.Contains(t, ae.Fields, "name")
	assert.Contains(t, ae.Fields, "price")
	assert.Contains(t, ae.Fields, "image")

	assert.Zero(t, up.calls, "validation failure must not upload")
	assert.Empty(t, st.created, "validation failure must not write")
	assert.Equal(t, ViewForm, s.State().View, "form stays open")
}

// A price left at the bare currency prefix is a blank price: the amount
// after "Rs. " is what validation requires.
func TestSubmitRejectsBarePricePrefix(t *testing.T) {
	s, _, up, _ := newTestSession(t)
	s.StartCreate()

	require.NoError(t, s.SetField("name", "rose gown"))
	stageImage(t, s, 0, "main.jpg")

	_, err := s.Submit(context.Background())
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Contains(t, ae.Fields, "price")
	assert.NotContains(t, ae.Fields, "name")
	assert.NotContains(t, ae.Fields, "image")
	assert.Zero(t, up.calls)
}

func TestSubmitCreate(t *testing.T) {
	s, _, up, st := newTestSession(t)
	s.StartCreate()

	require.NoError(t, s.SetField("name", "rose gown"))
	require.NoError(t, s.SetField("price", "14900"))
	require.NoError(t, s.SetField("category", "Modern"))
	stageImage(t, s, 0, "main.jpg")
	stageImage(t, s, 2, "side.jpg")

	rec, err := s.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, up.calls)
	require.Len(t, st.created, 1)
	got := st.created[0]

	assert.Equal(t, "new-id", rec.ID)
	assert.Equal(t, "Rose Gown", got.Name)
	assert.Equal(t, "Rs. 14900", got.Price)
	assert.Equal(t, "Modern", got.Category)
	assert.Equal(t, "https://cdn.test/main.jpg", got.Image)

	// Additional arrays keep their slot shape: always three entries, empty
	// markers where no image lives.
	assert.Equal(t, []string{"", "https://cdn.test/side.jpg", ""}, got.AdditionalImages)
	require.Len(t, got.ImagePositions.Additional, 3)
	assert.Equal(t, DefaultFocal, got.ImagePositions.Main)

	// Success returns to a fresh list view.
	post := s.State()
	assert.Equal(t, ViewList, post.View)
	assert.False(t, post.Dirty)
	assert.Equal(t, "Rs. ", post.Draft.Price)
}

func TestSubmitBindsFocalToSlot(t *testing.T) {
	s, _, _, st := newTestSession(t)
	s.StartCreate()

	require.NoError(t, s.SetField("name", "gown"))
	require.NoError(t, s.SetField("price", "100"))
	stageImage(t, s, 0, "main.jpg")
	stageImage(t, s, 1, "detail.jpg")

	// Pan the second slot, then move it to position three: the focal point
	// must follow the image into the persisted record.
	s.ToggleAdjust(1)
	s.PointerDown(1, 0, 0)
	s.PointerMove(1, -50, 0) // +10 on X
	s.PointerRelease()
	s.ToggleAdjust(1)

	s.BeginDrag(1)
	s.DragOver(3)
	s.Drop(3)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, st.created, 1)
	got := st.created[0]
	assert.Equal(t, []string{"", "", "https://cdn.test/detail.jpg"}, got.AdditionalImages)
	assert.Equal(t, Point{X: 60, Y: 50}, got.ImagePositions.Additional[2])
}

func TestSubmitUpdate(t *testing.T) {
	s, _, _, st := newTestSession(t)

	s.StartEdit(Record{
		ID:               "prod-1",
		Name:             "Noor Lehenga",
		Price:            "Rs. 32,900",
		Description:      "Elegant bridal lehenga.",
		Category:         "Bridal",
		Image:            "https://cdn.test/old.jpg",
		AdditionalImages: []string{"", "", ""},
	})

	require.NoError(t, s.SetField("price", "34900"))

	rec, err := s.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "prod-1", rec.ID)
	require.Contains(t, st.updated, "prod-1")
	assert.Equal(t, "Rs. 34900", st.updated["prod-1"].Price)
	assert.Equal(t, "https://cdn.test/old.jpg", st.updated["prod-1"].Image, "unchanged slots keep their resolved URLs")
	assert.Empty(t, st.created)
	assert.Equal(t, ViewList, s.State().View)
}

func TestStartEditHydration(t *testing.T) {
	s, _, _, _ := newTestSession(t)

	s.StartEdit(Record{
		ID:               "prod-2",
		Name:             "Velvet Gown",
		Price:            "Rs. 49,900",
		Category:         "Discontinued",
		Image:            "main.jpg",
		AdditionalImages: []string{"a.jpg"},
	})

	st := s.State()
	assert.Equal(t, ViewForm, st.View)
	assert.True(t, st.Editing)
	assert.Equal(t, "prod-2", st.EditID)
	assert.Equal(t, "Bridal", st.Draft.Category, "unknown stored category falls back to the first")
	assert.Equal(t, "main.jpg", st.Slots[0].URL)
	assert.Equal(t, "a.jpg", st.Slots[1].URL)
	assert.True(t, st.Slots[2].Empty())
	assert.False(t, st.Dirty)
}

func TestSubmitUploadFailureKeepsForm(t *testing.T) {
	s, _, up, st := newTestSession(t)
	up.err = apperr.UploadFailedErr("Image upload failed.", errors.New("boom"))
	s.StartCreate()

	require.NoError(t, s.SetField("name", "gown"))
	require.NoError(t, s.SetField("price", "100"))
	stageImage(t, s, 0, "main.jpg")

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.UploadFailed, apperr.KindOf(err))
	assert.Empty(t, st.created)

	post := s.State()
	assert.Equal(t, ViewForm, post.View, "failed submit keeps the form open")
	assert.True(t, post.Dirty)
	assert.False(t, post.Saving)
	assert.NotNil(t, post.Slots[0].File, "staged file remains for retry")
}

func TestSubmitRejectedWhileSaving(t *testing.T) {
	s, _, up, _ := newTestSession(t)
	up.block = make(chan struct{})
	up.entered = make(chan struct{})
	s.StartCreate()

	require.NoError(t, s.SetField("name", "gown"))
	require.NoError(t, s.SetField("price", "100"))
	stageImage(t, s, 0, "main.jpg")

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	<-up.entered
	assert.True(t, s.State().Saving)

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSaveInFlight)

	close(up.block)
	require.NoError(t, <-done)
	assert.False(t, s.State().Saving)
}

func TestCancelDirtyNeedsForce(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.StartCreate()
	require.NoError(t, s.SetField("name", "x"))

	assert.ErrorIs(t, s.Cancel(false), ErrUnsavedChanges)
	assert.Equal(t, ViewForm, s.State().View)

	require.NoError(t, s.Cancel(true))
	assert.Equal(t, ViewList, s.State().View)
}

func TestCancelCleanForm(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.StartCreate()
	require.NoError(t, s.Cancel(false))
	assert.Equal(t, ViewList, s.State().View)

	// Cancelling the list view is a no-op.
	require.NoError(t, s.Cancel(false))
}

func TestReorderSuspendedWhileAdjusting(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.StartCreate()
	stageImage(t, s, 0, "a.jpg")
	stageImage(t, s, 1, "b.jpg")
	before := s.State().Slots

	s.ToggleAdjust(0)

	s.BeginDrag(0)
	assert.Equal(t, -1, s.State().Dragging, "drag cannot start while adjusting")
	assert.False(t, s.DragOver(1))
	s.Drop(1)
	assert.Equal(t, before, s.State().Slots)

	// Leaving adjust mode re-enables reordering.
	s.ToggleAdjust(0)
	s.BeginDrag(0)
	assert.Equal(t, 0, s.State().Dragging)
	s.Drop(1)
	assert.Equal(t, before[0].URL, s.State().Slots[1].URL)
}

func TestDropWhileAdjustingCancelsDrag(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	s.StartCreate()
	stageImage(t, s, 0, "a.jpg")

	s.BeginDrag(0)
	s.ToggleAdjust(1)
	s.Drop(2)

	assert.Equal(t, -1, s.State().Dragging)
	assert.Equal(t, "data:preview/a.jpg", s.State().Slots[0].URL, "no permutation happened")
}

