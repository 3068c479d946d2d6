package editor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
)

// View is the editor's top-level screen.
type View string

const (
	ViewList View = "list"
	ViewForm View = "form"
)

var (
	// ErrUnsavedChanges is returned by Cancel when the form has edits and
	// the caller did not force the discard; the caller is expected to
	// confirm with the user and retry with force.
	ErrUnsavedChanges = errors.New("editor: unsaved changes")

	// ErrSaveInFlight rejects a submit while a previous one is still
	// uploading or writing.
	ErrSaveInFlight = errors.New("editor: save already in flight")

	// ErrNotInForm rejects form operations while the list view is active.
	ErrNotInForm = errors.New("editor: no form open")
)

// Session is the single active editor session: the slot set, draft, and the
// two gesture controllers, plus the List <-> Form lifecycle. It exclusively
// owns its slot state; all entry points take the lock, matching the
// single-editor ownership model.
type Session struct {
	mu sync.Mutex

	view    View
	editing bool
	editID  string

	draft Draft
	slots SlotSet
	drag  DragState
	pan   PanState

	dirty  bool
	saving bool

	previewer Previewer
	uploader  Uploader
	store     Store
	log       *slog.Logger
}

func NewSession(previewer Previewer, uploader Uploader, store Store, log *slog.Logger) *Session {
	return &Session{
		view:      ViewList,
		draft:     NewDraft(),
		slots:     NewSlotSet(),
		previewer: previewer,
		uploader:  uploader,
		store:     store,
		log:       log,
	}
}

// State is a read-only snapshot for the transport layer.
type State struct {
	View      View
	Editing   bool
	EditID    string
	Draft     Draft
	Slots     SlotSet
	Adjusting int // -1 when idle
	Dragging  int // -1 when idle
	Dirty     bool
	Saving    bool
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		View:      s.view,
		Editing:   s.editing,
		EditID:    s.editID,
		Draft:     s.draft,
		Slots:     s.slots,
		Adjusting: -1,
		Dragging:  -1,
		Dirty:     s.dirty,
		Saving:    s.saving,
	}
	if i, ok := s.pan.Adjusting(); ok {
		st.Adjusting = i
	}
	if i, ok := s.drag.Dragging(); ok {
		st.Dragging = i
	}
	return st
}

// StartCreate opens a blank form.
func (s *Session) StartCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.view = ViewForm
}

// StartEdit opens the form hydrated from an existing record.
func (s *Session) StartEdit(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.view = ViewForm
	s.editing = true
	s.editID = rec.ID
	s.draft = Draft{
		Name:        rec.Name,
		Price:       rec.Price,
		Description: rec.Description,
		Category:    rec.Category,
	}
	if !ValidCategory(s.draft.Category) {
		s.draft.Category = Categories[0]
	}
	s.slots = HydrateSlots(rec)
}

// Cancel leaves the form. With unsaved edits it refuses unless forced, so
// the caller can confirm the discard first.
func (s *Session) Cancel(force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return nil
	}
	if s.dirty && !force {
		return ErrUnsavedChanges
	}
	s.resetLocked()
	return nil
}

// SetField applies one form field edit, with the draft's input formatting.
func (s *Session) SetField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return ErrNotInForm
	}
	s.draft = s.draft.WithField(field, value)
	s.dirty = true
	return nil
}

// SetSlotImage stages file into the slot at index: the previewer builds the
// local display URL and the slot's focal point resets to center. Any upload
// previously staged in that slot is discarded.
func (s *Session) SetSlotImage(index int, file StagedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return ErrNotInForm
	}
	if index < 0 || index >= SlotCount {
		return apperr.InvalidErr("No such image slot.", nil)
	}
	preview, err := s.previewer.PreviewURL(file)
	if err != nil {
		return apperr.InvalidErr("That file is not a readable image.", map[string]string{"file": err.Error()})
	}
	s.slots = s.slots.WithImage(index, &file, preview)
	s.dirty = true
	return nil
}

// ClearSlot empties the slot at index.
func (s *Session) ClearSlot(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return ErrNotInForm
	}
	s.slots = s.slots.Cleared(index)
	s.dirty = true
	return nil
}

// BeginDrag / DragOver / Drop forward reorder intent to the drag controller.
// Reordering is suspended while a slot is in focal-adjust mode.
func (s *Session) BeginDrag(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return
	}
	if _, adjusting := s.pan.Adjusting(); adjusting {
		return
	}
	s.drag.Begin(index)
}

func (s *Session) DragOver(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return false
	}
	if _, adjusting := s.pan.Adjusting(); adjusting {
		return false
	}
	return s.drag.Over(index)
}

func (s *Session) Drop(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return
	}
	if _, adjusting := s.pan.Adjusting(); adjusting {
		s.drag.Cancel()
		return
	}
	var moved bool
	if s.slots, moved = s.drag.Drop(index, s.slots); moved {
		s.dirty = true
	}
}

// ToggleAdjust / PointerDown / PointerMove / PointerRelease forward pan
// intent to the focal-point controller.
func (s *Session) ToggleAdjust(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewForm {
		return
	}
	s.pan.ToggleAdjust(index)
}

func (s *Session) PointerDown(index int, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pan.PointerDown(index, x, y)
}

func (s *Session) PointerMove(index int, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.slots
	s.slots = s.pan.PointerMove(index, x, y, s.slots)
	if s.slots != before {
		s.dirty = true
	}
}

func (s *Session) PointerRelease() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pan.PointerRelease()
}

// Submit validates the form, resolves pending uploads, assembles the
// persisted record, and writes it to the store (update when editing, create
// otherwise). Validation failures short-circuit before any I/O. On success
// the session returns to the list view with a fresh form.
func (s *Session) Submit(ctx context.Context) (Record, error) {
	s.mu.Lock()
	if s.view != ViewForm {
		s.mu.Unlock()
		return Record{}, ErrNotInForm
	}
	if s.saving {
		s.mu.Unlock()
		return Record{}, ErrSaveInFlight
	}
	if err := validate(s.draft, s.slots); err != nil {
		s.mu.Unlock()
		return Record{}, err
	}
	s.saving = true
	draft := s.draft
	slots := s.slots
	editing := s.editing
	editID := s.editID
	s.mu.Unlock()

	rec, err := s.persist(ctx, draft, slots, editing, editID)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		// Forced reset: a successful submit never prompts for discard.
		s.resetLocked()
	}
	s.mu.Unlock()

	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Session) persist(ctx context.Context, draft Draft, slots SlotSet, editing bool, editID string) (Record, error) {
	resolved, err := s.uploader.Resolve(ctx, slots)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "editor_upload_failed",
			slog.String("kind", string(apperr.KindOf(err))),
			slog.Any("err", err),
		)
		return Record{}, err
	}

	rec := Assemble(draft, resolved)

	if editing {
		rec.ID = editID
		if err := s.store.UpdateRecord(ctx, editID, rec); err != nil {
			return Record{}, err
		}
		s.log.LogAttrs(ctx, slog.LevelInfo, "product_updated", slog.String("id", editID))
		return rec, nil
	}

	id, err := s.store.CreateRecord(ctx, rec)
	if err != nil {
		return Record{}, err
	}
	rec.ID = id
	s.log.LogAttrs(ctx, slog.LevelInfo, "product_created", slog.String("id", id))
	return rec, nil
}

// Assemble splits a resolved slot set into the persisted record shape: slot
// 0 is the main image, slots 1..3 the additional images, focal points bound
// to their image by index. Empty slots keep their empty markers so the
// additional arrays always have length SlotCount-1.
func Assemble(draft Draft, resolved SlotSet) Record {
	rec := Record{
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		Category:    draft.Category,
		Image:       resolved[0].URL,
		ImagePositions: ImagePositions{
			Main:       resolved[0].Focal,
			Additional: make([]Point, 0, SlotCount-1),
		},
		AdditionalImages: make([]string, 0, SlotCount-1),
	}
	for _, slot := range resolved[1:] {
		rec.AdditionalImages = append(rec.AdditionalImages, slot.URL)
		rec.ImagePositions.Additional = append(rec.ImagePositions.Additional, slot.Focal)
	}
	return rec
}

func validate(draft Draft, slots SlotSet) error {
	fields := map[string]string{}
	if strings.TrimSpace(draft.Name) == "" {
		fields["name"] = "Name is required."
	}
	if strings.TrimSpace(strings.TrimPrefix(draft.Price, "Rs.")) == "" {
		fields["price"] = "Price is required."
	}
	if slots[0].Empty() {
		fields["image"] = "The main image is required."
	}
	if len(fields) > 0 {
		return apperr.InvalidErr("Please fill in Name, Price, and at least the Main Image.", fields)
	}
	return nil
}

func (s *Session) resetLocked() {
	s.view = ViewList
	s.editing = false
	s.editID = ""
	s.draft = NewDraft()
	s.slots = NewSlotSet()
	s.drag = DragState{}
	s.pan = PanState{}
	s.dirty = false
}
