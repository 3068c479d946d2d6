package admin

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/editor"
	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/http/validation"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

// maxUploadBytes caps a single staged image.
const maxUploadBytes = 10 << 20

// EditorHandler drives the product editor session over the admin API. Every
// mutation responds with the full editor snapshot so the client never has to
// track state transitions itself.
type EditorHandler struct {
	session *editor.Session
	svc     *catalog.Service
}

func NewEditorHandler(session *editor.Session, svc *catalog.Service) *EditorHandler {
	return &EditorHandler{session: session, svc: svc}
}

func (h *EditorHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

// OpenCreate opens a blank form.
func (h *EditorHandler) OpenCreate(c *gin.Context) {
	h.session.StartCreate()
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

// OpenEdit opens the form hydrated from an existing product.
func (h *EditorHandler) OpenEdit(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.session.StartEdit(p.Record())
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

type fieldInput struct {
	Field string `json:"field" binding:"required,oneof=name price description category"`
	Value string `json:"value"`
}

func (h *EditorHandler) SetField(c *gin.Context) {
	var in fieldInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid field edit.", validation.FromBindError(err, &in)))
		return
	}
	if err := h.session.SetField(in.Field, in.Value); err != nil {
		middleware.Fail(c, mapSessionErr(err))
		return
	}
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

// SetSlotImage stages a multipart image upload into a slot. The file stays
// in memory until submit; the response carries the slot's local preview URL.
func (h *EditorHandler) SetSlotImage(c *gin.Context) {
	index, ok := slotIndex(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image file is required.", nil))
		return
	}
	if fh.Size > maxUploadBytes {
		middleware.Fail(c, apperr.InvalidErr("Image is too large.", nil))
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		middleware.Fail(c, apperr.InvalidErr("Only image files can be uploaded.", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	staged := editor.StagedFile{Name: fh.Filename, ContentType: contentType, Data: data}
	if err := h.session.SetSlotImage(index, staged); err != nil {
		middleware.Fail(c, mapSessionErr(err))
		return
	}
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

func (h *EditorHandler) ClearSlot(c *gin.Context) {
	index, ok := slotIndex(c)
	if !ok {
		return
	}
	if err := h.session.ClearSlot(index); err != nil {
		middleware.Fail(c, mapSessionErr(err))
		return
	}
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

type dragInput struct {
	Action string `json:"action" binding:"required,oneof=begin over drop"`
	Index  *int   `json:"index" binding:"required"`
}

// Drag forwards one reorder intent. The drop response reflects the new slot
// order; begin and over only move the controller.
func (h *EditorHandler) Drag(c *gin.Context) {
	var in dragInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid drag intent.", validation.FromBindError(err, &in)))
		return
	}
	switch in.Action {
	case "begin":
		h.session.BeginDrag(*in.Index)
	case "over":
		h.session.DragOver(*in.Index)
	case "drop":
		h.session.Drop(*in.Index)
	}
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

func (h *EditorHandler) ToggleAdjust(c *gin.Context) {
	index, ok := slotIndex(c)
	if !ok {
		return
	}
	h.session.ToggleAdjust(index)
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

type pointerInput struct {
	Action string  `json:"action" binding:"required,oneof=down move up"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Pointer forwards one pan gesture event to the focal-point controller.
func (h *EditorHandler) Pointer(c *gin.Context) {
	var in pointerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid pointer event.", validation.FromBindError(err, &in)))
		return
	}
	switch in.Action {
	case "down":
		h.session.PointerDown(in.Index, in.X, in.Y)
	case "move":
		h.session.PointerMove(in.Index, in.X, in.Y)
	case "up":
		h.session.PointerRelease()
	}
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

// Submit validates, uploads staged files, and persists the product.
func (h *EditorHandler) Submit(c *gin.Context) {
	rec, err := h.session.Submit(c.Request.Context())
	if err != nil {
		middleware.Fail(c, mapSessionErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product": gin.H{"id": rec.ID},
		"editor":  editorState(h.session.State()),
	})
}

// Cancel leaves the form. Unsaved edits require ?force=true, so the client
// can show its discard confirmation first.
func (h *EditorHandler) Cancel(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := h.session.Cancel(force); err != nil {
		middleware.Fail(c, mapSessionErr(err))
		return
	}
	c.JSON(http.StatusOK, editorState(h.session.State()))
}

func slotIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= editor.SlotCount {
		middleware.Fail(c, apperr.InvalidErr("No such image slot.", nil))
		return 0, false
	}
	return index, true
}

func mapSessionErr(err error) error {
	switch {
	case errors.Is(err, editor.ErrUnsavedChanges):
		return apperr.ConflictErr("There are unsaved changes. Discard them?")
	case errors.Is(err, editor.ErrSaveInFlight):
		return apperr.ConflictErr("A save is already in progress.")
	case errors.Is(err, editor.ErrNotInForm):
		return apperr.InvalidErr("No product form is open.", nil)
	default:
		return err
	}
}

func editorState(st editor.State) view.EditorState {
	slots := make([]view.EditorSlot, 0, editor.SlotCount)
	for _, s := range st.Slots {
		slots = append(slots, view.EditorSlot{
			ID:            s.ID,
			URL:           s.URL,
			PendingUpload: s.File != nil,
			Focal:         view.FocalPoint{X: s.Focal.X, Y: s.Focal.Y},
		})
	}
	return view.EditorState{
		View:        string(st.View),
		Editing:     st.Editing,
		EditID:      st.EditID,
		Name:        st.Draft.Name,
		Price:       st.Draft.Price,
		Description: st.Draft.Description,
		Category:    st.Draft.Category,
		Categories:  editor.Categories,
		Slots:       slots,
		Adjusting:   st.Adjusting,
		Dragging:    st.Dragging,
		Dirty:       st.Dirty,
		Saving:      st.Saving,
	}
}
