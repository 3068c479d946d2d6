package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
)

type StreamHandler struct {
	svc *catalog.Service
}

func NewStreamHandler(svc *catalog.Service) *StreamHandler {
	return &StreamHandler{svc: svc}
}

// Products streams catalog snapshots over SSE. The first event carries the
// current catalog, then one event per change until the client disconnects.
func (h *StreamHandler) Products(c *gin.Context) {
	snapshot, ch, cancel, err := h.svc.Subscribe(c.Request.Context(), c.Query("orderBy"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	send := func(prods []catalog.Product) bool {
		c.SSEvent("products", gin.H{"products": mapProductsForList(prods)})
		c.Writer.Flush()
		return true
	}
	send(snapshot)

	c.Stream(func(w io.Writer) bool {
		select {
		case prods, ok := <-ch:
			if !ok {
				return false
			}
			return send(prods)
		case <-c.Request.Context().Done():
			return false
		}
	})
}
