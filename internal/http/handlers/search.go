package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

type SearchHandler struct {
	svc *catalog.Service
}

func NewSearchHandler(svc *catalog.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search matches name and category, case-insensitive. An empty query
// returns an empty result set rather than the whole catalog.
func (h *SearchHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"query": "", "products": []view.ProductCard{}})
		return
	}

	prods, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "products": mapProductsForList(prods)})
}
