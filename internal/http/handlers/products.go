package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/editor"
	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

// ProductsHandler serves the storefront catalog: the shop grid, the
// category pages, and the new-arrivals strip.
type ProductsHandler struct {
	svc *catalog.Service
}

func NewProductsHandler(svc *catalog.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List returns the catalog, optionally filtered by category and capped by
// limit (the home page's new-arrivals strip uses a small limit).
func (h *ProductsHandler) List(c *gin.Context) {
	var (
		prods []catalog.Product
		err   error
	)

	if category := c.Query("category"); category != "" {
		if !editor.ValidCategory(category) {
			c.JSON(http.StatusOK, gin.H{
				"products":  []view.ProductCard{},
				"cartCount": middleware.GetCartCount(c),
			})
			return
		}
		prods, err = h.svc.ListByCategory(c.Request.Context(), category)
	} else {
		prods, err = h.svc.List(c.Request.Context(), c.Query("orderBy"))
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if v := c.Query("limit"); v != "" {
		if n, perr := strconv.Atoi(v); perr == nil && n > 0 && n < len(prods) {
			prods = prods[:n]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":  mapProductsForList(prods),
		"cartCount": middleware.GetCartCount(c),
	})
}

// Show returns one product's detail page data.
func (h *ProductsHandler) Show(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapProductForDetail(p))
}

// Categories returns the closed category set with product counts.
func (h *ProductsHandler) Categories(c *gin.Context) {
	prods, err := h.svc.List(c.Request.Context(), "")
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	counts := make(map[string]int, len(editor.Categories))
	for _, p := range prods {
		counts[p.Category]++
	}

	out := make([]view.CategorySummary, 0, len(editor.Categories))
	for _, name := range editor.Categories {
		out = append(out, view.CategorySummary{Name: name, Count: counts[name]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}
