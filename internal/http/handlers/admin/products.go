package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

// ProductsHandler backs the admin inventory table.
type ProductsHandler struct {
	svc *catalog.Service
}

func NewProductsHandler(svc *catalog.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) List(c *gin.Context) {
	prods, err := h.svc.List(c.Request.Context(), c.Query("orderBy"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	rows := make([]view.AdminProductRow, 0, len(prods))
	for _, p := range prods {
		pos := p.Positions()
		rows = append(rows, view.AdminProductRow{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			ImageURL:  p.Image,
			MainFocal: view.FocalPoint{X: pos.Main.X, Y: pos.Main.Y},
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
