package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/http/cartcookie"
	"github.com/asadc0de/husnainatelier/internal/http/flash"
	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/http/validation"
	"github.com/asadc0de/husnainatelier/internal/modules/cart"
	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

type CartHandler struct {
	svc   *cart.Service
	codec *cartcookie.Codec
	flash *flash.Codec
}

func NewCartHandler(svc *cart.Service, codec *cartcookie.Codec, flashCodec *flash.Codec) *CartHandler {
	return &CartHandler{svc: svc, codec: codec, flash: flashCodec}
}

type cartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Show returns the cart page. A visitor with no cart cookie gets an empty
// page without a cart being created.
func (h *CartHandler) Show(c *gin.Context) {
	id, ok := h.codec.GetCartID(c)
	if !ok {
		c.JSON(http.StatusOK, cartResponse(c, emptyCartPage()))
		return
	}
	page, err := h.svc.Page(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse(c, page))
}

// cartResponse attaches the pending one-shot notification, if the flash
// middleware found one on the way in.
func cartResponse(c *gin.Context, page view.CartPage) gin.H {
	resp := gin.H{
		"items": page.Items,
		"count": page.Count,
		"total": page.Total,
	}
	if f := middleware.GetFlash(c); f != nil {
		resp["flash"] = f
	}
	return resp
}

// AddItem adds a product to the cart, minting the cart and its cookie on
// first use.
func (h *CartHandler) AddItem(c *gin.Context) {
	var in cartItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart item.", validation.FromBindError(err, &in)))
		return
	}

	id, _ := h.codec.GetCartID(c)
	crt, err := h.svc.Ensure(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if crt.ID != id {
		h.codec.Set(c, crt.ID)
	}

	if err := h.svc.Add(c.Request.Context(), crt.ID, in.ProductID, in.Quantity); err != nil {
		middleware.Fail(c, err)
		return
	}
	middleware.SetFlashCookie(c, h.flash, view.Flash{Kind: view.FlashSuccess, Message: "Added to cart."})

	page, err := h.svc.Page(c.Request.Context(), crt.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdateItem replaces a line's quantity. Quantities below one are ignored,
// not errors; removal is its own endpoint.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid quantity.", validation.FromBindError(err, &in)))
		return
	}

	id, ok := h.codec.GetCartID(c)
	if !ok {
		c.JSON(http.StatusOK, emptyCartPage())
		return
	}
	if err := h.svc.SetQty(c.Request.Context(), id, c.Param("productId"), in.Quantity); err != nil {
		middleware.Fail(c, err)
		return
	}

	page, err := h.svc.Page(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Clear empties the whole cart.
func (h *CartHandler) Clear(c *gin.Context) {
	id, ok := h.codec.GetCartID(c)
	if !ok {
		c.JSON(http.StatusOK, emptyCartPage())
		return
	}
	if err := h.svc.Clear(c.Request.Context(), id); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyCartPage())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := h.codec.GetCartID(c)
	if !ok {
		c.JSON(http.StatusOK, emptyCartPage())
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id, c.Param("productId")); err != nil {
		middleware.Fail(c, err)
		return
	}

	page, err := h.svc.Page(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
