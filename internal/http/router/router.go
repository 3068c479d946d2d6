package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/config"
	"github.com/asadc0de/husnainatelier/internal/editor"
	"github.com/asadc0de/husnainatelier/internal/http/cartcookie"
	"github.com/asadc0de/husnainatelier/internal/http/flash"
	"github.com/asadc0de/husnainatelier/internal/http/handlers"
	adminhandlers "github.com/asadc0de/husnainatelier/internal/http/handlers/admin"
	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/modules/cart"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
)

// Deps collects everything the router wires together.
type Deps struct {
	Cfg     config.Config
	Log     *slog.Logger
	Catalog *catalog.Service
	Cart    *cart.Service
	Session *editor.Session
}

// New builds the gin engine: middleware chain, storefront API, and the
// session-gated admin API.
func New(d Deps) *gin.Engine {
	if d.Cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	store := cookie.NewStore([]byte(d.Cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		HttpOnly: true,
		Secure:   d.Cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	cartCodec := cartcookie.New([]byte(d.Cfg.CookieSecret), "cart_id", d.Cfg.SecureCookies)
	flashCodec := flash.NewCodec([]byte(d.Cfg.CookieSecret), "flash", d.Cfg.SecureCookies)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		// ErrorHandler wraps Recovery: a recovered panic is recorded as a
		// context error, and the envelope is written on the way back out.
		middleware.ErrorHandler(d.Log),
		middleware.Recovery(d.Log),
		sessions.Sessions("session", store),
		middleware.FlashMiddleware(flashCodec),
		middleware.CartCount(cartCodec, d.Cart),
	)

	products := handlers.NewProductsHandler(d.Catalog)
	search := handlers.NewSearchHandler(d.Catalog)
	carts := handlers.NewCartHandler(d.Cart, cartCodec, flashCodec)
	stream := handlers.NewStreamHandler(d.Catalog)

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/:id", products.Show)
		api.GET("/categories", products.Categories)
		api.GET("/search", search.Search)
		api.GET("/stream/products", stream.Products)

		api.GET("/cart", carts.Show)
		api.DELETE("/cart", carts.Clear)
		api.POST("/cart/items", carts.AddItem)
		api.PATCH("/cart/items/:productId", carts.UpdateItem)
		api.DELETE("/cart/items/:productId", carts.RemoveItem)
	}

	auth := adminhandlers.NewAuthHandler(d.Cfg.AdminPasswordHash)
	adminProducts := adminhandlers.NewProductsHandler(d.Catalog)
	ed := adminhandlers.NewEditorHandler(d.Session, d.Catalog)

	r.POST("/api/admin/login", auth.Login)

	adm := r.Group("/api/admin", middleware.RequireAdmin())
	{
		adm.GET("/me", auth.Me)
		adm.POST("/logout", auth.Logout)

		adm.GET("/products", adminProducts.List)
		adm.DELETE("/products/:id", adminProducts.Delete)

		adm.GET("/editor", ed.State)
		adm.POST("/editor/create", ed.OpenCreate)
		adm.POST("/editor/edit/:id", ed.OpenEdit)
		adm.PATCH("/editor/field", ed.SetField)
		adm.POST("/editor/slots/:index/image", ed.SetSlotImage)
		adm.DELETE("/editor/slots/:index", ed.ClearSlot)
		adm.POST("/editor/slots/:index/adjust", ed.ToggleAdjust)
		adm.POST("/editor/drag", ed.Drag)
		adm.POST("/editor/pointer", ed.Pointer)
		adm.POST("/editor/submit", ed.Submit)
		adm.POST("/editor/cancel", ed.Cancel)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
