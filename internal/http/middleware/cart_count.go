package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/asadc0de/husnainatelier/internal/http/cartcookie"
	"github.com/asadc0de/husnainatelier/internal/modules/cart"
)

const cartCountKey = "cart_count"

// CartCount resolves the signed cart cookie into an item count for the
// navbar badge. Best effort: any failure just shows zero.
func CartCount(codec *cartcookie.Codec, svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if id, ok := codec.GetCartID(c); ok {
			if page, err := svc.Page(c.Request.Context(), id); err == nil {
				n = page.Count
			}
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
