package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zonos-storefront/internal/cart"
	"zonos-storefront/internal/domain"
	"zonos-storefront/internal/optimistic"
)

type itemRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type previewRequest struct {
	Cart   *domain.Cart      `json:"cart"`
	Action optimistic.Action `json:"action"`
}

// actionResult renders a mutation outcome: empty message means success,
// anything else is the user-facing error string from the action. Recoverable
// action errors keep HTTP 200; the string is the contract, not the status.
func actionResult(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := newCookieIDStore(c, deps.CookieTTL)
		cartID := ids.Get()

		if cartID != "" {
			if payload, ok := deps.Cache.Get(cart.TagCart, cartID); ok {
				c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
				return
			}
		}

		crt, err := deps.Cart.GetCart(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch cart"})
			return
		}
		if crt == nil {
			empty := optimistic.EmptyCart()
			crt = &empty
		}

		payload, err := json.Marshal(crt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if cartID != "" {
			deps.Cache.Set(cart.TagCart, cartID, payload)
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
	}
}

func addItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}
		ids := newCookieIDStore(c, deps.CookieTTL)
		actionResult(c, deps.Actions.AddItem(c.Request.Context(), ids, req.SKU, req.Quantity))
	}
}

func updateItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
			return
		}
		ids := newCookieIDStore(c, deps.CookieTTL)
		actionResult(c, deps.Actions.UpdateItemQuantity(c.Request.Context(), ids, req.SKU, req.Quantity))
	}
}

func removeItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := newCookieIDStore(c, deps.CookieTTL)
		actionResult(c, deps.Actions.RemoveItem(c.Request.Context(), ids, c.Param("id")))
	}
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := newCookieIDStore(c, deps.CookieTTL)
		path, err := deps.Actions.RedirectToCheckout(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to prepare checkout"})
			return
		}
		c.Redirect(http.StatusSeeOther, path)
	}
}

// previewHandler applies an optimistic action to a posted cart snapshot so
// the client can render the expected result before the vendor confirms.
func previewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req previewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		c.JSON(http.StatusOK, optimistic.Reduce(req.Cart, req.Action))
	}
}

func getCartIDHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := newCookieIDStore(c, deps.CookieTTL)
		cartID := ids.Get()
		if cartID == "" {
			var err error
			cartID, err = deps.Actions.CreateCartAndSetCookie(c.Request.Context(), ids)
			if err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create cart"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"cartId": cartID})
	}
}

func revalidateHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.RevalidationSecret != "" && c.Query("secret") != deps.RevalidationSecret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid revalidation secret"})
			return
		}
		deps.Cache.Invalidate(cart.TagCart)
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "revalidated": true, "now": time.Now().UnixMilli()})
	}
}
