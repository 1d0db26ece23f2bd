package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zouqly-storefront/internal/catalog"
	"zouqly-storefront/internal/domain"
	"zouqly-storefront/internal/session"
)

type cartLineResponse struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Total    int64          `json:"total"`
}

type cartResponse struct {
	Items    []cartLineResponse `json:"items"`
	Count    int                `json:"count"`
	Subtotal int64              `json:"subtotal"`
}

func cartView(sess *session.Session) cartResponse {
	sess.Lock()
	defer sess.Unlock()

	lines := sess.Cart.Lines()
	items := make([]cartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, cartLineResponse{
			Product:  l.Product,
			Quantity: l.Quantity,
			Total:    l.Total(),
		})
	}
	return cartResponse{
		Items:    items,
		Count:    sess.Cart.Count(),
		Subtotal: sess.Cart.Subtotal(),
	}
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(sessionFrom(c)))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func addCartItemHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		product, err := cat.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		sess := sessionFrom(c)
		sess.Lock()
		sess.Cart.AddItem(*product, req.Quantity)
		sess.Unlock()

		c.JSON(http.StatusOK, cartView(sess))
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		sess := sessionFrom(c)
		sess.Lock()
		sess.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
		sess.Unlock()

		c.JSON(http.StatusOK, cartView(sess))
	}
}

func removeCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		sess.Lock()
		sess.Cart.RemoveItem(c.Param("id"))
		sess.Unlock()

		c.JSON(http.StatusOK, cartView(sess))
	}
}

func clearCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		sess.Lock()
		sess.Cart.Clear()
		sess.Unlock()

		c.JSON(http.StatusOK, cartView(sess))
	}
}
