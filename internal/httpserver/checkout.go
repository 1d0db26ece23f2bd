package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zouqly-storefront/internal/checkout"
	"zouqly-storefront/internal/domain"
)

func checkoutStatusHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tier := domain.DeliveryTier(c.Query("tier"))
		c.JSON(http.StatusOK, svc.Status(sessionFrom(c), tier))
	}
}

func submitCheckoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form domain.OrderForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		sess := sessionFrom(c)
		order, err := svc.Submit(c.Request.Context(), sess, form)
		if err != nil {
			writeSubmitError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"state":          checkout.StatePlaced,
			"fullName":       order.Form.FullName,
			"subtotal":       order.Subtotal,
			"deliveryCharge": order.DeliveryCharge,
			"total":          order.Total,
		})
	}
}

func writeSubmitError(c *gin.Context, err error) {
	var ve *checkout.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrOrderPlaced):
		c.JSON(http.StatusConflict, gin.H{"error": "order already placed"})
	case errors.Is(err, domain.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "submission already in progress"})
	default:
		// Gateway failure: the session is back in Editing with its cart
		// intact, so the client may retry.
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "order submission failed",
			"state": checkout.StateEditing,
		})
	}
}
