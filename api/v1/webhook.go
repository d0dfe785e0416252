package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/services"
)

// StripeWebhook receives Stripe events. Signature verification needs the raw
// request body, so this handler never binds JSON. Replayed events are
// acknowledged without touching the invoice again.
func StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to read request body",
		})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := paymentService.HandleWebhook(payload, signature); err != nil {
		if errors.Is(err, services.ErrBadSignature) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid signature",
			})
			return
		}
		log.Println("Stripe webhook processing failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to process webhook",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
