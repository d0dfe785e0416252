package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

// paymentService is wired in RegisterRoutes once env is loaded, since it
// reads the Stripe keys at construction.
var paymentService *services.PaymentService

// CreatePaymentLink creates a hosted Stripe payment link for an invoice and
// moves a draft invoice to sent.
func CreatePaymentLink(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	url, err := paymentService.CreatePaymentLink(c.Param("id"), session.ID, session.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentLinkResponse{
		Success:     true,
		PaymentLink: url,
	})
}
