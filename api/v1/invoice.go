package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

var invoiceService = services.NewInvoiceService()

// ListInvoices returns the caller's invoices
func ListInvoices(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	response, err := invoiceService.ListInvoices(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve invoices: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetInvoice returns a single invoice
func GetInvoice(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	invoice, err := invoiceService.GetInvoice(c.Param("id"), session.ID, session.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"invoice": invoice,
	})
}

// CreateInvoice issues a draft invoice for one of the caller's clients
func CreateInvoice(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoice, err := invoiceService.CreateInvoice(session.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Invoice created successfully",
		"invoice": invoice,
	})
}

// UpdateInvoice edits a draft or advances the invoice status
func UpdateInvoice(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoice, err := invoiceService.UpdateInvoice(c.Param("id"), session.ID, session.IsAdmin, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Invoice updated successfully",
		"invoice": invoice,
	})
}

// DeleteInvoice removes a draft invoice
func DeleteInvoice(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	if err := invoiceService.DeleteInvoice(c.Param("id"), session.ID, session.IsAdmin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Invoice deleted successfully",
	})
}
