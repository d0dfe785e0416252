package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/middleware"
)

// PortalView returns the client-portal snapshot for the logged-in customer:
// their client record plus every quote and invoice issued to it.
func PortalView(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	client, quotes, invoices, err := clientService.PortalView(session.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"client":   client,
		"quotes":   quotes,
		"invoices": invoices,
	})
}
