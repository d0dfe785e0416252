package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

var clientService = services.NewClientService()

// ListClients returns the caller's client book
func ListClients(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	response, err := clientService.ListClients(session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve clients: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetClient returns a single client record
func GetClient(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	client, err := clientService.GetClient(c.Param("id"), session.ID, session.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"client": client,
	})
}

// CreateClient adds a customer to the caller's book
func CreateClient(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	client, err := clientService.CreateClient(session.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Client created successfully",
		"client":  client,
	})
}

// UpdateClient mutates a client record
func UpdateClient(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	client, err := clientService.UpdateClient(c.Param("id"), session.ID, session.IsAdmin, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client updated successfully",
		"client":  client,
	})
}

// DeleteClient removes a client record
func DeleteClient(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	if err := clientService.DeleteClient(c.Param("id"), session.ID, session.IsAdmin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted successfully",
	})
}
