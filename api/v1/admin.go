package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/services"
)

var statsService = services.NewStatsService()

// GetBusinessStats returns platform-wide counts and paid revenue
func GetBusinessStats(c *gin.Context) {
	stats, err := statsService.GetBusinessStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  stats,
	})
}

// ListUsers returns every account with its project count
func ListUsers(c *gin.Context) {
	users, err := statsService.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  users,
	})
}
