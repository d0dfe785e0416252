package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

// GetProfile returns the caller's business profile
func GetProfile(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	profile, err := services.GetProfile(session.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"profile": profile,
	})
}

// UpdateProfile saves the caller's business profile
func UpdateProfile(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	profile, err := services.UpdateProfile(session.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"profile": profile,
	})
}
