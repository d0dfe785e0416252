package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

// analysisService is wired in RegisterRoutes once env is loaded, since its
// AI client reads AI_GATEWAY_API_KEY at construction.
var analysisService *services.AnalysisService

// AnalyzeLand godoc
// @Summary Analyze a land parcel with AI
// @Description Assess vegetation, terrain, equipment, labor and hazards for a boundary polygon
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeLandRequest true "Boundary and intent"
// @Success 200 {object} dto.AnalyzeLandResponse
// @Router /analyze-land [post]
func AnalyzeLand(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.AnalyzeLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := analysisService.AnalyzeLand(c.Request.Context(), session.ID, session.IsAdmin, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalyzeLandResponse{Analysis: result})
}

// ListAnalyses returns a project's saved analyses, newest first.
// ?latest=true narrows the reply to the single current analysis.
func ListAnalyses(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	if c.Query("latest") == "true" {
		analysis, err := analysisService.LatestAnalysis(c.Param("id"), session.ID, session.IsAdmin)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "success",
			"analysis": analysis,
		})
		return
	}

	analyses, err := analysisService.ListAnalyses(c.Param("id"), session.ID, session.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analyses": analyses,
	})
}
