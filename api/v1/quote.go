package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/middleware"
	"github.com/landpro-backend/services"
)

// quoteService is wired in RegisterRoutes once env is loaded, since its AI
// client reads OPENAI_API_KEY at construction.
var quoteService *services.QuoteService

// GenerateQuote godoc
// @Summary Generate a quote draft with AI
// @Description Produce an itemized landscaping quote from a job description
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuoteRequest true "Job details"
// @Success 200 {object} dto.GeneratedQuote
// @Router /generate-quote [post]
func GenerateQuote(c *gin.Context) {
	var req dto.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	quote, err := quoteService.GenerateQuote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ListQuotes returns the caller's saved quotes
func ListQuotes(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	response, err := quoteService.ListQuotes(session.ID, page, pageSize, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve quotes: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetQuote returns a single saved quote
func GetQuote(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	quote, err := quoteService.GetQuote(c.Param("id"), session.ID, session.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"quote":  quote,
	})
}

// CreateQuote saves a quote against the caller's account
func CreateQuote(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	quote, err := quoteService.CreateQuote(session.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Quote created successfully",
		"quote":   quote,
	})
}

// UpdateQuote mutates a saved quote behind its updatedAt precondition
func UpdateQuote(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	quote, err := quoteService.UpdateQuote(c.Param("id"), session.ID, session.IsAdmin, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Quote updated successfully",
		"quote":   quote,
	})
}

// DeleteQuote removes a saved quote
func DeleteQuote(c *gin.Context) {
	session, _ := middleware.CurrentUser(c)

	if err := quoteService.DeleteQuote(c.Param("id"), session.ID, session.IsAdmin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Quote deleted successfully",
	})
}
