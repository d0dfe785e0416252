package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/lib/llm"
	"github.com/landpro-backend/services"
)

// respondError maps service and upstream-AI failures onto HTTP statuses.
// Rate-limit and billing statuses pass through verbatim so the UI can show a
// precise message; everything else collapses to its class. Nothing here ever
// exposes a stack trace.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Access denied"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "The record was modified by someone else. Reload and try again.",
		})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, llm.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "AI service not configured"})
	case errors.Is(err, llm.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"status": "error", "message": "Rate limit exceeded. Please try again later."})
	case errors.Is(err, llm.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{"status": "error", "message": "AI credits exhausted. Please add funds to continue."})
	case errors.Is(err, llm.ErrMalformedReply):
		// Distinct from transport failures: the call went through, the reply
		// didn't parse, and trying again may well succeed.
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to parse AI response. Please try again."})
	case errors.Is(err, llm.ErrUpstream):
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "AI request failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
	}
}

// respondBadRequest reports an invalid request body
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
