package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"github.com/landpro-backend/dto"
	"github.com/landpro-backend/lib/geo"
)

// Measure replays a click trail through the measurement tool and returns the
// formatted distance or area reading.
func Measure(c *gin.Context) {
	var req dto.MeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	m := geo.NewMeasurement()
	m.Toggle(geo.MeasureMode(req.Mode))
	for _, p := range req.Points {
		if len(p) != 2 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Points must be [lng, lat] pairs",
			})
			return
		}
		m.AddPoint(orb.Point{p[0], p[1]})
	}

	c.JSON(http.StatusOK, dto.MeasureResponse{Result: m.Result()})
}
