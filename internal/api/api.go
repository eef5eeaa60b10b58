package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/snapdish/backend/internal/service"
	"github.com/pageza/snapdish/backend/internal/types"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "SnapDish API is running",
		"version": "v1.0.0",
	})
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, parse/schema 422, upstream 502, config and everything
// else 500. Upstream detail is surfaced for diagnosis.
func respondError(c *gin.Context, err error) {
	var se *service.Error
	if !errors.As(err, &se) {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "internal server error"})
		return
	}

	switch se.Kind {
	case service.KindValidation:
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: se.Message})
	case service.KindParse, service.KindSchema:
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Error: se.Message})
	case service.KindUpstream:
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   se.Message,
			Details: se.UpstreamBody,
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: se.Message})
	}
}
