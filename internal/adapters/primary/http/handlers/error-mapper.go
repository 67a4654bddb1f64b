package handlers

import (
	"errors"
	"net/http"

	"model-export-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrWeightsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrModelNameConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrInvalidVariant),
		errors.Is(err, domain.ErrInvalidExportFormat),
		errors.Is(err, domain.ErrInvalidImgSz),
		errors.Is(err, domain.ErrInvalidJobID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream failures
	case errors.Is(err, domain.ErrExportBackendFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrLoaderUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
