package controllers

import (
	"errors"
	"net/http"

	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the four domain error kinds onto HTTP statuses with a
// {"detail": ...} body. Anything unclassified is a store or infrastructure
// failure and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	var (
		validation *services.ValidationError
		forbidden  *services.ForbiddenError
		notFound   *services.NotFoundError
		conflict   *services.ConflictError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": validation.Detail})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": forbidden.Detail})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFound.Detail})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"detail": conflict.Detail})
	default:
		configuration.Log.WithError(err).Error("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
