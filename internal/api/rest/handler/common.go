package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/palemoky/name-chemi/internal/errors"
)

// respondError sends a JSON error response built from an API error.
func respondError(c *gin.Context, err *apierrors.APIError) {
	c.JSON(err.HTTPStatus, gin.H{"error": err})
}

// respondOK sends a JSON success response with the given data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
