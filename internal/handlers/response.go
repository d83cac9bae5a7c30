package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// respondError converts any error into the uniform failure envelope. The
// message of a typed *apperr.Error is safe to surface; anything else is
// masked as an internal failure.
func respondError(c *gin.Context, err error) {
	msg := "internal server error"
	var e *apperr.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	c.JSON(apperr.Status(err), gin.H{"success": false, "error": msg})
}
