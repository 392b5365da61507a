package handlers

import (
	"net/http"
	"strconv"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// dayParam reads the 1-based :day path segment and returns the 0-based index.
func dayParam(c *gin.Context) (int, bool) {
	return indexParam(c, "day", 1)
}

// indexParam parses an integer path parameter and subtracts base.
func indexParam(c *gin.Context, name string, base int) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "must be a number", Err: err})
		return 0, false
	}
	return n - base, true
}
