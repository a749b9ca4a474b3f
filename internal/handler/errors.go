package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors to HTTP responses. Anything unexpected
// becomes a 500 with the fallback message; the underlying error text is
// only echoed in debug mode.
func respondError(c *gin.Context, err error, fallback string) {
	var (
		conflict   *service.LeaveConflictError
		validation *service.ValidationError
		duplicate  *service.DuplicateError
		notFound   *service.NotFoundError
	)

	switch {
	case errors.As(err, &conflict):
		utils.ErrorResponseWith(c, http.StatusBadRequest, conflict.Error(), gin.H{"isOnLeave": true})
	case errors.As(err, &validation):
		utils.ErrorResponse(c, http.StatusBadRequest, validation.Message)
	case errors.As(err, &duplicate):
		utils.ErrorResponse(c, http.StatusBadRequest, duplicate.Message)
	case errors.As(err, &notFound):
		utils.ErrorResponse(c, http.StatusNotFound, notFound.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
	default:
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(fallback)
		if gin.Mode() == gin.DebugMode {
			utils.ErrorResponseWith(c, http.StatusInternalServerError, fallback, gin.H{"error": err.Error()})
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// bindJSON decodes and validates the request body, answering 400 with a
// field level message on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return false
	}
	return true
}

// bindQuery is bindJSON for query strings
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.ValidationMessage(err))
		return false
	}
	return true
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label)
		return 0, false
	}
	return uint(id), true
}
