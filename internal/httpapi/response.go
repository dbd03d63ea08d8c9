package httpapi

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/importer"
	"github.com/alexanderramin/promotrack/internal/repository"
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope of every JSON reply.
//
//	{"success": true,  "message": "achievement added", "data": {...}}
//	{"success": false, "message": "invalid request",   "error": "..."}
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message, Data: data})
}

func respondFailed(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, APIResponse{Success: false, Message: message, Error: err.Error()})
}

// respondError maps a domain or storage error onto its HTTP status.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := "request failed"
	switch status {
	case http.StatusBadRequest:
		message = "invalid request"
	case http.StatusNotFound:
		message = "not found"
	case http.StatusConflict:
		message = "conflict"
	case http.StatusInternalServerError:
		message = "internal error"
	}
	respondFailed(c, status, message, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrUnknownPosition),
		errors.Is(err, domain.ErrIneligibleApplication),
		errors.Is(err, importer.ErrValidation),
		errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAchievementNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyPending),
		errors.Is(err, domain.ErrWizardCompleted),
		errors.Is(err, domain.ErrWizardIncomplete):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
