package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	. "flashcardapp/internal/adapter/http/validation"
	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/model/response"
)

const internalErrorMessage = "An error occurred. Check server logs."

// SendRows writes the success envelope with rows under data[key].
func SendRows(c *gin.Context, key string, rows any) {
	c.JSON(http.StatusOK, response.RowsResponse{
		Status: response.StatusSuccess,
		Data:   map[string]any{key: rows},
	})
}

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.MessageResponse{Message: message})
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendInternalError(c *gin.Context) {
	errors := []response.ValidationError{
		{
			Field:   "server",
			Message: internalErrorMessage,
		},
	}

	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, "NOT_FOUND", errors)
}

// SendDomainError maps a service error onto a status code. Anything outside
// the known taxonomy is answered with a generic 500.
func SendDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrConflict):
		SendError(c, http.StatusConflict, "CONFLICT", []response.ValidationError{
			{Field: "resource", Message: "Resource already exists"},
		})
	case errors.Is(err, domain.ErrValidation):
		SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", []response.ValidationError{
			{Field: "request", Message: "Invalid value for the database"},
		})
	case errors.Is(err, domain.ErrUnavailable):
		SendError(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", []response.ValidationError{
			{Field: "database", Message: "Service temporarily unavailable"},
		})
	default:
		SendInternalError(c)
	}
}
