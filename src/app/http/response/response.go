// Package response defines consistent HTTP response structures and the
// translation of storage failures to HTTP status codes.
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokesapi/src/core/domain"
	"jokesapi/src/infra/logger"
)

// ErrorBody is the flat error payload shared by all failure responses.
// Optional members are omitted when empty so each failure category keeps
// its exact body shape.
type ErrorBody struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message,omitempty"`
}

// OK sends a 200 response with data serialized as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// Internal sends a 500 response without leaking the cause.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}

// FromStoreError translates a storage failure into an HTTP response.
//
// The mapping is total: every *domain.StoreError kind has a row, and
// anything else, a nil error included, falls through to 500. Only the
// connection and unexpected categories are logged server-side; 4xx
// outcomes are the caller's fault and stay quiet.
func FromStoreError(c *gin.Context, log *slog.Logger, err error) {
	se, ok := domain.AsStoreError(err)
	if !ok {
		logger.Error(log, "unexpected error", "error", err, "path", c.FullPath())
		Internal(c)
		return
	}

	switch se.Kind {
	case domain.StoreUniqueViolation:
		c.JSON(http.StatusConflict, ErrorBody{
			Error: "A record with this value already exists",
			Code:  se.Code,
			Field: se.Fields,
		})
	case domain.StoreNotFound:
		c.JSON(http.StatusNotFound, ErrorBody{
			Error: "Record not found",
			Code:  se.Code,
		})
	case domain.StoreForeignKey:
		c.JSON(http.StatusBadRequest, ErrorBody{
			Error: "Related record not found",
			Code:  se.Code,
		})
	case domain.StoreRequiredRelation:
		c.JSON(http.StatusBadRequest, ErrorBody{
			Error: "Required relation violation",
			Code:  se.Code,
		})
	case domain.StoreInvalidData:
		c.JSON(http.StatusBadRequest, ErrorBody{
			Error:   "Invalid data provided",
			Message: se.Message,
		})
	case domain.StoreConnection:
		logger.Error(log, "database connection failure", "error", err, "path", c.FullPath())
		c.JSON(http.StatusServiceUnavailable, ErrorBody{
			Error: "Database connection error",
		})
	case domain.StoreRequest:
		c.JSON(http.StatusBadRequest, ErrorBody{
			Error:   "Database request error",
			Code:    se.Code,
			Message: se.Message,
		})
	default:
		logger.Error(log, "unclassified store error", "error", err, "path", c.FullPath())
		Internal(c)
	}
}
