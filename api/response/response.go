/*
Package response centralizes the API response envelope and the mapping
from domain error families to HTTP status codes.

Rules:
1. Status mapping lives here only; domain and application layers carry
   no HTTP concepts.
2. Internal failures reach the client as a generic message; the real
   error, with its creation-point stack when available, goes to the log.
3. Every response carries the request id for log correlation.
*/
package response

import (
	"errors"
	"net/http"

	"storefront/domain/shared"
	"storefront/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key the request id travels under.
const RequestIDKey = "request_id"

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func HandleSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Code:      http.StatusOK,
		Message:   message,
		RequestID: getRequestID(c),
	})
}

func HandleCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Code:      http.StatusCreated,
		Message:   message,
		RequestID: getRequestID(c),
	})
}

// HandleBadRequest reports a request that failed binding or basic
// parameter checks.
func HandleBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success:   false,
		Error:     "bad_request",
		Code:      http.StatusBadRequest,
		Message:   message,
		RequestID: getRequestID(c),
	})
}

// HandleDomainError maps a domain error onto its HTTP status by family:
// not-found 404, invalid aggregate state 422, persistence and anything
// unrecognized 500. The client sees a safe message; the log gets the
// full error and, when the error carries one, its origin stack.
func HandleDomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "an unexpected error occurred"

	switch {
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		message = err.Error()
	case errors.Is(err, shared.ErrInvalidAggregateState):
		status = http.StatusUnprocessableEntity
		code = "invalid_state"
		message = err.Error()
	case errors.Is(err, shared.ErrPersistence):
		code = "persistence_error"
	}

	fields := []zap.Field{
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}
	var stacker shared.Stacker
	if errors.As(err, &stacker) {
		fields = append(fields, zap.Strings("error_stack", stacker.Stack()))
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}

	c.JSON(status, Response{
		Success:   false,
		Error:     code,
		Code:      status,
		Message:   message,
		RequestID: getRequestID(c),
	})
}
