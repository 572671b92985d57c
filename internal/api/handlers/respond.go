package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/auth"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string            `json:"error" example:"error message"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps a service error to its status code and error envelope
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		message := "Invalid input"
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			message = validationErr.Message
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Fields: apperrors.Fields(err)})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// badRequest answers 400 with an optional field map
func badRequest(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Fields: fields})
}

// bindJSON decodes the request body, answering 400 when it is not valid JSON
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		badRequest(c, "Invalid request body", nil)
		return false
	}
	return true
}

// requireCaller returns the authenticated caller, answering 401 when there is none
func requireCaller(c *gin.Context) (access.Caller, bool) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication credentials were not provided"})
		return access.Caller{}, false
	}
	return caller, true
}

// pathID parses the :id path parameter
func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid "+what+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and page_size. Out-of-range values are normalized by the services.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 0
	}
	return page, pageSize
}

// queryFilters parses optional typed query parameters and collects per-field errors
type queryFilters struct {
	c      *gin.Context
	fields map[string]string
}

func newQueryFilters(c *gin.Context) *queryFilters {
	return &queryFilters{c: c, fields: map[string]string{}}
}

func (q *queryFilters) uuidParam(name string) *uuid.UUID {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		q.fields[name] = "Enter a valid UUID."
		return nil
	}
	return &id
}

func (q *queryFilters) intParam(name string) *int {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.fields[name] = "Enter a whole number."
		return nil
	}
	return &n
}

func (q *queryFilters) boolParam(name string) *bool {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.fields[name] = "Enter a valid boolean."
		return nil
	}
	return &b
}

// ok answers 400 and returns false when any filter failed to parse
func (q *queryFilters) ok() bool {
	if len(q.fields) > 0 {
		badRequest(q.c, "Invalid query parameters", q.fields)
		return false
	}
	return true
}

// isPartial reports whether the request is a PATCH
func isPartial(c *gin.Context) bool {
	return c.Request.Method == http.MethodPatch
}
