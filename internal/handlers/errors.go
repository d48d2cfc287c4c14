package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"qbit/internal/calendar"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. Unknown errors are 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, service.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrReplaceAborted), errors.Is(err, service.ErrConflict):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrAIUnavailable):
		status, msg = http.StatusServiceUnavailable, "ai service unavailable"
	case errors.Is(err, service.ErrAIResponse):
		status, msg = http.StatusBadGateway, "ai service returned an unusable answer"
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// queryDay parses a required date query parameter. Writes 400 on failure.
func queryDay(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if strings.TrimSpace(raw) == "" {
		badRequest(c, name+" is required")
		return time.Time{}, false
	}
	d, err := calendar.ParseDay(raw)
	if err != nil {
		badRequest(c, err.Error())
		return time.Time{}, false
	}
	return d, true
}

// queryDayOr parses an optional date query parameter, using def when absent.
func queryDayOr(c *gin.Context, name string, def time.Time) (time.Time, bool) {
	if strings.TrimSpace(c.Query(name)) == "" {
		return def, true
	}
	return queryDay(c, name)
}

// queryInt parses an optional integer query parameter, using def when absent.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return n, true
}

func queryBool(c *gin.Context, name string) (*bool, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return &b, true
}

func requiredDay(c *gin.Context, name string, d *time.Time) (time.Time, bool) {
	if d == nil {
		badRequest(c, name+" is required")
		return time.Time{}, false
	}
	return *d, true
}
