package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageSize is the default number of rows returned by capped list endpoints
	DefaultPageSize = 20
	// MaxPageSize is the hard upper bound for any capped list endpoint
	MaxPageSize = 100
)

// ClampLimit bounds a requested row limit to (0, max], falling back to def.
func ClampLimit(limit, def, max int) int {
	if max <= 0 || max > MaxPageSize {
		max = MaxPageSize
	}
	if def <= 0 || def > max {
		def = DefaultPageSize
		if def > max {
			def = max
		}
	}
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// ParseLimitParam reads the "limit" query parameter and clamps it.
func ParseLimitParam(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}
	return ClampLimit(limit, def, MaxPageSize)
}

// ParseIDParam parses a positive int64 path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
