package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pagination reads the skip/limit query parameters, falling back to defaults
// on anything missing or unparseable.
func pagination(ctx *gin.Context) (int, int) {
	skip := defaultSkip
	limit := defaultLimit

	if value, err := strconv.Atoi(ctx.DefaultQuery("skip", "")); err == nil && value >= 0 {
		skip = value
	}

	if value, err := strconv.Atoi(ctx.DefaultQuery("limit", "")); err == nil && value >= 0 {
		limit = value
	}

	return skip, limit
}

// uintParam parses a numeric path parameter.
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)

	if err != nil {
		return 0, false
	}

	return uint(value), true
}

// uintQuery parses a numeric query parameter.
func uintQuery(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Query(name), 10, 32)

	if err != nil {
		return 0, false
	}

	return uint(value), true
}
