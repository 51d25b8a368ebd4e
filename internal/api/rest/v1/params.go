package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDateParam reads a query parameter as a date, accepting either a plain
// YYYY-MM-DD date or a full RFC 3339 timestamp. An absent parameter returns
// (nil, nil); an unparseable one is an error so the handler can answer 400
// instead of silently dropping the filter.
func parseDateParam(ctx *gin.Context, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	if len(raw) == 0 {
		return nil, nil
	}

	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return &parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD or RFC 3339 form, got %q", name, raw)
}

// parseBoolParam reads a query parameter as a strict boolean. Coercing
// garbage to false would apply a filter the caller never asked for, so
// anything strconv.ParseBool rejects is an error.
func parseBoolParam(ctx *gin.Context, name string) (*bool, error) {
	raw := ctx.Query(name)
	if len(raw) == 0 {
		return nil, nil
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean, got %q", name, raw)
	}
	return &parsed, nil
}

// parseInt64Param reads a query parameter as a strict int64.
func parseInt64Param(ctx *gin.Context, name string) (*int64, error) {
	raw := ctx.Query(name)
	if len(raw) == 0 {
		return nil, nil
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return &parsed, nil
}

// parseIntParam reads a query parameter as a strict int.
func parseIntParam(ctx *gin.Context, name string) (*int, error) {
	raw := ctx.Query(name)
	if len(raw) == 0 {
		return nil, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return &parsed, nil
}
