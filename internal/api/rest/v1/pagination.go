package v1

import (
	"strconv"

	"github.com/SharpenYourSword/courtlistener/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// Page-number pagination bounds.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// pageParams carries the parsed page-number pagination parameters of a
// request
type pageParams struct {
	Page     int
	PageSize int
}

// parsePageParams reads ?page and ?page_size, clamping both to sane bounds
func parsePageParams(ctx *gin.Context) pageParams {
	params := pageParams{
		Page:     1,
		PageSize: DefaultPageSize,
	}

	if page := ctx.Query("page"); len(page) > 0 {
		if parsed := strutil.ConvertToInt(page); parsed > 0 {
			params.Page = parsed
		}
	}

	if pageSize := ctx.Query("page_size"); len(pageSize) > 0 {
		if parsed := strutil.ConvertToInt(pageSize); parsed > 0 {
			params.PageSize = parsed
		}
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}

	return params
}

// Limit returns the page size as a repository limit
func (p pageParams) Limit() int {
	return p.PageSize
}

// Offset returns the record offset of the page
func (p pageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// pageURL rebuilds the request URL with the page parameter replaced
func pageURL(ctx *gin.Context, page int) *string {
	pageCopy := *ctx.Request.URL
	values := pageCopy.Query()
	values.Set("page", strconv.Itoa(page))
	pageCopy.RawQuery = values.Encode()

	url := pageCopy.String()
	return &url
}

// newPaginatedResponse wraps one page of results in the standard envelope
func newPaginatedResponse(ctx *gin.Context, params pageParams, count int64, results interface{}) PaginatedResponse {
	response := PaginatedResponse{
		Count:   count,
		Results: results,
	}

	if int64(params.Page*params.PageSize) < count {
		response.Next = pageURL(ctx, params.Page+1)
	}
	if params.Page > 1 {
		response.Previous = pageURL(ctx, params.Page-1)
	}

	return response
}
