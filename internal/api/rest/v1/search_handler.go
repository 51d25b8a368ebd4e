package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/search"

	"github.com/gin-gonic/gin"
)

// SearchHandler defines the interface for handling search requests
type SearchHandler interface {
	Search(ctx *gin.Context)
}

type searchHandler struct {
	searchService search.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{
		searchService: searchService,
	}
}

// Search cleans the raw form parameters and runs the query. Invalid forms
// are answered with a 400 whose body is the field-error map.
func (handler *searchHandler) Search(ctx *gin.Context) {
	form := search.Form{
		Q:            ctx.Query("q"),
		Type:         ctx.Query("type"),
		OrderBy:      ctx.Query("order_by"),
		Court:        ctx.Query("court"),
		Judge:        ctx.Query("judge"),
		CaseName:     ctx.Query("case_name"),
		DocketNumber: ctx.Query("docket_number"),
		FiledAfter:   ctx.Query("filed_after"),
		FiledBefore:  ctx.Query("filed_before"),
		CitedGt:      ctx.Query("cited_gt"),
		CitedLt:      ctx.Query("cited_lt"),
		Status:       ctx.Query("status"),
	}

	query, fieldErrors := form.Clean()
	if fieldErrors != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	results, total, err := handler.searchService.Search(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("search failed: %v", err.Error()),
		})
		return
	}

	if results == nil {
		results = []*search.Result{}
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}
