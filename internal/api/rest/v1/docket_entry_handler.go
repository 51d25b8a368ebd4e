package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"

	"github.com/gin-gonic/gin"
)

// DocketEntryHandler defines the interface for handling docket entry reads.
// Docket entries are maintained by ingest pipelines and are read-only over
// HTTP.
type DocketEntryHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type docketEntryHandler struct {
	docketEntryService dockets.DocketEntryService
}

// NewDocketEntryHandler creates a new DocketEntryHandler
func NewDocketEntryHandler(docketEntryService dockets.DocketEntryService) DocketEntryHandler {
	return &docketEntryHandler{
		docketEntryService: docketEntryService,
	}
}

// List fetches docket entries optionally filtered by query parameters
func (handler *docketEntryHandler) List(ctx *gin.Context) {
	query := dockets.NewDocketEntryQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if docketID := ctx.Query("docket_id"); len(docketID) > 0 {
		query.DocketID = docketID
	}

	entryNumber, err := parseInt64Param(ctx, "entry_number")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.EntryNumber = entryNumber

	filedAfter, err := parseDateParam(ctx, "filed_after")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.FiledAfter = filedAfter

	filedBefore, err := parseDateParam(ctx, "filed_before")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.FiledBefore = filedBefore

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("validation failed: %v", err.Error()),
		})
		return
	}

	entryList, total, err := handler.docketEntryService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []DocketEntryResponse{}
	for _, entry := range entryList {
		results = append(results, NewDocketEntryResponse(entry))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches a docket entry by its ID
func (handler *docketEntryHandler) GetByID(ctx *gin.Context) {
	entryID := ctx.Param("id")

	entry, err := handler.docketEntryService.GetByID(ctx, entryID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("docket entry with id %s not found", entryID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewDocketEntryResponse(entry))
}
