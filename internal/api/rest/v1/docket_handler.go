package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"

	"github.com/gin-gonic/gin"
)

// DocketHandler defines the interface for handling docket-related operations
type DocketHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type docketHandler struct {
	docketService dockets.DocketService
}

// NewDocketHandler creates a new DocketHandler
func NewDocketHandler(docketService dockets.DocketService) DocketHandler {
	return &docketHandler{
		docketService: docketService,
	}
}

// List fetches dockets optionally filtered by query parameters
func (handler *docketHandler) List(ctx *gin.Context) {
	query := dockets.NewDocketQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if courtID := ctx.Query("court_id"); len(courtID) > 0 {
		query.CourtID = courtID
	}

	if caseName := ctx.Query("case_name"); len(caseName) > 0 {
		query.CaseName = caseName
	}

	if docketNumber := ctx.Query("docket_number"); len(docketNumber) > 0 {
		query.DocketNumber = docketNumber
	}

	blocked, err := parseBoolParam(ctx, "blocked")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.Blocked = blocked

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

	docketList, total, err := handler.docketService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []DocketResponse{}
	for _, docket := range docketList {
		results = append(results, NewDocketResponse(docket))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches a docket by its ID
func (handler *docketHandler) GetByID(ctx *gin.Context) {
	docketID := ctx.Param("id")

	docket, err := handler.docketService.GetByID(ctx, docketID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("docket with id %s not found", docketID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewDocketResponse(docket))
}

// Create creates a new docket
func (handler *docketHandler) Create(ctx *gin.Context) {
	var request DocketRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid request body: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	docket := request.ToDomain()
	if err := handler.docketService.Create(ctx, docket); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error creating docket: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewDocketResponse(docket))
}

// UpdateByID updates an existing docket
func (handler *docketHandler) UpdateByID(ctx *gin.Context) {
	docketID := ctx.Param("id")

	existing, err := handler.docketService.GetByID(ctx, docketID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("docket with id %s not found", docketID),
		})
		return
	}

	var request DocketRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid request body: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	updated := request.ToDomain()
	updated.ID = existing.ID
	updated.DateCreated = existing.DateCreated
	updated.DateModified = existing.DateModified
	if err := handler.docketService.UpdateByID(ctx, updated); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error updating docket: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewDocketResponse(updated))
}

// DeleteByID deletes a docket by its ID
func (handler *docketHandler) DeleteByID(ctx *gin.Context) {
	docketID := ctx.Param("id")

	if _, err := handler.docketService.GetByID(ctx, docketID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("docket with id %s not found", docketID),
		})
		return
	}

	if err := handler.docketService.DeleteByID(ctx, docketID); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error deleting docket: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted docket with id %s", docketID),
	})
}
