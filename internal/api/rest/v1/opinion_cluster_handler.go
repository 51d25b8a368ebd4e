package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"

	"github.com/gin-gonic/gin"
)

// OpinionClusterHandler defines the interface for handling opinion cluster
// operations
type OpinionClusterHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type opinionClusterHandler struct {
	clusterService opinions.OpinionClusterService
}

// NewOpinionClusterHandler creates a new OpinionClusterHandler
func NewOpinionClusterHandler(clusterService opinions.OpinionClusterService) OpinionClusterHandler {
	return &opinionClusterHandler{
		clusterService: clusterService,
	}
}

// List fetches opinion clusters optionally filtered by query parameters
func (handler *opinionClusterHandler) List(ctx *gin.Context) {
	query := opinions.NewOpinionClusterQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if docketID := ctx.Query("docket_id"); len(docketID) > 0 {
		query.DocketID = docketID
	}

	if caseName := ctx.Query("case_name"); len(caseName) > 0 {
		query.CaseName = caseName
	}

	if status := ctx.Query("precedential_status"); len(status) > 0 {
		query.PrecedentialStatus = status
	}

	citedGt, err := parseInt64Param(ctx, "cited_gt")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.CitationCountGt = citedGt

	citedLt, err := parseInt64Param(ctx, "cited_lt")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.CitationCountLt = citedLt

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

	blocked, err := parseBoolParam(ctx, "blocked")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.Blocked = blocked

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

	clusterList, total, err := handler.clusterService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []OpinionClusterResponse{}
	for _, cluster := range clusterList {
		results = append(results, NewOpinionClusterResponse(cluster))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches an opinion cluster by its ID
func (handler *opinionClusterHandler) GetByID(ctx *gin.Context) {
	clusterID := ctx.Param("id")

	cluster, err := handler.clusterService.GetByID(ctx, clusterID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("opinion cluster with id %s not found", clusterID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewOpinionClusterResponse(cluster))
}

// Create creates a new opinion cluster
func (handler *opinionClusterHandler) Create(ctx *gin.Context) {
	var request OpinionClusterRequest
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

	cluster := request.ToDomain()
	if err := handler.clusterService.Create(ctx, cluster); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error creating opinion cluster: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewOpinionClusterResponse(cluster))
}

// UpdateByID updates an existing opinion cluster
func (handler *opinionClusterHandler) UpdateByID(ctx *gin.Context) {
	clusterID := ctx.Param("id")

	existing, err := handler.clusterService.GetByID(ctx, clusterID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("opinion cluster with id %s not found", clusterID),
		})
		return
	}

	var request OpinionClusterRequest
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
	if err := handler.clusterService.UpdateByID(ctx, updated); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error updating opinion cluster: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewOpinionClusterResponse(updated))
}

// DeleteByID deletes an opinion cluster by its ID
func (handler *opinionClusterHandler) DeleteByID(ctx *gin.Context) {
	clusterID := ctx.Param("id")

	if _, err := handler.clusterService.GetByID(ctx, clusterID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("opinion cluster with id %s not found", clusterID),
		})
		return
	}

	if err := handler.clusterService.DeleteByID(ctx, clusterID); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error deleting opinion cluster: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted opinion cluster with id %s", clusterID),
	})
}
