package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"

	"github.com/gin-gonic/gin"
)

// OpinionHandler defines the interface for handling opinion-related operations
type OpinionHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type opinionHandler struct {
	opinionService opinions.OpinionService
}

// NewOpinionHandler creates a new OpinionHandler
func NewOpinionHandler(opinionService opinions.OpinionService) OpinionHandler {
	return &opinionHandler{
		opinionService: opinionService,
	}
}

// List fetches opinions optionally filtered by query parameters
func (handler *opinionHandler) List(ctx *gin.Context) {
	query := opinions.NewOpinionQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if clusterID := ctx.Query("cluster_id"); len(clusterID) > 0 {
		query.ClusterID = clusterID
	}

	if opinionType := ctx.Query("type"); len(opinionType) > 0 {
		query.Type = opinionType
	}

	if authorStr := ctx.Query("author_str"); len(authorStr) > 0 {
		query.AuthorStr = authorStr
	}

	extractedByOCR, err := parseBoolParam(ctx, "extracted_by_ocr")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.ExtractedByOCR = extractedByOCR

	perCuriam, err := parseBoolParam(ctx, "per_curiam")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.PerCuriam = perCuriam

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

	opinionList, total, err := handler.opinionService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []OpinionResponse{}
	for _, opinion := range opinionList {
		results = append(results, NewOpinionResponse(opinion))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches an opinion by its ID
func (handler *opinionHandler) GetByID(ctx *gin.Context) {
	opinionID := ctx.Param("id")

	opinion, err := handler.opinionService.GetByID(ctx, opinionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("opinion with id %s not found", opinionID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewOpinionResponse(opinion))
}

// Create creates a new opinion
func (handler *opinionHandler) Create(ctx *gin.Context) {
	var request OpinionRequest
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

	opinion := request.ToDomain()
	if err := handler.opinionService.Create(ctx, opinion); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error creating opinion: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewOpinionResponse(opinion))
}

// UpdateByID updates an existing opinion
func (handler *opinionHandler) UpdateByID(ctx *gin.Context) {
	opinionID := ctx.Param("id")

	existing, err := handler.opinionService.GetByID(ctx, opinionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("opinion with id %s not found", opinionID),
		})
		return
	}

	var request OpinionRequest
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
	if err := handler.opinionService.UpdateByID(ctx, updated); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error updating opinion: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewOpinionResponse(updated))
}

// DeleteByID deletes an opinion by its ID
func (handler *opinionHandler) DeleteByID(ctx *gin.Context) {
	opinionID := ctx.Param("id")

	if _, err := handler.opinionService.GetByID(ctx, opinionID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("opinion with id %s not found", opinionID),
		})
		return
	}

	if err := handler.opinionService.DeleteByID(ctx, opinionID); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error deleting opinion: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted opinion with id %s", opinionID),
	})
}
