package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"

	"github.com/gin-gonic/gin"
)

// CitationHandler defines the interface for handling citation edge operations
type CitationHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type citationHandler struct {
	citationService opinions.CitationService
}

// NewCitationHandler creates a new CitationHandler
func NewCitationHandler(citationService opinions.CitationService) CitationHandler {
	return &citationHandler{
		citationService: citationService,
	}
}

// List fetches citation edges optionally filtered by query parameters
func (handler *citationHandler) List(ctx *gin.Context) {
	query := opinions.NewCitationQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if citingID := ctx.Query("citing_opinion_id"); len(citingID) > 0 {
		query.CitingOpinionID = citingID
	}

	if citedID := ctx.Query("cited_opinion_id"); len(citedID) > 0 {
		query.CitedOpinionID = citedID
	}

	depthGte, err := parseIntParam(ctx, "depth_gte")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.DepthGte = depthGte

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("validation failed: %v", err.Error()),
		})
		return
	}

	citationList, total, err := handler.citationService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []CitationResponse{}
	for _, citation := range citationList {
		results = append(results, NewCitationResponse(citation))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches a citation edge by its ID
func (handler *citationHandler) GetByID(ctx *gin.Context) {
	citationID := ctx.Param("id")

	citation, err := handler.citationService.GetByID(ctx, citationID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("citation with id %s not found", citationID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewCitationResponse(citation))
}

// Create creates a new citation edge
func (handler *citationHandler) Create(ctx *gin.Context) {
	var request CitationRequest
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

	citation := request.ToDomain()
	if err := handler.citationService.Create(ctx, citation); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error creating citation: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewCitationResponse(citation))
}

// UpdateByID updates an existing citation edge, typically to adjust its depth
func (handler *citationHandler) UpdateByID(ctx *gin.Context) {
	citationID := ctx.Param("id")

	existing, err := handler.citationService.GetByID(ctx, citationID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("citation with id %s not found", citationID),
		})
		return
	}

	var request CitationRequest
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
	if err := handler.citationService.UpdateByID(ctx, updated); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error updating citation: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewCitationResponse(updated))
}

// DeleteByID deletes a citation edge by its ID
func (handler *citationHandler) DeleteByID(ctx *gin.Context) {
	citationID := ctx.Param("id")

	if _, err := handler.citationService.GetByID(ctx, citationID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("citation with id %s not found", citationID),
		})
		return
	}

	if err := handler.citationService.DeleteByID(ctx, citationID); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error deleting citation: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted citation with id %s", citationID),
	})
}
