package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"

	"github.com/gin-gonic/gin"
)

// TagHandler defines the interface for handling tag reads. Tags are
// maintained by ingest pipelines and are read-only over HTTP.
type TagHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type tagHandler struct {
	tagService dockets.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService dockets.TagService) TagHandler {
	return &tagHandler{
		tagService: tagService,
	}
}

// List fetches tags optionally filtered by query parameters
func (handler *tagHandler) List(ctx *gin.Context) {
	query := dockets.NewTagQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

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

	tagList, total, err := handler.tagService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []TagResponse{}
	for _, tag := range tagList {
		results = append(results, NewTagResponse(tag))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches a tag by its ID
func (handler *tagHandler) GetByID(ctx *gin.Context) {
	tagID := ctx.Param("id")

	tag, err := handler.tagService.GetByID(ctx, tagID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("tag with id %s not found", tagID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewTagResponse(tag))
}
