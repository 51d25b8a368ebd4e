package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"

	"github.com/gin-gonic/gin"
)

// CourtHandler defines the interface for handling court-related operations
type CourtHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type courtHandler struct {
	courtService courts.CourtService
}

// NewCourtHandler creates a new CourtHandler
func NewCourtHandler(courtService courts.CourtService) CourtHandler {
	return &courtHandler{
		courtService: courtService,
	}
}

// List fetches courts optionally filtered by query parameters
func (handler *courtHandler) List(ctx *gin.Context) {
	query := courts.NewCourtQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if jurisdiction := ctx.Query("jurisdiction"); len(jurisdiction) > 0 {
		query.Jurisdiction = jurisdiction
	}

	inUse, err := parseBoolParam(ctx, "in_use")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.InUse = inUse

	if fullName := ctx.Query("full_name"); len(fullName) > 0 {
		query.FullName = fullName
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

	courtList, total, err := handler.courtService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []CourtResponse{}
	for _, court := range courtList {
		results = append(results, NewCourtResponse(court))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches a court by its slug
func (handler *courtHandler) GetByID(ctx *gin.Context) {
	courtID := ctx.Param("id")

	court, err := handler.courtService.GetByID(ctx, courtID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("court with id %s not found", courtID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewCourtResponse(court))
}

// Create creates a new court
func (handler *courtHandler) Create(ctx *gin.Context) {
	var request CourtRequest
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

	court := request.ToDomain()
	if err := handler.courtService.Create(ctx, court); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error creating court: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewCourtResponse(court))
}

// UpdateByID updates an existing court
func (handler *courtHandler) UpdateByID(ctx *gin.Context) {
	courtID := ctx.Param("id")

	court, err := handler.courtService.GetByID(ctx, courtID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("court with id %s not found", courtID),
		})
		return
	}

	var request CourtRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid request body: %v", err.Error()),
		})
		return
	}
	request.ID = courtID

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	updated := request.ToDomain()
	updated.DateModified = court.DateModified
	if err := handler.courtService.UpdateByID(ctx, updated); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error updating court: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewCourtResponse(updated))
}

// DeleteByID deletes a court by its slug
func (handler *courtHandler) DeleteByID(ctx *gin.Context) {
	courtID := ctx.Param("id")

	if _, err := handler.courtService.GetByID(ctx, courtID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("court with id %s not found", courtID),
		})
		return
	}

	if err := handler.courtService.DeleteByID(ctx, courtID); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error deleting court: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted court with id %s", courtID),
	})
}

// OriginatingCourtInfoHandler defines the interface for handling originating
// court info operations
type OriginatingCourtInfoHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type originatingCourtInfoHandler struct {
	originatingCourtService courts.OriginatingCourtInfoService
}

// NewOriginatingCourtInfoHandler creates a new OriginatingCourtInfoHandler
func NewOriginatingCourtInfoHandler(originatingCourtService courts.OriginatingCourtInfoService) OriginatingCourtInfoHandler {
	return &originatingCourtInfoHandler{
		originatingCourtService: originatingCourtService,
	}
}

// List fetches originating court info records
func (handler *originatingCourtInfoHandler) List(ctx *gin.Context) {
	query := courts.NewOriginatingCourtInfoQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if docketNumber := ctx.Query("docket_number"); len(docketNumber) > 0 {
		query.DocketNumber = docketNumber
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

	infoList, total, err := handler.originatingCourtService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []OriginatingCourtInfoResponse{}
	for _, info := range infoList {
		results = append(results, NewOriginatingCourtInfoResponse(info))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches an originating court info record by ID
func (handler *originatingCourtInfoHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	info, err := handler.originatingCourtService.GetByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("originating court info with id %s not found", id),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewOriginatingCourtInfoResponse(info))
}

// Create creates a new originating court info record
func (handler *originatingCourtInfoHandler) Create(ctx *gin.Context) {
	var request OriginatingCourtInfoRequest
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

	info := request.ToDomain()
	if err := handler.originatingCourtService.Create(ctx, info); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error creating originating court info: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewOriginatingCourtInfoResponse(info))
}

// UpdateByID updates an existing originating court info record
func (handler *originatingCourtInfoHandler) UpdateByID(ctx *gin.Context) {
	id := ctx.Param("id")

	existing, err := handler.originatingCourtService.GetByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("originating court info with id %s not found", id),
		})
		return
	}

	var request OriginatingCourtInfoRequest
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
	if err := handler.originatingCourtService.UpdateByID(ctx, updated); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("error updating originating court info: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewOriginatingCourtInfoResponse(updated))
}

// DeleteByID deletes an originating court info record by ID
func (handler *originatingCourtInfoHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := handler.originatingCourtService.GetByID(ctx, id); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("originating court info with id %s not found", id),
		})
		return
	}

	if err := handler.originatingCourtService.DeleteByID(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error deleting originating court info: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted originating court info with id %s", id),
	})
}
