package v1

import (
	"fmt"
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"

	"github.com/gin-gonic/gin"
)

// CaseDocumentHandler defines the interface for handling case document reads.
// Case documents are maintained by ingest pipelines and are read-only over
// HTTP.
type CaseDocumentHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type caseDocumentHandler struct {
	caseDocumentService dockets.CaseDocumentService
}

// NewCaseDocumentHandler creates a new CaseDocumentHandler
func NewCaseDocumentHandler(caseDocumentService dockets.CaseDocumentService) CaseDocumentHandler {
	return &caseDocumentHandler{
		caseDocumentService: caseDocumentService,
	}
}

// List fetches case documents optionally filtered by query parameters
func (handler *caseDocumentHandler) List(ctx *gin.Context) {
	query := dockets.NewCaseDocumentQuery()
	params := parsePageParams(ctx)
	query.Limit = params.Limit()
	query.Offset = params.Offset()

	if docketEntryID := ctx.Query("docket_entry_id"); len(docketEntryID) > 0 {
		query.DocketEntryID = docketEntryID
	}

	if documentNumber := ctx.Query("document_number"); len(documentNumber) > 0 {
		query.DocumentNumber = documentNumber
	}

	if documentType := ctx.Query("document_type"); len(documentType) > 0 {
		query.DocumentType = documentType
	}

	isAvailable, err := parseBoolParam(ctx, "is_available")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	query.IsAvailable = isAvailable

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

	documentList, total, err := handler.caseDocumentService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	results := []CaseDocumentResponse{}
	for _, document := range documentList {
		results = append(results, NewCaseDocumentResponse(document))
	}

	ctx.JSON(http.StatusOK, newPaginatedResponse(ctx, params, total, results))
}

// GetByID fetches a case document by its ID
func (handler *caseDocumentHandler) GetByID(ctx *gin.Context) {
	documentID := ctx.Param("id")

	document, err := handler.caseDocumentService.GetByID(ctx, documentID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("case document with id %s not found", documentID),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewCaseDocumentResponse(document))
}
