package v1

import (
	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"
	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"
	"github.com/SharpenYourSword/courtlistener/internal/domain/opinions"
	"github.com/SharpenYourSword/courtlistener/internal/domain/search"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/cache"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Services bundles the service layer handed to the router.
type Services struct {
	CourtService            courts.CourtService
	OriginatingCourtService courts.OriginatingCourtInfoService
	DocketService           dockets.DocketService
	DocketEntryService      dockets.DocketEntryService
	CaseDocumentService     dockets.CaseDocumentService
	TagService              dockets.TagService
	OpinionClusterService   opinions.OpinionClusterService
	OpinionService          opinions.OpinionService
	CitationService         opinions.CitationService
	SearchService           search.SearchService
}

// SetupRoutes sets up all the API routes for version 1.
//
// Reads on the open resources need no credentials. Writes need a write API
// key. Docket entries, case documents and tags need a restricted-scope key
// and are read-only over HTTP. Search is open to everyone.
func SetupRoutes(r *gin.Engine,
	services Services,
	listCache cache.ListCache,
	authSettings config.AuthSettings,
	logger logger.Logger) {

	v1 := r.Group(BasePath) // lookup in version file

	requireWriteKey := RequireWriteKey(authSettings)
	requireRestrictedKey := RequireRestrictedKey(authSettings)

	// Courts Routes
	courtHandler := NewCourtHandler(services.CourtService)
	v1.GET("/courts", courtHandler.List)
	v1.GET("/courts/:id", courtHandler.GetByID)
	v1.POST("/courts", requireWriteKey, courtHandler.Create)
	v1.PUT("/courts/:id", requireWriteKey, courtHandler.UpdateByID)
	v1.DELETE("/courts/:id", requireWriteKey, courtHandler.DeleteByID)

	// Originating Court Info Routes
	originatingHandler := NewOriginatingCourtInfoHandler(services.OriginatingCourtService)
	v1.GET("/originating-court-information", originatingHandler.List)
	v1.GET("/originating-court-information/:id", originatingHandler.GetByID)
	v1.POST("/originating-court-information", requireWriteKey, originatingHandler.Create)
	v1.PUT("/originating-court-information/:id", requireWriteKey, originatingHandler.UpdateByID)
	v1.DELETE("/originating-court-information/:id", requireWriteKey, originatingHandler.DeleteByID)

	// Dockets Routes
	docketHandler := NewDocketHandler(services.DocketService)
	v1.GET("/dockets", docketHandler.List)
	v1.GET("/dockets/:id", docketHandler.GetByID)
	v1.POST("/dockets", requireWriteKey, docketHandler.Create)
	v1.PUT("/dockets/:id", requireWriteKey, docketHandler.UpdateByID)
	v1.DELETE("/dockets/:id", requireWriteKey, docketHandler.DeleteByID)

	// Docket Entries Routes (restricted, read-only)
	docketEntryHandler := NewDocketEntryHandler(services.DocketEntryService)
	docketEntries := v1.Group("/docket-entries", requireRestrictedKey)
	docketEntries.GET("", docketEntryHandler.List)
	docketEntries.GET("/:id", docketEntryHandler.GetByID)

	// Case Documents Routes (restricted, read-only, list responses cached)
	caseDocumentHandler := NewCaseDocumentHandler(services.CaseDocumentService)
	caseDocuments := v1.Group("/case-documents", requireRestrictedKey)
	caseDocuments.GET("", CacheListResponses(listCache, logger), caseDocumentHandler.List)
	caseDocuments.GET("/:id", caseDocumentHandler.GetByID)

	// Tags Routes (restricted, read-only)
	tagHandler := NewTagHandler(services.TagService)
	tags := v1.Group("/tags", requireRestrictedKey)
	tags.GET("", tagHandler.List)
	tags.GET("/:id", tagHandler.GetByID)

	// Opinion Clusters Routes
	clusterHandler := NewOpinionClusterHandler(services.OpinionClusterService)
	v1.GET("/clusters", clusterHandler.List)
	v1.GET("/clusters/:id", clusterHandler.GetByID)
	v1.POST("/clusters", requireWriteKey, clusterHandler.Create)
	v1.PUT("/clusters/:id", requireWriteKey, clusterHandler.UpdateByID)
	v1.DELETE("/clusters/:id", requireWriteKey, clusterHandler.DeleteByID)

	// Opinions Routes
	opinionHandler := NewOpinionHandler(services.OpinionService)
	v1.GET("/opinions", opinionHandler.List)
	v1.GET("/opinions/:id", opinionHandler.GetByID)
	v1.POST("/opinions", requireWriteKey, opinionHandler.Create)
	v1.PUT("/opinions/:id", requireWriteKey, opinionHandler.UpdateByID)
	v1.DELETE("/opinions/:id", requireWriteKey, opinionHandler.DeleteByID)

	// Citations Routes
	citationHandler := NewCitationHandler(services.CitationService)
	v1.GET("/citations", citationHandler.List)
	v1.GET("/citations/:id", citationHandler.GetByID)
	v1.POST("/citations", requireWriteKey, citationHandler.Create)
	v1.PUT("/citations/:id", requireWriteKey, citationHandler.UpdateByID)
	v1.DELETE("/citations/:id", requireWriteKey, citationHandler.DeleteByID)

	// Search Route
	searchHandler := NewSearchHandler(services.SearchService)
	v1.GET("/search", searchHandler.Search)
}
