//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SharpenYourSword/courtlistener/internal/domain/search"
	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/cache"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T, authSettings config.AuthSettings) (*gin.Engine, *MockSearchService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.SetupTestLogger(t)
	listCache, err := cache.NewListCache(config.CacheSettings{Enabled: false}, log)
	require.NoError(t, err)

	mockSearchService := new(MockSearchService)

	services := Services{
		CourtService:            new(MockCourtService),
		OriginatingCourtService: new(MockOriginatingCourtInfoService),
		DocketService:           new(MockDocketService),
		DocketEntryService:      new(MockDocketEntryService),
		CaseDocumentService:     new(MockCaseDocumentService),
		TagService:              new(MockTagService),
		OpinionClusterService:   new(MockOpinionClusterService),
		OpinionService:          new(MockOpinionService),
		CitationService:         new(MockCitationService),
		SearchService:           mockSearchService,
	}

	r := gin.New()
	SetupRoutes(r, services, listCache, authSettings, log)
	return r, mockSearchService
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	r, _ := setupTestRouter(t, config.AuthSettings{})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	tests := []struct {
		method string
		path   string
	}{
		{"GET", BasePath + "/courts"},
		{"GET", BasePath + "/courts/:id"},
		{"POST", BasePath + "/courts"},
		{"PUT", BasePath + "/courts/:id"},
		{"DELETE", BasePath + "/courts/:id"},
		{"GET", BasePath + "/originating-court-information"},
		{"GET", BasePath + "/dockets"},
		{"POST", BasePath + "/dockets"},
		{"GET", BasePath + "/docket-entries"},
		{"GET", BasePath + "/case-documents"},
		{"GET", BasePath + "/tags"},
		{"GET", BasePath + "/clusters"},
		{"POST", BasePath + "/clusters"},
		{"GET", BasePath + "/opinions"},
		{"POST", BasePath + "/opinions"},
		{"GET", BasePath + "/citations"},
		{"POST", BasePath + "/citations"},
		{"PUT", BasePath + "/citations/:id"},
		{"DELETE", BasePath + "/citations/:id"},
		{"GET", BasePath + "/search"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.True(t, registered[tt.method+" "+tt.path], "Route should be registered")
		})
	}
}

func TestSetupRoutes_WriteEndpointsRequireKey(t *testing.T) {
	r, _ := setupTestRouter(t, config.AuthSettings{WriteAPIKeys: []string{"secret"}})

	tests := []struct {
		method string
		url    string
	}{
		{"POST", BasePath + "/courts"},
		{"PUT", BasePath + "/courts/scotus"},
		{"DELETE", BasePath + "/courts/scotus"},
		{"POST", BasePath + "/dockets"},
		{"POST", BasePath + "/clusters"},
		{"POST", BasePath + "/opinions"},
		{"POST", BasePath + "/citations"},
		{"PUT", BasePath + "/citations/3a8e1c5d-7b2f-4d9a-8e6c-1f4b7a9d3e5c"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestSetupRoutes_RestrictedResourcesRequireKey(t *testing.T) {
	r, _ := setupTestRouter(t, config.AuthSettings{RestrictedAPIKeys: []string{"inner"}})

	tests := []string{
		BasePath + "/docket-entries",
		BasePath + "/case-documents",
		BasePath + "/tags",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			req, _ := http.NewRequest("GET", url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestSetupRoutes_SearchIsOpen(t *testing.T) {
	r, mockSearchService := setupTestRouter(t, config.AuthSettings{
		WriteAPIKeys:      []string{"secret"},
		RestrictedAPIKeys: []string{"inner"},
	})

	mockSearchService.On("Search", mock.Anything, mock.Anything).
		Return([]*search.Result{}, int64(0), nil)

	req, _ := http.NewRequest("GET", BasePath+"/search?q=test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearchService.AssertExpectations(t)
}
