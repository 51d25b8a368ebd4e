//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/search"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_Search_Success(t *testing.T) {
	mockSearchService := new(MockSearchService)
	handler := NewSearchHandler(mockSearchService)

	filed := time.Date(1966, 6, 13, 0, 0, 0, 0, time.UTC)
	result := search.Result{
		ID:            "c1",
		ResultType:    "o",
		CaseName:      "Miranda v. Arizona",
		CourtID:       "scotus",
		Court:         "Supreme Court of the United States",
		DateFiled:     &filed,
		CitationCount: 5000,
		AbsoluteURL:   "/opinion/c1/",
	}

	mockSearchService.On("Search", mock.Anything, mock.MatchedBy(func(query *search.Query) bool {
		return query.Q == "miranda" && query.Type == search.TypeOpinion &&
			query.OrderBy == search.DefaultOrdering
	})).Return([]*search.Result{&result}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search?q=miranda", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Miranda v. Arizona")
	assert.Contains(t, w.Body.String(), `"count":1`)
	mockSearchService.AssertExpectations(t)
}

func TestSearchHandler_Search_EmptyQueryMatchesEverything(t *testing.T) {
	mockSearchService := new(MockSearchService)
	handler := NewSearchHandler(mockSearchService)

	mockSearchService.On("Search", mock.Anything, mock.MatchedBy(func(query *search.Query) bool {
		return query.Q == "*"
	})).Return([]*search.Result{}, int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearchService.AssertExpectations(t)
}

func TestSearchHandler_Search_InvalidForm_FieldErrors(t *testing.T) {
	mockSearchService := new(MockSearchService)
	handler := NewSearchHandler(mockSearchService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search?type=x&cited_gt=abc&filed_after=junk", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fieldErrors map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fieldErrors))
	assert.Contains(t, fieldErrors, "type")
	assert.Contains(t, fieldErrors, "cited_gt")
	assert.Contains(t, fieldErrors, "filed_after")
	mockSearchService.AssertNotCalled(t, "Search")
}

func TestSearchHandler_Search_PaginationApplied(t *testing.T) {
	mockSearchService := new(MockSearchService)
	handler := NewSearchHandler(mockSearchService)

	mockSearchService.On("Search", mock.Anything, mock.MatchedBy(func(query *search.Query) bool {
		return query.Limit == 20 && query.Offset == 40
	})).Return([]*search.Result{}, int64(100), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/search?q=test&page=3&page_size=20", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int64   `json:"count"`
		Next  *string `json:"next"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(100), response.Count)
	require.NotNil(t, response.Next)
	assert.Contains(t, *response.Next, "page=4")
	mockSearchService.AssertExpectations(t)
}
