//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/domain/dockets"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDocket(id string) *dockets.Docket {
	return &dockets.Docket{
		ID:           id,
		CourtID:      "scotus",
		CaseName:     "Lorem v. Ipsum",
		DocketNumber: "21-1234",
		DateCreated:  time.Now().UTC(),
		DateModified: time.Now().UTC(),
	}
}

func TestDocketHandler_List_Success(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	docket := newTestDocket("6f1c2e9a-8c1e-4a2b-9f3d-2f4f6f8a1b2c")

	mockDocketService.On("List", mock.Anything, mock.MatchedBy(func(query *dockets.DocketQuery) bool {
		return query.CourtID == "scotus" && query.Limit == DefaultPageSize
	})).Return([]*dockets.Docket{docket}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dockets?court_id=scotus", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lorem v. Ipsum")
	mockDocketService.AssertExpectations(t)
}

func TestDocketHandler_List_PaginationEnvelope(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	docket := newTestDocket("6f1c2e9a-8c1e-4a2b-9f3d-2f4f6f8a1b2c")

	mockDocketService.On("List", mock.Anything, mock.MatchedBy(func(query *dockets.DocketQuery) bool {
		// page 2 of size 10 means records 10..19
		return query.Limit == 10 && query.Offset == 10
	})).Return([]*dockets.Docket{docket}, int64(35), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dockets?page=2&page_size=10", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count    int64   `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(35), response.Count)
	require.NotNil(t, response.Next)
	assert.Contains(t, *response.Next, "page=3")
	require.NotNil(t, response.Previous)
	assert.Contains(t, *response.Previous, "page=1")
	mockDocketService.AssertExpectations(t)
}

func TestDocketHandler_List_DateFilter(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	mockDocketService.On("List", mock.Anything, mock.MatchedBy(func(query *dockets.DocketQuery) bool {
		return query.FiledAfter != nil && query.FiledAfter.Year() == 2020
	})).Return([]*dockets.Docket{}, int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dockets?filed_after=2020-01-15", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockDocketService.AssertExpectations(t)
}

func TestDocketHandler_List_InvalidBool_Error(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dockets?blocked=garbage", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "blocked must be a boolean")
	mockDocketService.AssertNotCalled(t, "List")
}

func TestDocketHandler_List_InvalidDate_Error(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dockets?filed_after=not-a-date", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "filed_after must be a date")
	mockDocketService.AssertNotCalled(t, "List")
}

func TestDocketHandler_GetByID_NotFound_Error(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	mockDocketService.On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/dockets/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockDocketService.AssertExpectations(t)
}

func TestDocketHandler_UpdateByID_PreservesDateCreated(t *testing.T) {
	mockDocketService := new(MockDocketService)
	handler := NewDocketHandler(mockDocketService)

	created := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := newTestDocket("6f1c2e9a-8c1e-4a2b-9f3d-2f4f6f8a1b2c")
	existing.DateCreated = created

	mockDocketService.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	mockDocketService.On("UpdateByID", mock.Anything, mock.MatchedBy(func(docket *dockets.Docket) bool {
		return docket.ID == existing.ID && docket.DateCreated.Equal(created) &&
			docket.CaseName == "Dolor v. Amet"
	})).Return(nil)

	request := DocketRequest{
		CourtID:  "scotus",
		CaseName: "Dolor v. Amet",
	}
	body, err := json.Marshal(request)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/dockets/"+existing.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: existing.ID}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockDocketService.AssertExpectations(t)
}
