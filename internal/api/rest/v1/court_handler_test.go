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

	"github.com/SharpenYourSword/courtlistener/internal/domain/courts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourtHandler_List_Success(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	court := courts.Court{
		ID:           "scotus",
		FullName:     "Supreme Court of the United States",
		ShortName:    "SCOTUS",
		Jurisdiction: courts.JurisdictionFederalAppellate,
		DateModified: time.Now().UTC(),
	}

	mockCourtService.On("List", mock.Anything, mock.Anything).
		Return([]*courts.Court{&court}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courts?jurisdiction=F", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scotus")
	assert.Contains(t, w.Body.String(), `"count":1`)
	mockCourtService.AssertExpectations(t)
}

func TestCourtHandler_List_InvalidSort_Error(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courts?sortBy=bogus", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockCourtService.AssertNotCalled(t, "List")
}

func TestCourtHandler_List_InvalidBool_Error(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courts?in_use=maybe", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "in_use must be a boolean")
	mockCourtService.AssertNotCalled(t, "List")
}

func TestCourtHandler_List_ServiceError(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	mockCourtService.On("List", mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courts", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockCourtService.AssertExpectations(t)
}

func TestCourtHandler_GetByID_Success(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	court := courts.Court{
		ID:           "ca9",
		FullName:     "Court of Appeals for the Ninth Circuit",
		ShortName:    "9th Cir.",
		Jurisdiction: courts.JurisdictionFederalAppellate,
		DateModified: time.Now().UTC(),
	}

	mockCourtService.On("GetByID", mock.Anything, "ca9").Return(&court, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courts/ca9", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "ca9"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ca9")
	mockCourtService.AssertExpectations(t)
}

func TestCourtHandler_GetByID_NotFound_Error(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	mockCourtService.On("GetByID", mock.Anything, "nope").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courts/nope", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockCourtService.AssertExpectations(t)
}

func TestCourtHandler_Create_Success(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	mockCourtService.On("Create", mock.Anything, mock.Anything).Return(nil)

	request := CourtRequest{
		ID:           "scotus",
		FullName:     "Supreme Court of the United States",
		ShortName:    "SCOTUS",
		Jurisdiction: "F",
		InUse:        true,
	}
	body, err := json.Marshal(request)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "scotus")
	mockCourtService.AssertExpectations(t)
}

func TestCourtHandler_Create_InvalidData_Error(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	request := CourtRequest{
		ID:           "x", // too short
		Jurisdiction: "Z", // not a jurisdiction code
	}
	body, err := json.Marshal(request)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCourtService.AssertNotCalled(t, "Create")
}

func TestCourtHandler_DeleteByID_Success(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	court := courts.Court{
		ID:           "scotus",
		FullName:     "Supreme Court of the United States",
		ShortName:    "SCOTUS",
		Jurisdiction: courts.JurisdictionFederalAppellate,
		DateModified: time.Now().UTC(),
	}

	mockCourtService.On("GetByID", mock.Anything, "scotus").Return(&court, nil)
	mockCourtService.On("DeleteByID", mock.Anything, "scotus").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/courts/scotus", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "scotus"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockCourtService.AssertExpectations(t)
}

func TestCourtHandler_DeleteByID_NotFound_Error(t *testing.T) {
	mockCourtService := new(MockCourtService)
	handler := NewCourtHandler(mockCourtService)

	mockCourtService.On("GetByID", mock.Anything, "nope").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/courts/nope", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCourtService.AssertNotCalled(t, "DeleteByID")
}
