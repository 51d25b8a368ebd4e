//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageParamsContext(t *testing.T, target string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest("GET", target, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParsePageParams_Defaults(t *testing.T) {
	c := newPageParamsContext(t, "/dockets")

	params := parsePageParams(c)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
	assert.Equal(t, 0, params.Offset())
}

func TestParsePageParams_ExplicitValues(t *testing.T) {
	c := newPageParamsContext(t, "/dockets?page=4&page_size=25")

	params := parsePageParams(c)

	assert.Equal(t, 4, params.Page)
	assert.Equal(t, 25, params.PageSize)
	assert.Equal(t, 25, params.Limit())
	assert.Equal(t, 75, params.Offset())
}

func TestParsePageParams_ClampsPageSize(t *testing.T) {
	c := newPageParamsContext(t, "/dockets?page_size=9999")

	params := parsePageParams(c)

	assert.Equal(t, MaxPageSize, params.PageSize)
}

func TestParsePageParams_IgnoresGarbage(t *testing.T) {
	c := newPageParamsContext(t, "/dockets?page=abc&page_size=-3")

	params := parsePageParams(c)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
}

func TestNewPaginatedResponse_MiddlePage(t *testing.T) {
	c := newPageParamsContext(t, "/dockets?page=2&page_size=10&court_id=scotus")
	params := parsePageParams(c)

	response := newPaginatedResponse(c, params, 35, []string{})

	require.NotNil(t, response.Next)
	assert.Contains(t, *response.Next, "page=3")
	assert.Contains(t, *response.Next, "court_id=scotus")
	require.NotNil(t, response.Previous)
	assert.Contains(t, *response.Previous, "page=1")
	assert.Equal(t, int64(35), response.Count)
}

func TestNewPaginatedResponse_FirstAndLastPage(t *testing.T) {
	c := newPageParamsContext(t, "/dockets?page_size=10")
	params := parsePageParams(c)

	response := newPaginatedResponse(c, params, 7, []string{})

	assert.Nil(t, response.Next)
	assert.Nil(t, response.Previous)
}
