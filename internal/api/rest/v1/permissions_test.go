//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPermissionTestRouter(settings config.AuthSettings) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ok := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
	}

	r.POST("/write", RequireWriteKey(settings), ok)
	restricted := r.Group("/restricted", RequireRestrictedKey(settings))
	restricted.GET("", ok)
	restricted.POST("", ok)

	return r
}

func TestRequireWriteKey_MissingKey_Forbidden(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{WriteAPIKeys: []string{"secret"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/write", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "write API key")
}

func TestRequireWriteKey_WrongKey_Forbidden(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{WriteAPIKeys: []string{"secret"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/write", nil)
	req.Header.Set(APIKeyHeader, "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireWriteKey_ValidKey_Allowed(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{WriteAPIKeys: []string{"secret"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/write", nil)
	req.Header.Set(APIKeyHeader, "secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRestrictedKey_MissingKey_Forbidden(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{RestrictedAPIKeys: []string{"inner"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/restricted", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "restricted-scope API key")
}

func TestRequireRestrictedKey_ValidKey_ReadAllowed(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{RestrictedAPIKeys: []string{"inner"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/restricted", nil)
	req.Header.Set(APIKeyHeader, "inner")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRestrictedKey_ValidKey_WriteForbidden(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{RestrictedAPIKeys: []string{"inner"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/restricted", nil)
	req.Header.Set(APIKeyHeader, "inner")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "read-only")
}

func TestRequireRestrictedKey_WriteKeyDoesNotGrantRestrictedAccess(t *testing.T) {
	r := newPermissionTestRouter(config.AuthSettings{
		WriteAPIKeys:      []string{"secret"},
		RestrictedAPIKeys: []string{"inner"},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/restricted", nil)
	req.Header.Set(APIKeyHeader, "secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
