package v1

import (
	"net/http"

	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header carrying the caller's static API key.
const APIKeyHeader = "X-API-Key"

func keyInList(key string, allowed []string) bool {
	if key == "" {
		return false
	}
	for _, candidate := range allowed {
		if key == candidate {
			return true
		}
	}
	return false
}

// RequireWriteKey guards write endpoints. Reads stay open; requests pass
// only with a configured write API key.
func RequireWriteKey(settings config.AuthSettings) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.GetHeader(APIKeyHeader)
		if !keyInList(key, settings.WriteAPIKeys) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "a write API key is required for this operation",
			})
			return
		}
		ctx.Next()
	}
}

// RequireRestrictedKey guards the restricted resources (docket entries, case
// documents, tags). Every access needs a restricted-scope key, and even then
// only reads are allowed.
func RequireRestrictedKey(settings config.AuthSettings) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.GetHeader(APIKeyHeader)
		if !keyInList(key, settings.RestrictedAPIKeys) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "a restricted-scope API key is required for this resource",
			})
			return
		}
		if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "this resource is read-only",
			})
			return
		}
		ctx.Next()
	}
}
