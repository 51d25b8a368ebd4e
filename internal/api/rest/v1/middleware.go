package v1

import (
	"bytes"
	"net/http"
	"time"

	"github.com/SharpenYourSword/courtlistener/internal/infrastructure/cache"
	"github.com/SharpenYourSword/courtlistener/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogging logs one line per handled API request.
func RequestLogging(logger logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Info("Handled ", ctx.Request.Method, " ", ctx.Request.URL.Path,
			" with status ", ctx.Writer.Status(), " in ", time.Since(start).String())
	}
}

// bodyCaptureWriter tees the response body so it can be stored in the cache.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheListResponses serves GET responses from the list cache, keyed by the
// full request URI, and stores successful responses on the way out. Cache
// errors fall through to the handler.
func CacheListResponses(listCache cache.ListCache, logger logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.RequestURI()

		payload, found, err := listCache.Get(ctx, key)
		if err != nil {
			logger.Warn("Failed to read list cache entry ", key, ": ", err)
		} else if found {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			ctx.Abort()
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = writer

		ctx.Next()

		if ctx.Writer.Status() == http.StatusOK {
			if err := listCache.Set(ctx, key, writer.body.Bytes()); err != nil {
				logger.Warn("Failed to write list cache entry ", key, ": ", err)
			}
		}
	}
}
