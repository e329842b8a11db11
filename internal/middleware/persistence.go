package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SnapshotSaver saves the in-memory stores to durable storage.
type SnapshotSaver interface {
	Save() error
}

// SaveAfterMutation creates a Gin middleware that persists the stores after
// every successful mutating request. Persistence lives with the caller of
// the engine; read-only requests never trigger a save.
func SaveAfterMutation(saver SnapshotSaver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		if err := saver.Save(); err != nil {
			// The mutation already happened in memory; losing a snapshot is
			// logged, not surfaced to the client.
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to save snapshot after mutation",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", err.Error()))
		}
	}
}
