package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"waypost/internal/platform/net/middleware"
)

// CommonStack returns a baseline per scope middleware slice
// compose with extra middleware in main as needed
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety: contract violations escape handlers as panics and
		// must come back as a 500 envelope, never a dead connection
		middleware.RecoverJSON,

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Second}),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}
