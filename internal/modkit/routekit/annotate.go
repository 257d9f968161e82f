package routekit

import (
	"net/http"

	"waypost/internal/platform/logger"
	pnet "waypost/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

// operation computes "<METHOD> <routerPath>" for the current request,
// preferring the full route template the router resolved over the
// registration time fallback, never the literal request URL
func operation(r *http.Request, method, fallbackPath string) string {
	path := fallbackPath
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			path = p
		}
	}
	return method + " " + path
}

// annotate stamps the operation path onto the request context before the
// handler runs, so the handler and anything downstream can observe it
// it cannot short circuit the request and always succeeds
func annotate(r *http.Request, op string) *http.Request {
	ctx := pnet.WithOperation(r.Context(), op)
	ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), op)
	return r.WithContext(ctx)
}
