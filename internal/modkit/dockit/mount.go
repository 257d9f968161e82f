package dockit

import (
	"encoding/json"
	"net/http"

	"waypost/internal/modkit/schemakit"
	phttp "waypost/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount the docs UI and JSON document if enabled
func Mount(r phttp.Router, m *schemakit.Manifest, title, version string, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(m, title, version))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}

// serveDocJSON renders the manifest as a fresh document on every request
// so routes mounted late still show up
func serveDocJSON(m *schemakit.Manifest, title, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Build(m, title, version))
	}
}
