package http_test

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"waypost/internal/modkit/routekit"
	phttp "waypost/internal/platform/net/http"

	metahttp "waypost/internal/services/api/meta/http"

	"github.com/go-chi/chi/v5"
)

type failingPinger struct{}

func (failingPinger) Ping(stdctx.Context) error { return errors.New("down") }

type okPinger struct{}

func (okPinger) Ping(stdctx.Context) error { return nil }

func serve(t *testing.T, d metahttp.Deps, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	routekit.MustMount(phttp.AdaptChi(mux), metahttp.Routes(d), routekit.Options{})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	d := metahttp.Deps{ServiceName: "waypost-api", StartedAt: time.Now().Add(-time.Minute)}
	rec := serve(t, d, "/health")

	if rec.Code != 200 {
		t.Fatalf("health status: got=%d", rec.Code)
	}
	var out metahttp.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("health body: %v", err)
	}
	if !out.OK || out.Service != "waypost-api" {
		t.Fatalf("unexpected health payload: %+v", out)
	}
}

func TestReady_SkipsNilSeams(t *testing.T) {
	t.Parallel()

	rec := serve(t, metahttp.Deps{ServiceName: "waypost-api"}, "/ready")

	var out metahttp.ReadyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("ready body: %v", err)
	}
	if out.Status != "degraded" {
		t.Fatalf("expected degraded with no pg seam, got %q", out.Status)
	}
	if len(out.Checks) != 1 || out.Checks[0].Status != "skipped" {
		t.Fatalf("unexpected checks: %+v", out.Checks)
	}
}

func TestReady_ReportsPingOutcome(t *testing.T) {
	t.Parallel()

	rec := serve(t, metahttp.Deps{PG: okPinger{}}, "/ready")
	var out metahttp.ReadyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("ready body: %v", err)
	}
	if out.Status != "ok" || out.Checks[0].Status != "ok" {
		t.Fatalf("expected ok with healthy pg, got %+v", out)
	}

	rec = serve(t, metahttp.Deps{PG: failingPinger{}}, "/ready")
	out = metahttp.ReadyResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("ready body: %v", err)
	}
	if out.Status != "fail" || out.Checks[0].Error == "" {
		t.Fatalf("expected fail with broken pg, got %+v", out)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	rec := serve(t, metahttp.Deps{}, "/version")
	if rec.Code != 200 {
		t.Fatalf("version status: got=%d", rec.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("version body: %v", err)
	}
	if out["service"] != "waypost-api" {
		t.Fatalf("unexpected version payload: %v", out)
	}
}
