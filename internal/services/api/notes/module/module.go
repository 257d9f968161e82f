// Package module wires notes into the API using modkit
package module

import (
	"net/http"

	modkit "waypost/internal/modkit"
	"waypost/internal/modkit/dockit"
	"waypost/internal/modkit/httpkit"
	"waypost/internal/modkit/routekit"
	"waypost/internal/modkit/schemakit"
	"waypost/internal/platform/logger"
	str "waypost/internal/platform/strings"
	noteshttp "waypost/internal/services/api/notes/http"
	notesrepo "waypost/internal/services/api/notes/repo"
	notessvc "waypost/internal/services/api/notes/service"
)

func init() {
	dockit.Register(documentBearerAuth)
}

// documentBearerAuth defines the bearer scheme the write routes reference
// in their security declarations, so the served document resolves it
func documentBearerAuth(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemes, ok := comps["securitySchemes"].(map[string]any)
	if !ok {
		schemes = map[string]any{}
		comps["securitySchemes"] = schemes
	}
	if _, ok := schemes["bearer"]; ok {
		return
	}
	schemes["bearer"] = map[string]any{
		"type":   "http",
		"scheme": "bearer",
	}
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc notessvc.Service
}

// New constructs a notes module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("notes"), modkit.WithPrefix("/notes")}, opts...)...)

	repo := notesrepo.NewPG()
	svc := notessvc.New(deps.PG, repo)

	// the embedded table is authoritative for this module unless the
	// caller injected a resolver of their own
	resolver := deps.Schemas
	if resolver == nil {
		bundle := noteshttp.Bundle()
		if err := bundle.Compile(); err != nil {
			logger.Get().Panic().Err(err).Msg("notes schema table failed to compile")
		}
		resolver = schemakit.NewResolver(bundle, b.Prefix)
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptNotesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		routekit.MustMount(r, noteshttp.Routes(m.svc), routekit.Options{
			Resolver: resolver,
			Prefix:   m.prefix,
			Manifest: deps.Manifest,
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
