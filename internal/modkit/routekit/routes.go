// Package routekit mounts a service declaration, a map keyed by
// "<METHOD> <path>", onto the underlying router, resolving each route's
// schema from the compiled table along the way
package routekit

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"waypost/internal/modkit/httpkit"
	"waypost/internal/modkit/replykit"
	"waypost/internal/modkit/schemakit"
	perr "waypost/internal/platform/errors"
	"waypost/internal/platform/logger"
	pnet "waypost/internal/platform/net"
	"waypost/internal/platform/net/middleware"
)

// Handler is the contract handler form: it receives the request and the
// reply builder and must terminate the reply before returning
type Handler func(r *http.Request, reply *replykit.Reply) error

// Route is the declaration form carrying route options beside the handler
type Route struct {
	Handler Handler

	// Schema is an explicitly authored route schema; table resolution
	// merges into it rather than replacing it
	Schema *schemakit.RouteSchema

	// Timeout cancels the request context after the duration when set
	Timeout time.Duration

	// Mw are per route middlewares applied outside the handler
	Mw []func(http.Handler) http.Handler
}

// Routes is one service declaration, consumed exactly once at mount time
// values are either a bare Handler or a Route
type Routes map[string]any

// Options configures one mount pass
type Options struct {
	// Resolver attaches schema table fragments; nil skips resolution
	Resolver *schemakit.Resolver

	// Prefix is handed to the resolver so nested route groups with
	// independent tables skip each other's registrations
	Prefix string

	// Manifest collects resolved schemas for documentation consumers
	Manifest *schemakit.Manifest
}

// methods are the recognized verb tokens, upper case
var methods = map[string]struct{}{
	"DELETE":  {},
	"GET":     {},
	"HEAD":    {},
	"PATCH":   {},
	"POST":    {},
	"PUT":     {},
	"OPTIONS": {},
}

// binding is one fully parsed and resolved declaration entry
type binding struct {
	key     string
	method  string
	path    string // registration path, "" already normalized to "/"
	handler Handler
	schema  *schemakit.RouteSchema
	timeout time.Duration
	mw      []func(http.Handler) http.Handler
}

// Mount validates and registers the whole declaration, all or nothing
// a single malformed entry aborts before any route reaches the router,
// and the error names the offending key
func Mount(r httpkit.Router, decl Routes, opt Options) error {
	keys := make([]string, 0, len(decl))
	for k := range decl {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]binding, 0, len(keys))
	for _, key := range keys {
		b, err := parse(key, decl[key], opt)
		if err != nil {
			return err
		}
		bindings = append(bindings, b)
	}

	for _, b := range bindings {
		if opt.Manifest != nil {
			opt.Manifest.Put(schemakit.Key(b.method, b.path), b.schema)
		}
		register(r, b)
	}
	return nil
}

// MustMount mounts or aborts the process, for startup wiring
func MustMount(r httpkit.Router, decl Routes, opt Options) {
	if err := Mount(r, decl, opt); err != nil {
		logger.Get().Panic().Err(err).Msg("route registration failed")
	}
}

// parse splits and validates one declaration entry and resolves its schema
func parse(key string, value any, opt Options) (binding, error) {
	parts := strings.SplitN(key, " ", 2)
	if len(parts) != 2 {
		return binding{}, perr.RoutesErrf("route %q has no path after the method token", key)
	}
	method := strings.ToUpper(parts[0])
	if _, ok := methods[method]; !ok {
		return binding{}, perr.RoutesErrf("unknown method %q in route %q", parts[0], key)
	}
	// the remainder is the path verbatim, spaces included
	path := parts[1]

	b := binding{key: key, method: method, path: path}
	switch v := value.(type) {
	case Handler:
		b.handler = v
	case func(*http.Request, *replykit.Reply) error:
		b.handler = v
	case Route:
		if v.Handler == nil {
			return binding{}, perr.RoutesErrf("route %q declares options but no handler", key)
		}
		b.handler = v.Handler
		b.schema = v.Schema
		b.timeout = v.Timeout
		b.mw = v.Mw
	default:
		return binding{}, perr.RoutesErrf("unknown handler for route %q", key)
	}

	if opt.Resolver != nil {
		b.schema = opt.Resolver.Apply(opt.Prefix, b.method, b.path, b.schema)
	}
	if b.path == "" {
		b.path = "/"
	}
	return b, nil
}

// register attaches one binding to the router under its verb
func register(r httpkit.Router, b binding) {
	h := b.wrap()
	switch b.method {
	case "DELETE":
		r.Delete(b.path, h)
	case "GET":
		r.Get(b.path, h)
	case "HEAD":
		r.Head(b.path, h)
	case "PATCH":
		r.Patch(b.path, h)
	case "POST":
		r.Post(b.path, h)
	case "PUT":
		r.Put(b.path, h)
	case "OPTIONS":
		r.Options(b.path, h)
	}
}

// wrap turns a binding into a platform handler: annotate the context,
// run the per route middlewares, build the reply bound to the resolved
// contract, run the handler, and turn whatever it did wrong into a
// logged failure. Annotation is the outermost layer so every middleware
// already observes the operation path
func (b binding) wrap() httpkit.Handler {
	inner := func(w http.ResponseWriter, r *http.Request) {
		op := pnet.Operation(r.Context())

		reply := replykit.New(op, b.schema, replykit.HTTP(w))
		if err := b.handler(r, reply); err != nil {
			if reply.Sent() {
				logger.C(r.Context()).Error().Err(err).Str("route", op).
					Msg("handler error after reply was sent")
				return
			}
			httpkit.RespondError(w, r, err)
			return
		}
		if !reply.Sent() {
			logger.C(r.Context()).Error().Str("route", op).
				Msg("handler returned without sending a reply")
			httpkit.RespondError(w, r, perr.Contractf("%s: handler returned without sending", op))
		}
	}

	std := http.Handler(http.HandlerFunc(inner))
	for i := len(b.mw) - 1; i >= 0; i-- {
		std = b.mw[i](std)
	}
	if b.timeout > 0 {
		std = middleware.Timeout(b.timeout)(std)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		std.ServeHTTP(w, annotate(r, operation(r, b.method, b.path)))
	}
}
