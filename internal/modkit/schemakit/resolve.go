package schemakit

import "strings"

// Key builds the canonical lookup key for a method and route path
func Key(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// Resolver attaches table fragments to routes during registration
// it is built once at startup and read only afterwards
type Resolver struct {
	// Table is the compiled schema table this resolver serves
	Table Table

	// Security holds optional per route security metadata merged on match
	Security Security

	// Prefix scopes the resolver to one route group; registrations carrying
	// a different prefix pass through untouched
	Prefix string
}

// NewResolver builds a resolver over a parsed bundle for the given prefix
func NewResolver(b Bundle, prefix string) *Resolver {
	return &Resolver{Table: b.Routes, Security: b.Security, Prefix: prefix}
}

// Apply resolves the schema for one route being registered
//
// explicit is whatever schema the route declared itself; when no fragment
// matches it is returned untouched (nil stays nil). On a match the merge
// precedence is explicit, then security metadata, then the fragment's
// request sections, then the fragment's response map when present.
//
// The empty path and "/" both resolve through the "<METHOD> /" key so a
// root route gets the same schema regardless of spelling. Any other
// trailing slash variance is left alone on purpose.
func (rv *Resolver) Apply(prefix, method, routePath string, explicit *RouteSchema) *RouteSchema {
	if rv == nil || rv.Prefix != prefix {
		return explicit
	}

	key := Key(method, routePath)
	frag, ok := rv.Table[key]
	if !ok && (routePath == "" || routePath == "/") {
		key = Key(method, "/")
		frag, ok = rv.Table[key]
	}
	if !ok {
		return explicit
	}

	out := explicit.clone()
	if sec, has := rv.Security[key]; has {
		out.Security = sec
	}
	if req := frag.Request; req != nil {
		if req.Querystring != nil {
			out.Querystring = req.Querystring
		}
		if req.Params != nil {
			out.Params = req.Params
		}
		if req.Headers != nil {
			out.Headers = req.Headers
		}
		if req.Body != nil {
			out.Body = req.Body
		}
	}
	// assign only when the fragment has one so an explicitly authored
	// response map is never clobbered with nothing
	if frag.Response != nil {
		out.Response = frag.Response
	}
	return out
}
