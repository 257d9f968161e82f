// Package schemakit holds the compiled route schema table and the resolver
// that attaches table fragments to routes at registration time
package schemakit

import (
	"encoding/json"
	"os"

	perr "waypost/internal/platform/errors"
)

// Fragment is the request/response contract compiled for one route key
// fragments are read only once loaded; the resolver copies, never mutates
type Fragment struct {
	Request  *RequestShape              `json:"request,omitempty"`
	Response map[string]json.RawMessage `json:"response,omitempty"`
}

// RequestShape carries the per-section request schemas of a fragment
// nil sections are absent and never override an explicit route schema
type RequestShape struct {
	Querystring json.RawMessage `json:"querystring,omitempty"`
	Params      json.RawMessage `json:"params,omitempty"`
	Headers     json.RawMessage `json:"headers,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// Table maps a route key like "GET /notes" to its fragment
type Table map[string]Fragment

// Security maps a route key to a documentation only security requirement
// entries are merged into resolved schemas but never enforced here
type Security map[string]any

// Bundle is the on disk form of a compiled table plus security metadata
type Bundle struct {
	Routes   Table    `json:"routes"`
	Security Security `json:"security,omitempty"`
}

// Parse decodes a compiled schema table from JSON
func Parse(data []byte) (Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, perr.Wrap(err, perr.ErrorCodeSchema, "parse schema table")
	}
	return b, nil
}

// Load reads and parses a compiled schema table from path
func Load(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, perr.Wrapf(err, perr.ErrorCodeSchema, "read schema table %q", path)
	}
	return Parse(data)
}

// MustParse parses or panics, for embedded tables wired at init
func MustParse(data []byte) Bundle {
	b, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return b
}
