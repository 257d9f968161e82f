package schemakit

import (
	"bytes"
	"encoding/json"

	perr "waypost/internal/platform/errors"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compile verifies every schema document in the bundle is a valid JSON
// Schema, so a malformed table aborts startup naming the offending route
// key instead of surfacing as a confusing downstream failure
func (b Bundle) Compile() error {
	for key, frag := range b.Routes {
		if req := frag.Request; req != nil {
			for _, doc := range []struct {
				section string
				raw     json.RawMessage
			}{
				{"querystring", req.Querystring},
				{"params", req.Params},
				{"headers", req.Headers},
				{"body", req.Body},
			} {
				if err := compileDoc(doc.raw); err != nil {
					return perr.Wrapf(err, perr.ErrorCodeSchema, "route %q: invalid %s schema", key, doc.section)
				}
			}
		}
		for status, raw := range frag.Response {
			if err := compileDoc(raw); err != nil {
				return perr.Wrapf(err, perr.ErrorCodeSchema, "route %q: invalid response schema for status %s", key, status)
			}
		}
	}
	return nil
}

// compileDoc compiles one raw schema document with a fresh compiler
func compileDoc(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("table.json", doc); err != nil {
		return err
	}
	_, err = c.Compile("table.json")
	return err
}
