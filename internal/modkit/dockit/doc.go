// Package dockit serves API documentation assembled from the route manifest
package dockit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"waypost/internal/modkit/schemakit"
)

// SpecMutator lets modules tweak the assembled spec before it is served
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// Register adds a spec mutator for the served document
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// Build assembles an OpenAPI 3.0.3 document from the mounted route manifest
// every registered route appears under paths, schema or not, so the document
// always reflects what the router actually serves
func Build(m *schemakit.Manifest, title, version string) map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   title,
			"version": version,
		},
		"servers": []any{
			map[string]any{"url": "/"},
		},
	}

	paths := map[string]any{}
	for _, key := range m.Keys() {
		method, path, ok := splitKey(key)
		if !ok {
			continue
		}
		schema, _ := m.Get(key)

		node, ok := paths[path].(map[string]any)
		if !ok {
			node = map[string]any{}
			paths[path] = node
		}
		node[strings.ToLower(method)] = operation(schema)
	}
	spec["paths"] = paths

	ensureErrorResponseDefinition(spec)
	addDefaultError(spec)

	for _, mut := range mutators {
		mut(spec)
	}
	return spec
}

// splitKey breaks a manifest key back into its method and path halves
func splitKey(key string) (method, path string, ok bool) {
	parts := strings.SplitN(key, " ", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// operation renders one route schema as an OAS operation object
func operation(s *schemakit.RouteSchema) map[string]any {
	op := map[string]any{}

	var params []any
	if s != nil {
		params = append(params, sectionParams("query", s.Querystring)...)
		params = append(params, sectionParams("path", s.Params)...)
		params = append(params, sectionParams("header", s.Headers)...)
	}
	if len(params) > 0 {
		op["parameters"] = params
	}

	if s != nil && len(s.Body) > 0 {
		op["requestBody"] = map[string]any{
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": rawSchema(s.Body),
				},
			},
		}
	}

	if s != nil && s.Security != nil {
		op["security"] = s.Security
	}

	responses := map[string]any{}
	for _, code := range s.Statuses() {
		key := strconv.Itoa(code)
		responses[key] = map[string]any{
			"description": http.StatusText(code),
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": rawSchema(s.Response[key]),
				},
			},
		}
	}
	if len(responses) == 0 {
		responses["200"] = map[string]any{"description": "OK"}
	}
	op["responses"] = responses
	return op
}

// sectionSchema is the slice of a request section the parameter
// expansion needs: its properties and which of them are required
type sectionSchema struct {
	Properties map[string]json.RawMessage `json:"properties"`
	Required   []string                   `json:"required"`
}

// sectionParams expands one request section schema into OAS parameters
// sections that are not object schemas render as no parameters
func sectionParams(in string, raw json.RawMessage) []any {
	if len(raw) == 0 {
		return nil
	}
	var sec sectionSchema
	if err := json.Unmarshal(raw, &sec); err != nil {
		return nil
	}
	required := map[string]bool{}
	for _, name := range sec.Required {
		required[name] = true
	}
	// path parameters are always required in OAS
	out := make([]any, 0, len(sec.Properties))
	for name, prop := range sec.Properties {
		out = append(out, map[string]any{
			"name":     name,
			"in":       in,
			"required": required[name] || in == "path",
			"schema":   rawSchema(prop),
		})
	}
	return out
}

// rawSchema decodes a stored fragment into a generic value for the document
func rawSchema(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]any{}
	}
	return v
}

// ensureErrorResponseDefinition creates a simple error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultError walks every operation and injects a 500 response if absent
func addDefaultError(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	errResp := map[string]any{
		"description": "Internal Server Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses["500"]; !exists {
				responses["500"] = errResp
			}
		}
	}
}
