package schemakit

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRouteSchema_Statuses(t *testing.T) {
	t.Parallel()

	s := &RouteSchema{Response: map[string]json.RawMessage{
		"404": json.RawMessage(`{}`),
		"200": json.RawMessage(`{}`),
		"2xx": json.RawMessage(`{}`), // range keys are not numeric statuses
	}}
	if got := s.Statuses(); !reflect.DeepEqual(got, []int{200, 404}) {
		t.Fatalf("Statuses = %v", got)
	}

	var nilSchema *RouteSchema
	if got := nilSchema.Statuses(); got != nil {
		t.Fatalf("nil schema Statuses = %v", got)
	}
}

func TestRouteSchema_SoleStatus(t *testing.T) {
	t.Parallel()

	one := &RouteSchema{Response: map[string]json.RawMessage{"204": json.RawMessage(`{}`)}}
	if got, ok := one.SoleStatus(); !ok || got != 204 {
		t.Fatalf("SoleStatus = %d, %v", got, ok)
	}

	two := &RouteSchema{Response: map[string]json.RawMessage{
		"200": json.RawMessage(`{}`),
		"404": json.RawMessage(`{}`),
	}}
	if _, ok := two.SoleStatus(); ok {
		t.Fatalf("two statuses must not report a sole one")
	}

	var nilSchema *RouteSchema
	if _, ok := nilSchema.SoleStatus(); ok {
		t.Fatalf("nil schema must not report a sole status")
	}
}

func TestRouteSchema_RequiredHeaders(t *testing.T) {
	t.Parallel()

	s := &RouteSchema{Response: map[string]json.RawMessage{
		"200": json.RawMessage(`{"headers":{"required":["x-total","x-page"]},"type":"array"}`),
		"404": json.RawMessage(`{"type":"object"}`),
	}}

	if got := s.RequiredHeaders(200); !reflect.DeepEqual(got, []string{"x-total", "x-page"}) {
		t.Fatalf("RequiredHeaders(200) = %v", got)
	}
	if got := s.RequiredHeaders(404); got != nil {
		t.Fatalf("RequiredHeaders(404) = %v, want none", got)
	}
	if got := s.RequiredHeaders(500); got != nil {
		t.Fatalf("undeclared status should require nothing, got %v", got)
	}
}

func TestRouteSchema_HasResponses(t *testing.T) {
	t.Parallel()

	var nilSchema *RouteSchema
	if nilSchema.HasResponses() {
		t.Fatalf("nil schema has no responses")
	}
	if (&RouteSchema{}).HasResponses() {
		t.Fatalf("empty schema has no responses")
	}
	s := &RouteSchema{Response: map[string]json.RawMessage{"200": json.RawMessage(`{}`)}}
	if !s.HasResponses() {
		t.Fatalf("schema with a status should report responses")
	}
}
