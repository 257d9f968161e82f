package schemakit

import (
	"encoding/json"
	"reflect"
	"testing"
)

func testBundle() Bundle {
	return Bundle{
		Routes: Table{
			"GET /": {
				Request: &RequestShape{
					Querystring: json.RawMessage(`{"type":"object"}`),
				},
				Response: map[string]json.RawMessage{
					"200": json.RawMessage(`{"type":"string"}`),
				},
			},
			"POST /notes": {
				Request: &RequestShape{
					Body: json.RawMessage(`{"type":"object","required":["title"]}`),
				},
				Response: map[string]json.RawMessage{
					"201": json.RawMessage(`{"type":"object"}`),
				},
			},
			"GET /headers-only": {
				Request: &RequestShape{
					Headers: json.RawMessage(`{"type":"object"}`),
				},
			},
		},
		Security: Security{
			"POST /notes": map[string]any{"bearer": []string{}},
		},
	}
}

func TestApply_RootSpellingsResolveIdentically(t *testing.T) {
	t.Parallel()

	rv := NewResolver(testBundle(), "")

	bare := rv.Apply("", "GET", "", nil)
	slash := rv.Apply("", "GET", "/", nil)

	if bare == nil || slash == nil {
		t.Fatalf("root route did not resolve: bare=%v slash=%v", bare, slash)
	}
	if !reflect.DeepEqual(bare, slash) {
		t.Fatalf("root spellings diverge:\n  %#v\n  %#v", bare, slash)
	}

	// byte identical when serialized
	a, err := json.Marshal(bare)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(slash)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("serialized schemas differ:\n  %s\n  %s", a, b)
	}
}

func TestApply_NoFragmentKeepsExplicitSchema(t *testing.T) {
	t.Parallel()

	rv := NewResolver(testBundle(), "")
	explicit := &RouteSchema{
		Body:     json.RawMessage(`{"type":"object"}`),
		Response: map[string]json.RawMessage{"204": json.RawMessage(`{}`)},
	}

	got := rv.Apply("", "DELETE", "/notes/{id}", explicit)
	if got != explicit {
		t.Fatalf("miss should return the explicit schema untouched")
	}

	if got := rv.Apply("", "DELETE", "/notes/{id}", nil); got != nil {
		t.Fatalf("miss with no explicit schema should stay nil, got %#v", got)
	}
}

func TestApply_MergePrecedence(t *testing.T) {
	t.Parallel()

	rv := NewResolver(testBundle(), "")
	explicit := &RouteSchema{
		Body:        json.RawMessage(`{"explicit":true}`),
		Querystring: json.RawMessage(`{"explicit":true}`),
		Response:    map[string]json.RawMessage{"418": json.RawMessage(`{}`)},
	}

	got := rv.Apply("", "POST", "/notes", explicit)

	// fragment body overrides the explicit one
	if string(got.Body) != `{"type":"object","required":["title"]}` {
		t.Fatalf("fragment body should win, got %s", got.Body)
	}
	// explicit querystring survives, the fragment has none
	if string(got.Querystring) != `{"explicit":true}` {
		t.Fatalf("explicit querystring should survive, got %s", got.Querystring)
	}
	// fragment response replaces the explicit map
	if _, ok := got.Response["201"]; !ok {
		t.Fatalf("fragment response missing: %#v", got.Response)
	}
	if _, ok := got.Response["418"]; ok {
		t.Fatalf("explicit response should be replaced when the fragment has one")
	}
	// security metadata rides along
	if got.Security == nil {
		t.Fatalf("security metadata not merged")
	}

	// the explicit schema itself is never mutated
	if string(explicit.Body) != `{"explicit":true}` {
		t.Fatalf("explicit schema mutated: %s", explicit.Body)
	}
}

func TestApply_FragmentWithoutResponseKeepsExplicitResponse(t *testing.T) {
	t.Parallel()

	rv := NewResolver(testBundle(), "")
	explicit := &RouteSchema{
		Response: map[string]json.RawMessage{"200": json.RawMessage(`{"type":"array"}`)},
	}

	got := rv.Apply("", "GET", "/headers-only", explicit)
	if string(got.Response["200"]) != `{"type":"array"}` {
		t.Fatalf("authored response clobbered: %#v", got.Response)
	}
	if got.Headers == nil {
		t.Fatalf("fragment headers section not merged")
	}
}

func TestApply_PrefixScoping(t *testing.T) {
	t.Parallel()

	rv := NewResolver(testBundle(), "/api/v1")

	if got := rv.Apply("/other", "GET", "/", nil); got != nil {
		t.Fatalf("foreign prefix must pass through, got %#v", got)
	}
	if got := rv.Apply("/api/v1", "GET", "/", nil); got == nil {
		t.Fatalf("matching prefix should resolve")
	}
}

func TestApply_NilResolverPassesThrough(t *testing.T) {
	t.Parallel()

	var rv *Resolver
	explicit := &RouteSchema{}
	if got := rv.Apply("", "GET", "/", explicit); got != explicit {
		t.Fatalf("nil resolver should return explicit schema")
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	if got := Key("get", "/notes"); got != "GET /notes" {
		t.Fatalf("Key = %q", got)
	}
}
