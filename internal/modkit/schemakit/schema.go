package schemakit

import (
	"encoding/json"
	"sort"
	"strconv"
)

// RouteSchema is the merged schema attached to one registered route
// it starts as whatever the route declared explicitly and picks up table
// fragment sections plus security metadata during resolution
type RouteSchema struct {
	Querystring json.RawMessage            `json:"querystring,omitempty"`
	Params      json.RawMessage            `json:"params,omitempty"`
	Headers     json.RawMessage            `json:"headers,omitempty"`
	Body        json.RawMessage            `json:"body,omitempty"`
	Security    any                        `json:"security,omitempty"`
	Response    map[string]json.RawMessage `json:"response,omitempty"`
}

// clone copies the schema so resolution never mutates a declared one
// the Response map is shared because resolution replaces it wholesale
func (s *RouteSchema) clone() *RouteSchema {
	if s == nil {
		return &RouteSchema{}
	}
	c := *s
	return &c
}

// HasResponses reports whether the route declares any response statuses
func (s *RouteSchema) HasResponses() bool {
	return s != nil && len(s.Response) > 0
}

// Statuses returns the declared numeric response statuses in ascending order
// non numeric keys (e.g. "2xx" ranges) are skipped
func (s *RouteSchema) Statuses() []int {
	if s == nil {
		return nil
	}
	out := make([]int, 0, len(s.Response))
	for k := range s.Response {
		if n, err := strconv.Atoi(k); err == nil {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// SoleStatus returns the single declared status when the route has exactly
// one response path, which lets a handler send without selecting one
func (s *RouteSchema) SoleStatus() (int, bool) {
	if s == nil || len(s.Response) != 1 {
		return 0, false
	}
	for k := range s.Response {
		if n, err := strconv.Atoi(k); err == nil {
			return n, true
		}
	}
	return 0, false
}

// responseHead is the slice of a response schema the reply contract
// needs at runtime: the header names the status makes mandatory
type responseHead struct {
	Headers struct {
		Required []string `json:"required"`
	} `json:"headers"`
}

// RequiredHeaders returns the header names the given status declares as
// required before a reply may be sent, nil when the status declares none
func (s *RouteSchema) RequiredHeaders(status int) []string {
	if s == nil {
		return nil
	}
	raw, ok := s.Response[strconv.Itoa(status)]
	if !ok {
		return nil
	}
	var head responseHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil
	}
	return head.Headers.Required
}
