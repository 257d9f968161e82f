// Package replykit provides the reply contract builder handlers use to
// produce a response: select a status, accumulate headers, send once
package replykit

import (
	"strings"

	"waypost/internal/modkit/schemakit"
	perr "waypost/internal/platform/errors"
)

// Reply is a per request state machine owned by a single handler call
// mutators chain; Send and Redirect are terminal and single shot
//
// Contract violations (double send, send without a selected status, send
// with a mandatory header missing) are handler bugs, not request errors,
// and panic with a structured error so they are never silently dropped.
// The recovery middleware turns an escaped one into a 500.
type Reply struct {
	op       string
	contract *schemakit.RouteSchema
	sender   Sender

	status    int
	hasStatus bool
	headers   map[string]string
	sent      bool
}

// New builds a reply bound to the route's resolved schema and a sender
// contract may be nil for routes declared without any schema
func New(op string, contract *schemakit.RouteSchema, s Sender) *Reply {
	return &Reply{op: op, contract: contract, sender: s, headers: map[string]string{}}
}

// violate panics with a contract violation error naming the operation
func (rp *Reply) violate(format string, a ...any) {
	panic(perr.Contractf("%s: "+format, append([]any{rp.op}, a...)...))
}

// Status selects or overwrites the response status; the last call before
// Send wins. A route whose contract declares no responses at all rejects
// the call, a handler cannot respond on a route documented as silent
func (rp *Reply) Status(code int) *Reply {
	if rp.sent {
		rp.violate("status %d set after reply was sent", code)
	}
	if rp.contract != nil && !rp.contract.HasResponses() {
		rp.violate("route declares no response statuses")
	}
	rp.status = code
	rp.hasStatus = true
	return rp
}

// Code is an alias for Status
func (rp *Reply) Code(code int) *Reply { return rp.Status(code) }

// Header accumulates one header; a later call for the same name overwrites
// that name only. Names are matched case insensitively
func (rp *Reply) Header(name, value string) *Reply {
	if rp.sent {
		rp.violate("header %q set after reply was sent", name)
	}
	rp.headers[strings.ToLower(name)] = value
	return rp
}

// Headers accumulates many headers at once, additive across calls
func (rp *Reply) Headers(h map[string]string) *Reply {
	for name, value := range h {
		rp.Header(name, value)
	}
	return rp
}

// GetHeader reads back one accumulated header
func (rp *Reply) GetHeader(name string) string {
	return rp.headers[strings.ToLower(name)]
}

// GetHeaders returns a copy of the accumulated headers
func (rp *Reply) GetHeaders() map[string]string {
	out := make(map[string]string, len(rp.headers))
	for k, v := range rp.headers {
		out[k] = v
	}
	return out
}

// Matches reports whether this reply is handling the given route label,
// comparing against "<METHOD> <routerPath>" for the current request
// pure and callable any number of times; foreign labels return false
func (rp *Reply) Matches(label string) bool { return label == rp.op }

// Operation returns the operation path this reply is handling
func (rp *Reply) Operation() string { return rp.op }

// AsReply returns the reply itself, so a handler can end on the reply
// object after an earlier terminal call
func (rp *Reply) AsReply() *Reply { return rp }

// Sent reports whether the terminal transition happened
func (rp *Reply) Sent() bool { return rp.sent }

// Send terminates the reply, handing status, headers, and payload to the
// underlying transport. Preconditions: the reply is unsent, a status is
// selected (or the route declares exactly one), and every header the
// selected status marks required has a value
func (rp *Reply) Send(payload any) error {
	status := rp.resolveStatus()
	rp.requireHeaders(status)
	rp.sent = true
	return rp.sender.Send(status, rp.GetHeaders(), payload)
}

// Redirect terminates like Send with no payload, a 302 status, and a
// location header pointing at url
func (rp *Reply) Redirect(url string) error {
	return rp.RedirectStatus(defaultRedirectStatus, url)
}

// RedirectStatus is Redirect with an explicit status code
// status selection goes through Status, so a route documented as never
// responding rejects a redirect the same way it rejects any reply
func (rp *Reply) RedirectStatus(code int, url string) error {
	if rp.sent {
		rp.violate("redirect after reply was sent")
	}
	rp.Status(code)
	rp.Header("location", url)
	return rp.Send(nil)
}

const defaultRedirectStatus = 302

// resolveStatus picks the effective status for the terminal transition
func (rp *Reply) resolveStatus() int {
	if rp.sent {
		rp.violate("reply already sent")
	}
	if rp.hasStatus {
		return rp.status
	}
	if rp.contract == nil {
		// schemaless route, default 200
		return 200
	}
	if !rp.contract.HasResponses() {
		rp.violate("route declares no response statuses")
	}
	if sole, ok := rp.contract.SoleStatus(); ok {
		return sole
	}
	rp.violate("no status selected and route declares several")
	return 0
}

// requireHeaders checks every header the status schema marks mandatory
func (rp *Reply) requireHeaders(status int) {
	for _, name := range rp.contract.RequiredHeaders(status) {
		if _, ok := rp.headers[strings.ToLower(name)]; !ok {
			rp.violate("status %d requires header %q before send", status, name)
		}
	}
}
