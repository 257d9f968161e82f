// Package http provides http transport for notes
package http

import (
	_ "embed"
	stdhttp "net/http"

	"waypost/internal/modkit/replykit"
	"waypost/internal/modkit/routekit"
	"waypost/internal/modkit/schemakit"
	"waypost/internal/platform/net/http/bind"
	"waypost/internal/services/api/notes/domain"
	svc "waypost/internal/services/api/notes/service"

	"github.com/go-chi/chi/v5"
)

//go:embed schemas.json
var schemasJSON []byte

// Bundle returns the compiled schema table for the notes routes
// keys are relative to the module prefix
func Bundle() schemakit.Bundle {
	return schemakit.MustParse(schemasJSON)
}

// Routes returns the notes service declaration
func Routes(s svc.Service) routekit.Routes {
	h := &handlers{svc: s}

	return routekit.Routes{
		"GET /":        h.list,
		"POST /":       h.create,
		"GET /{id}":    h.get,
		"PUT /{id}":    h.update,
		"DELETE /{id}": h.remove,
	}
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request, reply *replykit.Reply) error {
	in := domain.ListNotesInput{Tag: r.URL.Query().Get("tag")}
	if v := r.URL.Query().Get("limit"); v != "" {
		in.Limit = atoiOrZero(v)
	}
	notes, err := h.svc.List(r.Context(), in)
	if err != nil {
		return err
	}
	return reply.Send(notes)
}

func (h *handlers) get(r *stdhttp.Request, reply *replykit.Reply) error {
	note, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return reply.Send(note)
}

func (h *handlers) create(r *stdhttp.Request, reply *replykit.Reply) error {
	in, err := bind.ParseJSON[domain.CreateNoteInput](r)
	if err != nil {
		return err
	}
	note, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return err
	}
	return reply.
		Header("location", "/api/v1/notes/"+note.ID).
		Send(note)
}

func (h *handlers) update(r *stdhttp.Request, reply *replykit.Reply) error {
	in, err := bind.ParseJSON[domain.UpdateNoteInput](r)
	if err != nil {
		return err
	}
	note, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		return err
	}
	return reply.Send(note)
}

func (h *handlers) remove(r *stdhttp.Request, reply *replykit.Reply) error {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	return reply.Send(nil)
}

func atoiOrZero(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
