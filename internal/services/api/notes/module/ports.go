package module

import (
	"context"

	notesdom "waypost/internal/services/api/notes/domain"
	notessvc "waypost/internal/services/api/notes/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptNotesPort adapts the notes service to the domain port interface
type adaptNotesPort struct{ svc notessvc.Service }

// List implements the domain ServicePort interface
func (a adaptNotesPort) List(ctx context.Context, in notesdom.ListNotesInput) ([]notesdom.Note, error) {
	return a.svc.List(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptNotesPort) Get(ctx context.Context, id string) (notesdom.Note, error) {
	return a.svc.Get(ctx, id)
}

// Create implements the domain ServicePort interface
func (a adaptNotesPort) Create(ctx context.Context, in notesdom.CreateNoteInput) (notesdom.Note, error) {
	return a.svc.Create(ctx, in)
}

// Update implements the domain ServicePort interface
func (a adaptNotesPort) Update(ctx context.Context, id string, in notesdom.UpdateNoteInput) (notesdom.Note, error) {
	return a.svc.Update(ctx, id, in)
}

// Delete implements the domain ServicePort interface
func (a adaptNotesPort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}
