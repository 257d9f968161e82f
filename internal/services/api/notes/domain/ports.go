package domain

import "context"

// ServicePort defines the service contract for notes
type ServicePort interface {
	List(ctx context.Context, in ListNotesInput) ([]Note, error)
	Get(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, in CreateNoteInput) (Note, error)
	Update(ctx context.Context, id string, in UpdateNoteInput) (Note, error)
	Delete(ctx context.Context, id string) error
}
