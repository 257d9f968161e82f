// Package service contains notes workflows
package service

import (
	"context"

	"waypost/internal/modkit/repokit"
	perr "waypost/internal/platform/errors"
	"waypost/internal/services/api/notes/domain"
	"waypost/internal/services/api/notes/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for notes
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new notes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("notes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("notes.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List retrieves recent notes, newest update first
func (s *Svc) List(ctx context.Context, in domain.ListNotesInput) ([]domain.Note, error) {
	rows, err := s.Repo.List(ctx, in.Tag, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Note, 0, len(rows))
	for _, r := range rows {
		out = append(out, toNote(r))
	}
	return out, nil
}

// Get retrieves one note by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Note, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Note{}, perr.InvalidArgf("invalid note id %q", id)
	}
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Note{}, err
	}
	return toNote(row), nil
}

// Create stores a new note under a fresh id
func (s *Svc) Create(ctx context.Context, in domain.CreateNoteInput) (domain.Note, error) {
	row := repo.RowNote{
		ID:    uuid.NewString(),
		Title: in.Title,
		Body:  in.Body,
		Tags:  in.Tags,
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Note{}, err
	}
	return s.Get(ctx, row.ID)
}

// Update replaces a note's content inside one transaction
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdateNoteInput) (domain.Note, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Note{}, perr.InvalidArgf("invalid note id %q", id)
	}
	var out domain.Note
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		ok, err := r.Update(ctx, repo.RowNote{ID: id, Title: in.Title, Body: in.Body, Tags: in.Tags})
		if err != nil {
			return err
		}
		if !ok {
			return perr.NotFoundf("note %s not found", id)
		}
		row, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		out = toNote(row)
		return nil
	})
	return out, err
}

// Delete removes a note by id
func (s *Svc) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.InvalidArgf("invalid note id %q", id)
	}
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("note %s not found", id)
	}
	return nil
}

func toNote(r repo.RowNote) domain.Note {
	return domain.Note{
		ID:        r.ID,
		Title:     r.Title,
		Body:      r.Body,
		Tags:      r.Tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
