// Package repo provides postgres access for notes
package repo

import (
	"context"

	"waypost/internal/modkit/repokit"
	perr "waypost/internal/platform/errors"
	"waypost/internal/platform/store"
)

// Repo defines the repository contract for notes
type Repo interface {
	List(ctx context.Context, tag string, limit int) ([]RowNote, error)
	Get(ctx context.Context, id string) (RowNote, error)
	Insert(ctx context.Context, row RowNote) error
	Update(ctx context.Context, row RowNote) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RowNote represents a note row from the database
type RowNote struct {
	ID        string
	Title     string
	Body      string
	Tags      []string
	CreatedAt string
	UpdatedAt string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// scanNote maps one result row into a RowNote
func scanNote(r store.Row) (RowNote, error) {
	var rr RowNote
	err := r.Scan(&rr.ID, &rr.Title, &rr.Body, &rr.Tags, &rr.CreatedAt, &rr.UpdatedAt)
	return rr, err
}

func (r *queries) List(ctx context.Context, tag string, limit int) ([]RowNote, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, title, body, tags, created_at::text, updated_at::text
from notes
where ($1 = '' or $1 = any(tags))
order by updated_at desc
limit $2
`
	out, err := store.Many(ctx, r.q, scanNote, sql, tag, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list notes")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (RowNote, error) {
	const sql = `
select id::text, title, body, tags, created_at::text, updated_at::text
from notes
where id = $1
`
	rr, err := store.One(ctx, r.q, scanNote, sql, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return RowNote{}, perr.NotFoundf("note %s not found", id)
		}
		return RowNote{}, perr.FromPostgres(err, "get note")
	}
	return rr, nil
}

func (r *queries) Insert(ctx context.Context, row RowNote) error {
	const sql = `
insert into notes (id, title, body, tags, created_at, updated_at)
values ($1, $2, $3, $4, now(), now())
`
	if err := store.ExecOne(ctx, r.q, sql, row.ID, row.Title, row.Body, row.Tags); err != nil {
		return perr.FromPostgres(err, "insert note")
	}
	return nil
}

func (r *queries) Update(ctx context.Context, row RowNote) (bool, error) {
	const sql = `
update notes
set title = $2, body = $3, tags = $4, updated_at = now()
where id = $1
`
	tag, err := r.q.Exec(ctx, sql, row.ID, row.Title, row.Body, row.Tags)
	if err != nil {
		return false, perr.FromPostgres(err, "update note")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from notes where id = $1`, id)
	if err != nil {
		return false, perr.FromPostgres(err, "delete note")
	}
	return tag.RowsAffected() == 1, nil
}
