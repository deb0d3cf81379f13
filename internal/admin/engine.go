// Package admin dispatches the generic table routes onto a closed set of
// kinds. Handlers talk to Engine; Engine is the only place where store and
// validation failures become one of the four Error codes.
package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hooksaurus/internal/domain"
	applog "hooksaurus/internal/log"
	"hooksaurus/internal/validate"
)

// Listing is one page of summary rows for a kind.
type Listing struct {
	Kind       Kind
	Rows       []domain.SummaryRow
	Pagination Pagination
	NextPage   int
	Degraded   bool // the store failed; Rows is empty
}

// Detail is a single record rendered as an edit form.
type Detail struct {
	Kind Kind
	PK   uuid.UUID
	Form *Form
}

type Engine struct {
	tables map[Kind]Table
}

// NewEngine takes ownership of tables; it must not be mutated afterwards.
func NewEngine(tables map[Kind]Table) *Engine {
	return &Engine{tables: tables}
}

func (e *Engine) Kinds() []Kind { return Kinds() }

func (e *Engine) table(slug string) (Table, error) {
	k, err := ParseKind(slug)
	if err != nil {
		return nil, err
	}
	t, ok := e.tables[k]
	if !ok {
		return nil, notImplemented(k, "this table")
	}
	return t, nil
}

// List returns one page of rows. A store failure is logged and degrades to
// an empty page instead of an error.
func (e *Engine) List(ctx context.Context, slug string, p Pagination) (Listing, error) {
	t, err := e.table(slug)
	if err != nil {
		return Listing{}, err
	}
	return e.list(ctx, t, p), nil
}

func (e *Engine) list(ctx context.Context, t Table, p Pagination) Listing {
	out := Listing{Kind: t.Kind(), Pagination: p, NextPage: p.NextPage()}
	rows, err := t.Rows(ctx, p)
	if err != nil {
		applog.Ctx(ctx).Error().Err(err).
			Str("kind", t.Kind().Slug()).
			Str("op", "list").
			Int("page", p.Page).
			Int("per_page", p.PerPage).
			Msg("listing degraded to empty")
		out.Degraded = true
		return out
	}
	out.Rows = rows
	return out
}

// Get loads one record as a filled form. Kinds without a detail view answer
// NotImplemented before the key is looked at.
func (e *Engine) Get(ctx context.Context, slug, rawPK string) (Detail, error) {
	t, err := e.table(slug)
	if err != nil {
		return Detail{}, err
	}
	f, err := t.FilledForm(ctx, rawPK)
	if err != nil {
		return Detail{}, classify(t.Kind(), "load", err)
	}
	pk, _ := validate.ID(rawPK)
	return Detail{Kind: t.Kind(), PK: pk, Form: f}, nil
}

// InsertForm returns the empty form for slug.
func (e *Engine) InsertForm(_ context.Context, slug string) (*Form, error) {
	t, err := e.table(slug)
	if err != nil {
		return nil, err
	}
	f, err := t.EmptyForm()
	if err != nil {
		return nil, classify(t.Kind(), "build a form for", err)
	}
	return f, nil
}

// Insert creates a record and returns the first page of the refreshed
// listing so the caller sees its own write.
func (e *Engine) Insert(ctx context.Context, slug string, decode Decoder) (Listing, uuid.UUID, error) {
	t, err := e.table(slug)
	if err != nil {
		return Listing{}, uuid.Nil, err
	}
	id, err := t.Insert(ctx, decode)
	if err != nil {
		return Listing{}, uuid.Nil, classify(t.Kind(), "save", err)
	}
	return e.list(ctx, t, DefaultPagination()), id, nil
}

// Update is routed but has no implementation for any kind yet.
func (e *Engine) Update(_ context.Context, slug, _ string) error {
	t, err := e.table(slug)
	if err != nil {
		return err
	}
	return notImplemented(t.Kind(), "update")
}

// Delete is routed but has no implementation for any kind yet.
func (e *Engine) Delete(_ context.Context, slug, _ string) error {
	t, err := e.table(slug)
	if err != nil {
		return err
	}
	return notImplemented(t.Kind(), "delete")
}

func classify(k Kind, op string, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return storage(k, op, err)
}
