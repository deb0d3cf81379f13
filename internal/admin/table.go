package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
	"hooksaurus/internal/repos"
	"hooksaurus/internal/validate"
)

// Decoder fills a form-input struct from the request body.
type Decoder func(out any) error

// Table is the capability every kind supplies to take part in dispatch.
type Table interface {
	Kind() Kind
	Rows(ctx context.Context, p Pagination) ([]domain.SummaryRow, error)
	EmptyForm() (*Form, error)
	FilledForm(ctx context.Context, rawPK string) (*Form, error)
	Insert(ctx context.Context, decode Decoder) (uuid.UUID, error)
}

// table wires a record type R and its form input F to a store.
type table[R, F any] struct {
	kind   Kind
	rows   rowsFunc
	get    func(context.Context, uuid.UUID) (R, error)
	view   func(R) (F, domain.Etag)
	create func(context.Context, F) (uuid.UUID, error)
}

func (t *table[R, F]) Kind() Kind { return t.kind }

func (t *table[R, F]) Rows(ctx context.Context, p Pagination) ([]domain.SummaryRow, error) {
	return t.rows(ctx, p.Limit(), p.Offset())
}

func (t *table[R, F]) EmptyForm() (*Form, error) {
	var in F
	return t.insertForm(in), nil
}

func (t *table[R, F]) insertForm(in F) *Form {
	f := newForm(t.kind, &in, "")
	f.Action, f.Method, f.Submit = insertAction(t.kind), "post", "Create"
	return f
}

// FilledForm loads the record keyed by rawPK. A malformed key is NotFound.
func (t *table[R, F]) FilledForm(ctx context.Context, rawPK string) (*Form, error) {
	pk, ok := validate.ID(rawPK)
	if !ok {
		return nil, notFoundf("no %s with id %q", t.kind.Label(), rawPK)
	}
	rec, err := t.get(ctx, pk)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFoundf("no %s with id %q", t.kind.Label(), rawPK)
	}
	if err != nil {
		return nil, err
	}
	in, etag := t.view(rec)
	f := newForm(t.kind, &in, etag)
	f.Action, f.Method, f.Submit = recordAction(t.kind, pk.String()), "put", "Save"
	return f, nil
}

func (t *table[R, F]) Insert(ctx context.Context, decode Decoder) (uuid.UUID, error) {
	var in F
	if err := decode(&in); err != nil {
		f := t.insertForm(in)
		f.Error = "the submitted form could not be read"
		return uuid.Nil, invalid(t.kind, nil, f)
	}
	fields, err := validate.Struct(in)
	if err != nil {
		return uuid.Nil, err
	}
	if fields != nil {
		f := t.insertForm(in)
		f.attach(fields)
		return uuid.Nil, invalid(t.kind, fields, f)
	}
	id, err := t.create(ctx, in)
	var taken validate.FieldErrors
	if errors.As(err, &taken) {
		f := t.insertForm(in)
		f.attach(taken)
		return uuid.Nil, invalid(t.kind, taken, f)
	}
	return id, err
}

// listOnly serves kinds whose forms are not wired yet.
type listOnly struct {
	kind Kind
	rows rowsFunc
}

func (t *listOnly) Kind() Kind { return t.kind }

func (t *listOnly) Rows(ctx context.Context, p Pagination) ([]domain.SummaryRow, error) {
	return t.rows(ctx, p.Limit(), p.Offset())
}

func (t *listOnly) EmptyForm() (*Form, error) { return nil, notImplemented(t.kind, "insert") }

func (t *listOnly) FilledForm(context.Context, string) (*Form, error) {
	return nil, notImplemented(t.kind, "detail")
}

func (t *listOnly) Insert(context.Context, Decoder) (uuid.UUID, error) {
	return uuid.Nil, notImplemented(t.kind, "insert")
}

// NewTables binds every kind to its store. db may be a pool or a transaction.
func NewTables(db sqlx.ExtContext) map[Kind]Table {
	addresses := repos.NewAddressRepo(db)
	articles := repos.NewArticleRepo(db)
	auctions := repos.NewAuctionRepo(db)
	items := repos.NewAuctionItemRepo(db)
	bids := repos.NewBidRepo(db)
	deliveries := repos.NewDeliveryRepo(db)
	orgs := repos.NewOrganizationRepo(db)
	users := repos.NewUserRepo(db)

	ts := []Table{
		&table[domain.Address, domain.AddressForm]{
			kind: KindAddress,
			rows: project(addresses.List, addressRow),
			get:  addresses.Get,
			view: func(a domain.Address) (domain.AddressForm, domain.Etag) { return a.Form(), a.Etag },
			create: func(ctx context.Context, in domain.AddressForm) (uuid.UUID, error) {
				a := in.Address()
				err := addresses.Insert(ctx, &a)
				return a.ID, err
			},
		},
		&listOnly{kind: KindArticle, rows: project(articles.List, articleRow)},
		&table[domain.Auction, domain.AuctionForm]{
			kind: KindAuction,
			rows: project(auctions.List, auctionRow),
			get:  auctions.Get,
			view: func(a domain.Auction) (domain.AuctionForm, domain.Etag) { return a.Form(), a.Etag },
			create: func(ctx context.Context, in domain.AuctionForm) (uuid.UUID, error) {
				a, err := in.Auction()
				if err != nil {
					return uuid.Nil, err
				}
				err = auctions.Insert(ctx, &a)
				return a.ID, err
			},
		},
		&table[domain.AuctionItem, domain.AuctionItemForm]{
			kind: KindAuctionItem,
			rows: project(items.List, auctionItemRow),
			get:  items.Get,
			view: func(it domain.AuctionItem) (domain.AuctionItemForm, domain.Etag) { return it.Form(), it.Etag },
			create: func(ctx context.Context, in domain.AuctionItemForm) (uuid.UUID, error) {
				it, err := in.AuctionItem()
				if err != nil {
					return uuid.Nil, err
				}
				err = items.Insert(ctx, &it)
				return it.ID, err
			},
		},
		&listOnly{kind: KindAuctionItemBid, rows: bids.SummaryRows},
		&listOnly{kind: KindAuctionItemDelivery, rows: deliveries.SummaryRows},
		&table[domain.Organization, domain.OrganizationForm]{
			kind: KindOrganization,
			rows: project(orgs.List, organizationRow),
			get:  orgs.Get,
			view: func(o domain.Organization) (domain.OrganizationForm, domain.Etag) { return o.Form(), o.Etag },
			create: func(ctx context.Context, in domain.OrganizationForm) (uuid.UUID, error) {
				o := in.Organization()
				err := orgs.Insert(ctx, &o)
				return o.ID, err
			},
		},
		&table[domain.User, domain.UserForm]{
			kind: KindUser,
			rows: project(users.List, userRow),
			get:  users.Get,
			view: func(u domain.User) (domain.UserForm, domain.Etag) { return u.Form(), u.Etag },
			create: func(ctx context.Context, in domain.UserForm) (uuid.UUID, error) {
				u := in.User()
				switch _, err := users.ByEmail(ctx, u.Email); {
				case err == nil:
					return uuid.Nil, validate.FieldErrors{"email": "email is already registered"}
				case !errors.Is(err, sql.ErrNoRows):
					return uuid.Nil, err
				}
				err := users.Insert(ctx, &u, in.Password)
				return u.ID, err
			},
		},
	}

	out := make(map[Kind]Table, len(ts))
	for _, t := range ts {
		out[t.Kind()] = t
	}
	return out
}
