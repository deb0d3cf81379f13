package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type AuctionRepo struct{ db sqlx.ExtContext }

func NewAuctionRepo(db sqlx.ExtContext) *AuctionRepo { return &AuctionRepo{db: db} }

const auctionColumns = `
    auction_id, title, description, start_date, end_date, benefits_organization_id,
    created_at, updated_at, etag`

func (r *AuctionRepo) List(ctx context.Context, limit, offset int) ([]domain.Auction, error) {
	var out []domain.Auction
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT`+auctionColumns+` FROM auction`+newestFirst, limit, offset)
	return out, err
}

func (r *AuctionRepo) Get(ctx context.Context, id uuid.UUID) (domain.Auction, error) {
	var a domain.Auction
	err := sqlx.GetContext(ctx, r.db, &a, `SELECT`+auctionColumns+` FROM auction WHERE auction_id = ?`, id)
	return a, err
}

func (r *AuctionRepo) Insert(ctx context.Context, a *domain.Auction) error {
	stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO auction (`+auctionColumns+`)
		VALUES (
		  :auction_id, :title, :description, :start_date, :end_date, :benefits_organization_id,
		  :created_at, :updated_at, :etag)`, a)
	return err
}
