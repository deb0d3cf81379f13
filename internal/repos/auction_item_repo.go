package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type AuctionItemRepo struct{ db sqlx.ExtContext }

func NewAuctionItemRepo(db sqlx.ExtContext) *AuctionItemRepo { return &AuctionItemRepo{db: db} }

const auctionItemColumns = `
    auction_item_id, auction_id, basket_id,
    expected_retail_value, minimum_bid_amount, buy_it_now_amount,
    title, description, featured_image_filepath, image_dir, tag_list,
    donated_by_organization_id, benefits_organization_id,
    active_start_date, active_end_date, created_at, updated_at, etag`

func (r *AuctionItemRepo) List(ctx context.Context, limit, offset int) ([]domain.AuctionItem, error) {
	var out []domain.AuctionItem
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT`+auctionItemColumns+` FROM auction_item`+newestFirst, limit, offset)
	return out, err
}

func (r *AuctionItemRepo) Get(ctx context.Context, id uuid.UUID) (domain.AuctionItem, error) {
	var it domain.AuctionItem
	err := sqlx.GetContext(ctx, r.db, &it, `SELECT`+auctionItemColumns+` FROM auction_item WHERE auction_item_id = ?`, id)
	return it, err
}

func (r *AuctionItemRepo) Insert(ctx context.Context, it *domain.AuctionItem) error {
	stamp(&it.ID, &it.CreatedAt, &it.UpdatedAt, &it.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO auction_item (`+auctionItemColumns+`)
		VALUES (
		  :auction_item_id, :auction_id, :basket_id,
		  :expected_retail_value, :minimum_bid_amount, :buy_it_now_amount,
		  :title, :description, :featured_image_filepath, :image_dir, :tag_list,
		  :donated_by_organization_id, :benefits_organization_id,
		  :active_start_date, :active_end_date, :created_at, :updated_at, :etag)`, it)
	return err
}
