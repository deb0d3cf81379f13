package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type BidRepo struct{ db sqlx.ExtContext }

func NewBidRepo(db sqlx.ExtContext) *BidRepo { return &BidRepo{db: db} }

const bidColumns = `
    auction_item_bid_id, auction_item_id, user_id, amount, max_bid_amount,
    is_winning_bid, created_at, updated_at, etag`

// SummaryRows names each bid after the bidder's email.
func (r *BidRepo) SummaryRows(ctx context.Context, limit, offset int) ([]domain.SummaryRow, error) {
	var out []domain.SummaryRow
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT b.auction_item_bid_id AS pk, u.email AS name, b.created_at AS created_at, b.updated_at AS updated_at
		FROM auction_item_bid b
		JOIN users u ON u.user_id = b.user_id
		ORDER BY b.created_at DESC, b.rowid DESC
		LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *BidRepo) Insert(ctx context.Context, b *domain.AuctionItemBid) error {
	stamp(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO auction_item_bid (`+bidColumns+`)
		VALUES (
		  :auction_item_bid_id, :auction_item_id, :user_id, :amount, :max_bid_amount,
		  :is_winning_bid, :created_at, :updated_at, :etag)`, b)
	return err
}
