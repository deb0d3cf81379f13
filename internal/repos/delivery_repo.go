package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type DeliveryRepo struct{ db sqlx.ExtContext }

func NewDeliveryRepo(db sqlx.ExtContext) *DeliveryRepo { return &DeliveryRepo{db: db} }

const deliveryColumns = `
    auction_item_delivery_id, auction_item_bid_id, user_id, shipping_address_id,
    shipping_fee, shipped_at, delivered_at, shipping_exception, sms_updates_number,
    email_contact, signature_name, signed_for_by, carrier, tracking_number,
    created_at, updated_at, etag`

// SummaryRows names each delivery after the recipient, plus carrier and
// tracking number once the parcel has them.
func (r *DeliveryRepo) SummaryRows(ctx context.Context, limit, offset int) ([]domain.SummaryRow, error) {
	var out []domain.SummaryRow
	err := sqlx.SelectContext(ctx, r.db, &out, `
		SELECT
		  d.auction_item_delivery_id AS pk,
		  u.email
		    || CASE WHEN d.carrier IS NOT NULL THEN ' via ' || d.carrier ELSE '' END
		    || CASE WHEN d.tracking_number IS NOT NULL THEN ' #' || d.tracking_number ELSE '' END AS name,
		  d.created_at AS created_at,
		  d.updated_at AS updated_at
		FROM auction_item_delivery d
		JOIN users u ON u.user_id = d.user_id
		ORDER BY d.created_at DESC, d.rowid DESC
		LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *DeliveryRepo) Insert(ctx context.Context, d *domain.AuctionItemDelivery) error {
	stamp(&d.ID, &d.CreatedAt, &d.UpdatedAt, &d.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO auction_item_delivery (`+deliveryColumns+`)
		VALUES (
		  :auction_item_delivery_id, :auction_item_bid_id, :user_id, :shipping_address_id,
		  :shipping_fee, :shipped_at, :delivered_at, :shipping_exception, :sms_updates_number,
		  :email_contact, :signature_name, :signed_for_by, :carrier, :tracking_number,
		  :created_at, :updated_at, :etag)`, d)
	return err
}
