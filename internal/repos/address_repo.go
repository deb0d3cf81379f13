package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type AddressRepo struct{ db sqlx.ExtContext }

func NewAddressRepo(db sqlx.ExtContext) *AddressRepo { return &AddressRepo{db: db} }

const addressColumns = `
    address_id, street_address1, street_address2, street_address3, city,
    state_province_county, postal_code, country_code, latitude, longitude,
    created_at, updated_at, etag`

func (r *AddressRepo) List(ctx context.Context, limit, offset int) ([]domain.Address, error) {
	var out []domain.Address
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT`+addressColumns+` FROM address`+newestFirst, limit, offset)
	return out, err
}

func (r *AddressRepo) Get(ctx context.Context, id uuid.UUID) (domain.Address, error) {
	var a domain.Address
	err := sqlx.GetContext(ctx, r.db, &a, `SELECT`+addressColumns+` FROM address WHERE address_id = ?`, id)
	return a, err
}

// Insert stores a and fills in its id, timestamps and etag.
func (r *AddressRepo) Insert(ctx context.Context, a *domain.Address) error {
	stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO address (`+addressColumns+`)
		VALUES (
		  :address_id, :street_address1, :street_address2, :street_address3, :city,
		  :state_province_county, :postal_code, :country_code, :latitude, :longitude,
		  :created_at, :updated_at, :etag)`, a)
	return err
}

func (r *AddressRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM address`)
	return n, err
}
