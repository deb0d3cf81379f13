package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type OrganizationRepo struct{ db sqlx.ExtContext }

func NewOrganizationRepo(db sqlx.ExtContext) *OrganizationRepo { return &OrganizationRepo{db: db} }

const organizationColumns = `
    organization_id, org_type, name, description, image, email, website,
    contact_name, phone_number, alt_phone_number, primary_address_id,
    created_at, updated_at, etag`

func (r *OrganizationRepo) List(ctx context.Context, limit, offset int) ([]domain.Organization, error) {
	var out []domain.Organization
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT`+organizationColumns+` FROM organization`+newestFirst, limit, offset)
	return out, err
}

func (r *OrganizationRepo) Get(ctx context.Context, id uuid.UUID) (domain.Organization, error) {
	var o domain.Organization
	err := sqlx.GetContext(ctx, r.db, &o, `SELECT`+organizationColumns+` FROM organization WHERE organization_id = ?`, id)
	return o, err
}

func (r *OrganizationRepo) Insert(ctx context.Context, o *domain.Organization) error {
	stamp(&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO organization (`+organizationColumns+`)
		VALUES (
		  :organization_id, :org_type, :name, :description, :image, :email, :website,
		  :contact_name, :phone_number, :alt_phone_number, :primary_address_id,
		  :created_at, :updated_at, :etag)`, o)
	return err
}
