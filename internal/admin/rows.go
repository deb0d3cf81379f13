package admin

import (
	"context"
	"strings"

	"hooksaurus/internal/domain"
)

// rowsFunc fetches one page of summary rows for a kind.
type rowsFunc func(ctx context.Context, limit, offset int) ([]domain.SummaryRow, error)

// project turns a typed page fetch plus a display-name formula into a rowsFunc.
func project[R any](list func(context.Context, int, int) ([]R, error), row func(R) domain.SummaryRow) rowsFunc {
	return func(ctx context.Context, limit, offset int) ([]domain.SummaryRow, error) {
		recs, err := list(ctx, limit, offset)
		if err != nil {
			return nil, err
		}
		out := make([]domain.SummaryRow, len(recs))
		for i, r := range recs {
			out[i] = row(r)
		}
		return out, nil
	}
}

// addressRow names an address "street1, city, state, postal".
func addressRow(a domain.Address) domain.SummaryRow {
	postal := ""
	if a.PostalCode != nil {
		postal = *a.PostalCode
	}
	name := strings.Join([]string{a.StreetAddress1, a.City, a.StateProvinceCounty, postal}, ", ")
	return domain.SummaryRow{PK: a.ID, Name: name, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func articleRow(a domain.Article) domain.SummaryRow {
	return domain.SummaryRow{PK: a.ID, Name: a.Title, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func auctionRow(a domain.Auction) domain.SummaryRow {
	return domain.SummaryRow{PK: a.ID, Name: a.Title, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func auctionItemRow(it domain.AuctionItem) domain.SummaryRow {
	return domain.SummaryRow{PK: it.ID, Name: it.Title, CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt}
}

func organizationRow(o domain.Organization) domain.SummaryRow {
	return domain.SummaryRow{PK: o.ID, Name: o.Name, CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt}
}

func userRow(u domain.User) domain.SummaryRow {
	return domain.SummaryRow{PK: u.ID, Name: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
