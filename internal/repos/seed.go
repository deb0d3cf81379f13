package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"hooksaurus/internal/domain"
	"hooksaurus/internal/platform/datetime"
)

// SeedDemo inserts a small, connected data set when the store is empty.
// Safe to run on every start.
func SeedDemo(ctx context.Context, db *sqlx.DB) error {
	n, err := NewAddressRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	addrs := NewAddressRepo(tx)
	orgs := NewOrganizationRepo(tx)
	users := NewUserRepo(tx)
	users.Cost = bcrypt.MinCost
	articles := NewArticleRepo(tx)
	auctions := NewAuctionRepo(tx)
	items := NewAuctionItemRepo(tx)
	bids := NewBidRepo(tx)
	deliveries := NewDeliveryRepo(tx)

	sanctuary := domain.Address{
		StreetAddress1: "4 Clover Hill Rd", City: "Ithaca", StateProvinceCounty: "NY",
		PostalCode: str("14850"), CountryCode: str("US"), Latitude: f64(42.4440), Longitude: f64(-76.5019),
	}
	office := domain.Address{
		StreetAddress1: "200 Market St", StreetAddress2: str("Suite 4"), City: "Portland",
		StateProvinceCounty: "OR", PostalCode: str("97201"), CountryCode: str("US"),
	}
	bidder := domain.Address{StreetAddress1: "18 Elm Ct", City: "Burlington", StateProvinceCounty: "VT", CountryCode: str("US")}
	for _, a := range []*domain.Address{&sanctuary, &office, &bidder} {
		if err := addrs.Insert(ctx, a); err != nil {
			return err
		}
	}

	farm := domain.Organization{
		OrgType: domain.OrgFarmAnimalSanctuary, Name: "Clover Hill Sanctuary",
		Email: "hello@cloverhill.test", Website: "https://cloverhill.test",
		PrimaryAddressID: uuid.NullUUID{UUID: sanctuary.ID, Valid: true},
	}
	shop := domain.Organization{
		OrgType: domain.OrgBusiness, Name: "Market Street Feed & Seed",
		Email: "shop@feedandseed.test", Website: "https://feedandseed.test",
		ContactName: str("Dana"), PrimaryAddressID: uuid.NullUUID{UUID: office.ID, Valid: true},
	}
	for _, o := range []*domain.Organization{&farm, &shop} {
		if err := orgs.Insert(ctx, o); err != nil {
			return err
		}
	}

	admin := domain.User{Email: "admin@hooksaurus.test", Username: "admin", Role: "ADMIN"}
	ruth := domain.User{Email: "ruth@hooksaurus.test", Username: "ruth", Role: "USER", Bio: "Goat enthusiast"}
	for _, u := range []*domain.User{&admin, &ruth} {
		if err := users.Insert(ctx, u, "Passw0rd!"); err != nil {
			return err
		}
	}

	for _, a := range []*domain.Article{
		{Slug: "welcome-to-hooksaurus", Title: "Welcome to Hooksaurus", Description: "What we do", Body: "Auctions that help animal sanctuaries.", TagList: domain.Tags{"news"}, AuthorID: uuid.NullUUID{UUID: admin.ID, Valid: true}},
		{Slug: "spring-auction-recap", Title: "Spring auction recap", Description: "Thank you", Body: "We raised enough hay for a year.", TagList: domain.Tags{"auction", "recap"}},
	} {
		if err := articles.Insert(ctx, a); err != nil {
			return err
		}
	}

	start := datetime.Now().Add(-24 * time.Hour)
	spring := domain.Auction{
		Title: "Spring Fundraiser", Description: "Annual spring auction", StartDate: start, EndDate: start.Add(14 * 24 * time.Hour),
		BenefitsOrganizationID: uuid.NullUUID{UUID: farm.ID, Valid: true},
	}
	if err := auctions.Insert(ctx, &spring); err != nil {
		return err
	}

	quilt := domain.AuctionItem{
		AuctionID: spring.ID, Title: "Hand-stitched barn quilt", Description: "Queen size",
		ExpectedRetailValue: decimal.RequireFromString("350"), MinimumBidAmount: decimal.RequireFromString("100"),
		TagList: domain.Tags{"crafts"}, DonatedByOrganizationID: uuid.NullUUID{UUID: shop.ID, Valid: true},
		ActiveStartDate: spring.StartDate, ActiveEndDate: spring.EndDate,
	}
	basket := domain.AuctionItem{
		AuctionID: spring.ID, Title: "Feed store gift basket", Description: "Treats and tools",
		ExpectedRetailValue: decimal.RequireFromString("80"), MinimumBidAmount: decimal.RequireFromString("25"),
		BuyItNowAmount:  decimal.NullDecimal{Decimal: decimal.RequireFromString("95"), Valid: true},
		ActiveStartDate: spring.StartDate, ActiveEndDate: spring.EndDate,
	}
	for _, it := range []*domain.AuctionItem{&quilt, &basket} {
		if err := items.Insert(ctx, it); err != nil {
			return err
		}
	}

	win := domain.AuctionItemBid{AuctionItemID: quilt.ID, UserID: ruth.ID, Amount: decimal.RequireFromString("180"), IsWinningBid: true}
	low := domain.AuctionItemBid{AuctionItemID: basket.ID, UserID: ruth.ID, Amount: decimal.RequireFromString("30"),
		MaxBidAmount: decimal.NullDecimal{Decimal: decimal.RequireFromString("60"), Valid: true}}
	for _, b := range []*domain.AuctionItemBid{&win, &low} {
		if err := bids.Insert(ctx, b); err != nil {
			return err
		}
	}

	if err := deliveries.Insert(ctx, &domain.AuctionItemDelivery{
		AuctionItemBidID: win.ID, UserID: ruth.ID, ShippingAddressID: bidder.ID,
		ShippingFee: decimal.NullDecimal{Decimal: decimal.RequireFromString("12.50"), Valid: true},
		Carrier:     str("UPS"), TrackingNumber: str("1Z999AA10123456784"),
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func str(s string) *string    { return &s }
func f64(f float64) *float64 { return &f }
