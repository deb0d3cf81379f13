package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Etag is an opaque per-record version token, replaced on every write.
type Etag string

func NewEtag() Etag { return Etag(uuid.NewString()) }

// SummaryRow is the uniform listing projection shared by every table.
type SummaryRow struct {
	PK        uuid.UUID `db:"pk"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Tags is a string list kept as a JSON array in a TEXT column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	return string(b), err
}

func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("tags: unsupported source %T", src)
	}
	if len(raw) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(t))
}

type Address struct {
	ID                  uuid.UUID `db:"address_id"`
	StreetAddress1      string    `db:"street_address1"`
	StreetAddress2      *string   `db:"street_address2"`
	StreetAddress3      *string   `db:"street_address3"`
	City                string    `db:"city"`
	StateProvinceCounty string    `db:"state_province_county"`
	PostalCode          *string   `db:"postal_code"`
	CountryCode         *string   `db:"country_code"`
	Latitude            *float64  `db:"latitude"`
	Longitude           *float64  `db:"longitude"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
	Etag                Etag      `db:"etag"`
}

type Article struct {
	ID          uuid.UUID     `db:"article_id"`
	Slug        string        `db:"slug"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Body        string        `db:"body"`
	TagList     Tags          `db:"tag_list"`
	AuthorID    uuid.NullUUID `db:"author_id"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	Etag        Etag          `db:"etag"`
}

type Auction struct {
	ID                     uuid.UUID     `db:"auction_id"`
	Title                  string        `db:"title"`
	Description            string        `db:"description"`
	StartDate              time.Time     `db:"start_date"`
	EndDate                time.Time     `db:"end_date"`
	BenefitsOrganizationID uuid.NullUUID `db:"benefits_organization_id"`
	CreatedAt              time.Time     `db:"created_at"`
	UpdatedAt              time.Time     `db:"updated_at"`
	Etag                   Etag          `db:"etag"`
}

type AuctionItem struct {
	ID        uuid.UUID     `db:"auction_item_id"`
	AuctionID uuid.UUID     `db:"auction_id"`
	BasketID  uuid.NullUUID `db:"basket_id"` // another item acting as this item's basket

	ExpectedRetailValue decimal.Decimal     `db:"expected_retail_value"`
	MinimumBidAmount    decimal.Decimal     `db:"minimum_bid_amount"`
	BuyItNowAmount      decimal.NullDecimal `db:"buy_it_now_amount"`

	Title                   string        `db:"title"`
	Description             string        `db:"description"`
	FeaturedImageFilepath   string        `db:"featured_image_filepath"`
	ImageDir                string        `db:"image_dir"`
	TagList                 Tags          `db:"tag_list"`
	DonatedByOrganizationID uuid.NullUUID `db:"donated_by_organization_id"`
	BenefitsOrganizationID  uuid.NullUUID `db:"benefits_organization_id"`

	ActiveStartDate time.Time `db:"active_start_date"`
	ActiveEndDate   time.Time `db:"active_end_date"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	Etag            Etag      `db:"etag"`
}

type AuctionItemBid struct {
	ID            uuid.UUID           `db:"auction_item_bid_id"`
	AuctionItemID uuid.UUID           `db:"auction_item_id"`
	UserID        uuid.UUID           `db:"user_id"`
	Amount        decimal.Decimal     `db:"amount"`
	MaxBidAmount  decimal.NullDecimal `db:"max_bid_amount"`
	IsWinningBid  bool                `db:"is_winning_bid"` // set after the auction ends
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
	Etag          Etag                `db:"etag"`
}

// AuctionItemDelivery is a shipping request for a won item.
type AuctionItemDelivery struct {
	ID                uuid.UUID           `db:"auction_item_delivery_id"`
	AuctionItemBidID  uuid.UUID           `db:"auction_item_bid_id"`
	UserID            uuid.UUID           `db:"user_id"`
	ShippingAddressID uuid.UUID           `db:"shipping_address_id"`
	ShippingFee       decimal.NullDecimal `db:"shipping_fee"`
	ShippedAt         *time.Time          `db:"shipped_at"`
	DeliveredAt       *time.Time          `db:"delivered_at"`
	ShippingException *string             `db:"shipping_exception"`
	SMSUpdatesNumber  *string             `db:"sms_updates_number"`
	EmailContact      *string             `db:"email_contact"`
	SignatureName     *string             `db:"signature_name"`
	SignedForBy       *string             `db:"signed_for_by"`
	Carrier           *string             `db:"carrier"`
	TrackingNumber    *string             `db:"tracking_number"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
	Etag              Etag                `db:"etag"`
}

type OrgType string

const (
	OrgBusiness            OrgType = "Business"
	OrgFarmAnimalSanctuary OrgType = "FarmAnimalSanctuary"
	OrgNonProfit           OrgType = "NonProfit"
)

type Organization struct {
	ID               uuid.UUID     `db:"organization_id"`
	OrgType          OrgType       `db:"org_type"`
	Name             string        `db:"name"`
	Description      *string       `db:"description"`
	Image            *string       `db:"image"`
	Email            string        `db:"email"`
	Website          string        `db:"website"`
	ContactName      *string       `db:"contact_name"`
	PhoneNumber      *string       `db:"phone_number"`
	AltPhoneNumber   *string       `db:"alt_phone_number"`
	PrimaryAddressID uuid.NullUUID `db:"primary_address_id"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
	Etag             Etag          `db:"etag"`
}

type User struct {
	ID        uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	Bio       string    `db:"bio"`
	Role      string    `db:"role"` // USER | ADMIN
	Image     *string   `db:"image"`
	Hash      string    `db:"password_hash"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Etag      Etag      `db:"etag"`
}
