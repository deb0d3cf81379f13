package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hooksaurus/internal/platform/datetime"
)

// Form inputs carry what an operator may type on create. Every field is a
// string so a bad number can be shown back in the form unchanged.
//
// Tags: form (field name), label, input (html input type, default text),
// options (select choices, "|" separated), validate (go-playground rules).

type AddressForm struct {
	StreetAddress1      string `form:"street_address1" label:"Street address" validate:"required,max=200"`
	StreetAddress2      string `form:"street_address2" label:"Street address (line 2)" validate:"max=200"`
	StreetAddress3      string `form:"street_address3" label:"Street address (line 3)" validate:"max=200"`
	City                string `form:"city" label:"City" validate:"required,max=100"`
	StateProvinceCounty string `form:"state_province_county" label:"State / province / county" validate:"required,max=100"`
	PostalCode          string `form:"postal_code" label:"Postal code" validate:"max=20"`
	CountryCode         string `form:"country_code" label:"Country code" validate:"omitempty,alpha,max=3"`
	Latitude            string `form:"latitude" label:"Latitude"`
	Longitude           string `form:"longitude" label:"Longitude"`
}

type AuctionForm struct {
	Title                  string `form:"title" label:"Title" validate:"required,max=200"`
	Description            string `form:"description" label:"Description" input:"textarea" validate:"required"`
	StartDate              string `form:"start_date" label:"Starts" input:"datetime-local" validate:"required,timestamp"`
	EndDate                string `form:"end_date" label:"Ends" input:"datetime-local" validate:"required,timestamp"`
	BenefitsOrganizationID string `form:"benefits_organization_id" label:"Benefits organization" validate:"omitempty,uuid"`
}

type AuctionItemForm struct {
	AuctionID               string `form:"auction_id" label:"Auction" validate:"required,uuid"`
	BasketID                string `form:"basket_id" label:"Basket item" validate:"omitempty,uuid"`
	Title                   string `form:"title" label:"Title" validate:"required,max=200"`
	Description             string `form:"description" label:"Description" input:"textarea" validate:"required"`
	ExpectedRetailValue     string `form:"expected_retail_value" label:"Expected retail value" validate:"required,decimal"`
	MinimumBidAmount        string `form:"minimum_bid_amount" label:"Minimum bid" validate:"required,decimal"`
	BuyItNowAmount          string `form:"buy_it_now_amount" label:"Buy it now" validate:"omitempty,decimal"`
	FeaturedImageFilepath   string `form:"featured_image_filepath" label:"Featured image" validate:"max=500"`
	ImageDir                string `form:"image_dir" label:"Image directory" validate:"max=500"`
	TagList                 string `form:"tag_list" label:"Tags (comma separated)" validate:"max=500"`
	DonatedByOrganizationID string `form:"donated_by_organization_id" label:"Donated by" validate:"omitempty,uuid"`
	BenefitsOrganizationID  string `form:"benefits_organization_id" label:"Benefits organization" validate:"omitempty,uuid"`
	ActiveStartDate         string `form:"active_start_date" label:"Active from" input:"datetime-local" validate:"required,timestamp"`
	ActiveEndDate           string `form:"active_end_date" label:"Active until" input:"datetime-local" validate:"required,timestamp"`
}

type OrganizationForm struct {
	OrgType          string `form:"org_type" label:"Type" input:"select" options:"Business|FarmAnimalSanctuary|NonProfit" validate:"required,oneof=Business FarmAnimalSanctuary NonProfit"`
	Name             string `form:"name" label:"Name" validate:"required,max=200"`
	Description      string `form:"description" label:"Description" input:"textarea" validate:"max=2000"`
	Image            string `form:"image" label:"Image" validate:"max=500"`
	Email            string `form:"email" label:"Email" input:"email" validate:"required,email,max=254"`
	Website          string `form:"website" label:"Website" input:"url" validate:"required,url,max=500"`
	ContactName      string `form:"contact_name" label:"Contact name" validate:"max=200"`
	PhoneNumber      string `form:"phone_number" label:"Phone" input:"tel" validate:"max=32"`
	AltPhoneNumber   string `form:"alt_phone_number" label:"Alternate phone" input:"tel" validate:"max=32"`
	PrimaryAddressID string `form:"primary_address_id" label:"Primary address" validate:"omitempty,uuid"`
}

type UserForm struct {
	Email    string `form:"email" label:"Email" input:"email" validate:"required,email,max=254"`
	Username string `form:"username" label:"Username" validate:"required,min=3,max=40"`
	Bio      string `form:"bio" label:"Bio" input:"textarea" validate:"max=2000"`
	Role     string `form:"role" label:"Role" input:"select" options:"USER|ADMIN" validate:"required,oneof=USER ADMIN"`
	Image    string `form:"image" label:"Image" validate:"max=500"`
	Password string `form:"password" label:"Password" input:"password" validate:"required,min=8,max=72"`
}

// record -> form

func (a Address) Form() AddressForm {
	return AddressForm{
		StreetAddress1:      a.StreetAddress1,
		StreetAddress2:      deref(a.StreetAddress2),
		StreetAddress3:      deref(a.StreetAddress3),
		City:                a.City,
		StateProvinceCounty: a.StateProvinceCounty,
		PostalCode:          deref(a.PostalCode),
		CountryCode:         deref(a.CountryCode),
		Latitude:            formatFloat(a.Latitude),
		Longitude:           formatFloat(a.Longitude),
	}
}

func (a Auction) Form() AuctionForm {
	return AuctionForm{
		Title:                  a.Title,
		Description:            a.Description,
		StartDate:              datetime.FormatInput(a.StartDate),
		EndDate:                datetime.FormatInput(a.EndDate),
		BenefitsOrganizationID: formatNullUUID(a.BenefitsOrganizationID),
	}
}

func (it AuctionItem) Form() AuctionItemForm {
	f := AuctionItemForm{
		AuctionID:               it.AuctionID.String(),
		BasketID:                formatNullUUID(it.BasketID),
		Title:                   it.Title,
		Description:             it.Description,
		ExpectedRetailValue:     it.ExpectedRetailValue.StringFixed(2),
		MinimumBidAmount:        it.MinimumBidAmount.StringFixed(2),
		FeaturedImageFilepath:   it.FeaturedImageFilepath,
		ImageDir:                it.ImageDir,
		TagList:                 strings.Join(it.TagList, ", "),
		DonatedByOrganizationID: formatNullUUID(it.DonatedByOrganizationID),
		BenefitsOrganizationID:  formatNullUUID(it.BenefitsOrganizationID),
		ActiveStartDate:         datetime.FormatInput(it.ActiveStartDate),
		ActiveEndDate:           datetime.FormatInput(it.ActiveEndDate),
	}
	if it.BuyItNowAmount.Valid {
		f.BuyItNowAmount = it.BuyItNowAmount.Decimal.StringFixed(2)
	}
	return f
}

func (o Organization) Form() OrganizationForm {
	return OrganizationForm{
		OrgType:          string(o.OrgType),
		Name:             o.Name,
		Description:      deref(o.Description),
		Image:            deref(o.Image),
		Email:            o.Email,
		Website:          o.Website,
		ContactName:      deref(o.ContactName),
		PhoneNumber:      deref(o.PhoneNumber),
		AltPhoneNumber:   deref(o.AltPhoneNumber),
		PrimaryAddressID: formatNullUUID(o.PrimaryAddressID),
	}
}

// Form leaves Password blank; the stored hash is never echoed.
func (u User) Form() UserForm {
	return UserForm{
		Email:    u.Email,
		Username: u.Username,
		Bio:      u.Bio,
		Role:     u.Role,
		Image:    deref(u.Image),
	}
}

// form -> record. Callers validate first; the errors below only fire when
// they did not.

func (f AddressForm) Address() Address {
	return Address{
		StreetAddress1:      strings.TrimSpace(f.StreetAddress1),
		StreetAddress2:      optString(f.StreetAddress2),
		StreetAddress3:      optString(f.StreetAddress3),
		City:                strings.TrimSpace(f.City),
		StateProvinceCounty: strings.TrimSpace(f.StateProvinceCounty),
		PostalCode:          optString(f.PostalCode),
		CountryCode:         optString(strings.ToUpper(f.CountryCode)),
		Latitude:            lenientCoord(f.Latitude, 90),
		Longitude:           lenientCoord(f.Longitude, 180),
	}
}

func (f AuctionForm) Auction() (Auction, error) {
	start, err := datetime.Parse(f.StartDate)
	if err != nil {
		return Auction{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := datetime.Parse(f.EndDate)
	if err != nil {
		return Auction{}, fmt.Errorf("end_date: %w", err)
	}
	return Auction{
		Title:                  strings.TrimSpace(f.Title),
		Description:            f.Description,
		StartDate:              start,
		EndDate:                end,
		BenefitsOrganizationID: parseNullUUID(f.BenefitsOrganizationID),
	}, nil
}

func (f AuctionItemForm) AuctionItem() (AuctionItem, error) {
	auctionID, err := uuid.Parse(strings.TrimSpace(f.AuctionID))
	if err != nil {
		return AuctionItem{}, fmt.Errorf("auction_id: %w", err)
	}
	erv, err := decimal.NewFromString(strings.TrimSpace(f.ExpectedRetailValue))
	if err != nil {
		return AuctionItem{}, fmt.Errorf("expected_retail_value: %w", err)
	}
	minBid, err := decimal.NewFromString(strings.TrimSpace(f.MinimumBidAmount))
	if err != nil {
		return AuctionItem{}, fmt.Errorf("minimum_bid_amount: %w", err)
	}
	start, err := datetime.Parse(f.ActiveStartDate)
	if err != nil {
		return AuctionItem{}, fmt.Errorf("active_start_date: %w", err)
	}
	end, err := datetime.Parse(f.ActiveEndDate)
	if err != nil {
		return AuctionItem{}, fmt.Errorf("active_end_date: %w", err)
	}
	it := AuctionItem{
		AuctionID:               auctionID,
		BasketID:                parseNullUUID(f.BasketID),
		ExpectedRetailValue:     erv,
		MinimumBidAmount:        minBid,
		Title:                   strings.TrimSpace(f.Title),
		Description:             f.Description,
		FeaturedImageFilepath:   strings.TrimSpace(f.FeaturedImageFilepath),
		ImageDir:                strings.TrimSpace(f.ImageDir),
		TagList:                 SplitTags(f.TagList),
		DonatedByOrganizationID: parseNullUUID(f.DonatedByOrganizationID),
		BenefitsOrganizationID:  parseNullUUID(f.BenefitsOrganizationID),
		ActiveStartDate:         start,
		ActiveEndDate:           end,
	}
	if s := strings.TrimSpace(f.BuyItNowAmount); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return AuctionItem{}, fmt.Errorf("buy_it_now_amount: %w", err)
		}
		it.BuyItNowAmount = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return it, nil
}

func (f OrganizationForm) Organization() Organization {
	return Organization{
		OrgType:          OrgType(f.OrgType),
		Name:             strings.TrimSpace(f.Name),
		Description:      optString(f.Description),
		Image:            optString(f.Image),
		Email:            strings.TrimSpace(f.Email),
		Website:          strings.TrimSpace(f.Website),
		ContactName:      optString(f.ContactName),
		PhoneNumber:      optString(f.PhoneNumber),
		AltPhoneNumber:   optString(f.AltPhoneNumber),
		PrimaryAddressID: parseNullUUID(f.PrimaryAddressID),
	}
}

// User maps everything but the password; hashing belongs to the store.
func (f UserForm) User() User {
	return User{
		Email:    strings.TrimSpace(f.Email),
		Username: strings.TrimSpace(f.Username),
		Bio:      f.Bio,
		Role:     f.Role,
		Image:    optString(f.Image),
	}
}

// LenientFloat parses s, treating blank, unparseable or non-finite input as
// absent.
func LenientFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// lenientCoord is LenientFloat bounded to [-limit, limit].
func lenientCoord(s string, limit float64) *float64 {
	v := LenientFloat(s)
	if v == nil || math.Abs(*v) > limit {
		return nil
	}
	return v
}

// SplitTags turns "a, b,,c" into [a b c].
func SplitTags(s string) Tags {
	var out Tags
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func parseNullUUID(s string) uuid.NullUUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

func formatNullUUID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}
