package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestLenientFloat(t *testing.T) {
	cases := map[string]*float64{
		"":        nil,
		"  ":      nil,
		"north":   nil,
		"12.5.1":  nil,
		"38.9072": ptr(38.9072),
		" -77.03": ptr(-77.03),
		"NaN":     nil,
		"nan":     nil,
		"Inf":     nil,
		"+Inf":    nil,
		"-Inf":    nil,
		"1e400":   nil,
	}
	for in, want := range cases {
		got := LenientFloat(in)
		switch {
		case want == nil && got != nil:
			t.Fatalf("LenientFloat(%q) = %v, want nil", in, *got)
		case want != nil && (got == nil || *got != *want):
			t.Fatalf("LenientFloat(%q) = %v, want %v", in, got, *want)
		}
	}
}

func TestAddressCoordinatesOutOfRangeAreDropped(t *testing.T) {
	cases := []struct {
		lat, long string
		keepLat   bool
		keepLong  bool
	}{
		{"90", "180", true, true},
		{"-90", "-180", true, true},
		{"90.5", "12", false, true},
		{"12", "-180.01", true, false},
		{"NaN", "Inf", false, false},
	}
	for _, c := range cases {
		a := AddressForm{Latitude: c.lat, Longitude: c.long}.Address()
		if (a.Latitude != nil) != c.keepLat {
			t.Fatalf("latitude %q kept = %v, want %v", c.lat, a.Latitude != nil, c.keepLat)
		}
		if (a.Longitude != nil) != c.keepLong {
			t.Fatalf("longitude %q kept = %v, want %v", c.long, a.Longitude != nil, c.keepLong)
		}
	}
}

func TestAddressFormRoundTrip(t *testing.T) {
	in := AddressForm{
		StreetAddress1:      "1 Barn Lane",
		City:                "Ithaca",
		StateProvinceCounty: "NY",
		CountryCode:         "us",
		Latitude:            "42.44",
		Longitude:           "not-a-number",
	}
	a := in.Address()
	if a.StreetAddress2 != nil || a.PostalCode != nil {
		t.Fatalf("blank optionals should be nil: %+v", a)
	}
	if a.CountryCode == nil || *a.CountryCode != "US" {
		t.Fatalf("country code not normalised: %v", a.CountryCode)
	}
	if a.Latitude == nil || *a.Latitude != 42.44 || a.Longitude != nil {
		t.Fatalf("coordinates wrong: %v %v", a.Latitude, a.Longitude)
	}

	back := a.Form()
	if back.Longitude != "" || back.PostalCode != "" || back.Latitude != "42.44" {
		t.Fatalf("absent values must render empty: %+v", back)
	}
}

func TestUserFormNeverEchoesHash(t *testing.T) {
	u := User{Email: "a@b.test", Username: "ann", Role: "USER", Hash: "$2a$secret"}
	if f := u.Form(); f.Password != "" {
		t.Fatalf("password leaked into form: %q", f.Password)
	}
}

func TestAuctionItemFormConversion(t *testing.T) {
	auction := uuid.New()
	f := AuctionItemForm{
		AuctionID:           auction.String(),
		Title:               "Hay bale",
		Description:         "Fresh",
		ExpectedRetailValue: "120",
		MinimumBidAmount:    "40.5",
		TagList:             "farm, , feed",
		ActiveStartDate:     "2024-06-01T10:00",
		ActiveEndDate:       "2024-06-08T10:00",
	}
	it, err := f.AuctionItem()
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if it.AuctionID != auction || !it.MinimumBidAmount.Equal(decimal.RequireFromString("40.50")) {
		t.Fatalf("bad conversion: %+v", it)
	}
	if it.BuyItNowAmount.Valid || len(it.TagList) != 2 {
		t.Fatalf("optional/tag handling wrong: %+v", it)
	}
	if !it.ActiveEndDate.Equal(time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("end date wrong: %v", it.ActiveEndDate)
	}
	back := it.Form()
	if back.MinimumBidAmount != "40.50" || back.TagList != "farm, feed" || back.BuyItNowAmount != "" {
		t.Fatalf("form projection wrong: %+v", back)
	}

	f.MinimumBidAmount = "lots"
	if _, err := f.AuctionItem(); err == nil {
		t.Fatal("expected error for bad amount")
	}
}

func TestTagsScanValue(t *testing.T) {
	v, err := Tags{"a", "b"}.Value()
	if err != nil || v != `["a","b"]` {
		t.Fatalf("value = %v, %v", v, err)
	}
	var got Tags
	if err := got.Scan(`["x"]`); err != nil || len(got) != 1 || got[0] != "x" {
		t.Fatalf("scan = %v, %v", got, err)
	}
	if err := got.Scan(nil); err != nil || got != nil {
		t.Fatalf("scan nil = %v, %v", got, err)
	}
	if err := got.Scan(42); err == nil {
		t.Fatal("expected error for int source")
	}
}

func ptr(f float64) *float64 { return &f }
