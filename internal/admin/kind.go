package admin

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies one administrable table. The set is closed: adding a table
// means adding a constant here and a Table in NewTables.
type Kind uint8

const (
	KindAddress Kind = iota
	KindArticle
	KindAuction
	KindAuctionItem
	KindAuctionItemBid
	KindAuctionItemDelivery
	KindOrganization
	KindUser

	kindCount
)

var kindSlugs = [kindCount]string{
	KindAddress:             "address",
	KindArticle:             "article",
	KindAuction:             "auction",
	KindAuctionItem:         "auction_item",
	KindAuctionItemBid:      "auction_item_bid",
	KindAuctionItemDelivery: "auction_item_delivery",
	KindOrganization:        "organization",
	KindUser:                "user",
}

var (
	kindLabels  [kindCount]string
	kindsBySlug = make(map[string]Kind, kindCount)
)

func init() {
	title := cases.Title(language.English)
	for k := Kind(0); k < kindCount; k++ {
		kindLabels[k] = title.String(strings.ReplaceAll(kindSlugs[k], "_", " "))
		kindsBySlug[kindSlugs[k]] = k
	}
}

// Kinds returns every kind in declaration order. The slice is a fresh copy.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) Valid() bool { return k < kindCount }

// Slug is the URL-safe name used in routes.
func (k Kind) Slug() string {
	if !k.Valid() {
		return ""
	}
	return kindSlugs[k]
}

// Label is the human readable name, e.g. "Auction Item Bid".
func (k Kind) Label() string {
	if !k.Valid() {
		return ""
	}
	return kindLabels[k]
}

func (k Kind) String() string { return k.Slug() }

// ParseKind turns a route token into a Kind. Anything outside the fixed set
// is a NotFound error.
func ParseKind(slug string) (Kind, error) {
	if k, ok := kindsBySlug[slug]; ok {
		return k, nil
	}
	return 0, notFoundf("no such table %q", slug)
}
