package admin

import (
	"math"
	"strconv"
	"testing"
)

func intp(n int) *int { return &n }

func TestResolvePagination(t *testing.T) {
	cases := []struct {
		name          string
		page, perPage *int
		want          Pagination
	}{
		{"defaults", nil, nil, Pagination{0, 30}},
		{"explicit", intp(3), intp(10), Pagination{3, 10}},
		{"zero per page", intp(3), intp(0), Pagination{0, 30}},
		{"negative per page", intp(3), intp(-5), Pagination{0, 30}},
		{"per page over max", intp(1), intp(MaxPerPage + 1), Pagination{0, 30}},
		{"per page at max", intp(1), intp(MaxPerPage), Pagination{1, MaxPerPage}},
		{"negative page", intp(-1), intp(10), Pagination{0, 10}},
		{"page only", intp(7), nil, Pagination{7, 30}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvePagination(tc.page, tc.perPage); got != tc.want {
				t.Fatalf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	huge := strconv.Itoa(math.MaxInt) + "0"
	cases := []struct {
		page, perPage string
		want          Pagination
	}{
		{"", "", Pagination{0, 30}},
		{"0", "2", Pagination{0, 2}},
		{" 4 ", "25", Pagination{4, 25}},
		{"abc", "10", Pagination{0, 10}},
		{"2", "ten", Pagination{0, 30}},
		{huge, "10", Pagination{0, 10}},
		{"1", huge, Pagination{0, 30}},
	}
	for _, tc := range cases {
		if got := ParsePagination(tc.page, tc.perPage); got != tc.want {
			t.Fatalf("(%q,%q): want %+v, got %+v", tc.page, tc.perPage, tc.want, got)
		}
	}
}

func TestOffsetAndNextPage(t *testing.T) {
	for _, p := range []Pagination{{0, 30}, {1, 30}, {5, 2}, {1000, 500}} {
		if p.Offset() != p.Page*p.PerPage {
			t.Fatalf("%+v: offset %d", p, p.Offset())
		}
		if p.NextPage() != p.Page+1 {
			t.Fatalf("%+v: next %d", p, p.NextPage())
		}
		if p.Limit() != p.PerPage {
			t.Fatalf("%+v: limit %d", p, p.Limit())
		}
	}
}

func TestOffsetSaturates(t *testing.T) {
	p := Pagination{Page: math.MaxInt, PerPage: MaxPerPage}
	if got := p.Offset(); got != math.MaxInt {
		t.Fatalf("want clamp to MaxInt, got %d", got)
	}
	if got := p.NextPage(); got != math.MaxInt {
		t.Fatalf("next page wrapped: %d", got)
	}
	p = Pagination{Page: math.MaxInt / 2, PerPage: 3}
	if p.Offset() < 0 {
		t.Fatalf("offset went negative: %d", p.Offset())
	}
}
