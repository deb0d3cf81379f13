package admin

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPerPage = 30
	MaxPerPage     = 500
)

// Pagination is a page window. Page is zero based.
type Pagination struct {
	Page    int
	PerPage int
}

func DefaultPagination() Pagination { return Pagination{Page: 0, PerPage: DefaultPerPage} }

// ResolvePagination applies defaults instead of rejecting input. A bad
// perPage resets the whole window; a bad page only resets the page.
func ResolvePagination(page, perPage *int) Pagination {
	p := DefaultPagination()
	if perPage != nil {
		if *perPage <= 0 || *perPage > MaxPerPage {
			return DefaultPagination()
		}
		p.PerPage = *perPage
	}
	if page != nil && *page >= 0 {
		p.Page = *page
	}
	return p
}

// ParsePagination resolves raw query values. Blank, non-numeric and
// out-of-range values count as invalid.
func ParsePagination(rawPage, rawPerPage string) Pagination {
	return ResolvePagination(parseOptionalInt(rawPage), parseOptionalInt(rawPerPage))
}

func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// overflow lands here too; -1 is invalid for both fields
		n = -1
	}
	return &n
}

func (p Pagination) Limit() int { return p.PerPage }

// Offset is Page*PerPage, clamped to math.MaxInt instead of wrapping.
func (p Pagination) Offset() int {
	if p.Page <= 0 || p.PerPage <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return p.Page * p.PerPage
}

// NextPage is always offered, even after a short page.
func (p Pagination) NextPage() int {
	if p.Page == math.MaxInt {
		return math.MaxInt
	}
	return p.Page + 1
}
