// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

// Paginator tracks the current page of a collection of known size. Pages
// are 1-indexed and every operation keeps the page inside [1, TotalPages].
type Paginator struct {
	page    int
	perPage int
	total   int
}

// NewPaginator returns a paginator on page 1. A non-positive perPage is
// treated as 1.
func NewPaginator(perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator{page: 1, perPage: perPage}
}

func (p *Paginator) Page() int    { return p.page }
func (p *Paginator) PerPage() int { return p.perPage }
func (p *Paginator) Total() int   { return p.total }

// TotalPages is ceil(total/perPage) with a floor of 1.
func (p *Paginator) TotalPages() int {
	pages := (p.total + p.perPage - 1) / p.perPage
	return max(1, pages)
}

// SetTotal updates the collection size reported by the server and clamps
// the current page into the new range.
func (p *Paginator) SetTotal(total int) {
	p.total = max(0, total)
	p.page = p.clamp(p.page)
}

// Next moves one page forward; a no-op on the last page.
func (p *Paginator) Next() {
	p.page = p.clamp(p.page + 1)
}

// Prev moves one page back; a no-op on page 1.
func (p *Paginator) Prev() {
	p.page = p.clamp(p.page - 1)
}

// GoTo moves to page n clamped into [1, TotalPages].
func (p *Paginator) GoTo(n int) {
	p.page = p.clamp(n)
}

// Reset returns to page 1.
func (p *Paginator) Reset() {
	p.page = 1
}

func (p *Paginator) HasNext() bool { return p.page < p.TotalPages() }
func (p *Paginator) HasPrev() bool { return p.page > 1 }

// Range returns the 1-based window "showing from to to of Total" for a page
// that displays visible rows. Both bounds are 0 when nothing is visible.
func (p *Paginator) Range(visible int) (from, to int) {
	if visible <= 0 {
		return 0, 0
	}
	from = (p.page-1)*p.perPage + 1
	to = from + visible - 1
	return from, to
}

func (p *Paginator) clamp(n int) int {
	return min(max(n, 1), p.TotalPages())
}
