package countries

// Pager tracks the selected page and the search text of a list view.
// The page always stays within [1, max(1, totalPages)].
type Pager struct {
	page       int
	search     string
	totalPages int
}

// NewPager starts at page 1 with an empty search
func NewPager() *Pager {
	return &Pager{page: 1}
}

func (p *Pager) Page() int      { return p.page }
func (p *Pager) Search() string { return p.search }

// SetTotalPages updates the upper bound and pulls the page back into range.
func (p *Pager) SetTotalPages(n int) {
	p.totalPages = n
	p.page = p.clamp(p.page)
}

// Select moves to page, clamped into range
func (p *Pager) Select(page int) {
	p.page = p.clamp(page)
}

// Next selects the following page if there is one
func (p *Pager) Next() { p.Select(p.page + 1) }

// Prev selects the previous page if there is one
func (p *Pager) Prev() { p.Select(p.page - 1) }

// SetSearch replaces the search text. Any change resets the page to 1.
func (p *Pager) SetSearch(s string) {
	if s == p.search {
		return
	}
	p.search = s
	p.page = 1
}

// Clear empties the search and goes back to page 1
func (p *Pager) Clear() {
	p.search = ""
	p.page = 1
}

func (p *Pager) clamp(page int) int {
	last := p.totalPages
	if last < 1 {
		last = 1
	}
	switch {
	case page < 1:
		return 1
	case page > last:
		return last
	default:
		return page
	}
}
