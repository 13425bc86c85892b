package console

// DefaultPageSize is fixed across every list screen.
const DefaultPageSize = 10

// Pager is a snapshot of pagination state for one rendered page.
//
// When Counted is false the server answered with a bare array and Total is
// just the length of the current page, so next-page gating falls back to the
// "short page" heuristic: a page shorter than PageSize is the last one.
type Pager struct {
	Page     int
	PageSize int
	Total    int
	Counted  bool
	Returned int
}

func (p Pager) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

func (p Pager) HasPrev() bool {
	return p.Page > 1
}

func (p Pager) HasNext() bool {
	if !p.Counted {
		return p.Returned >= p.PageSize
	}
	return p.Total != 0 && p.Page < p.TotalPages()
}
