package console

// query.go encodes the list-view inputs the same way the screens address them:
// page, free-text search and resource-specific filters, round-trippable
// through a URL query string so a view can be bookmarked and restored.

import (
	"net/url"
	"strconv"
)

type Query struct {
	Page    int
	Search  string
	Filters url.Values
}

func NewQuery() Query {
	return Query{Page: 1, Filters: url.Values{}}
}

// ParseQuery restores a Query from URL values. Page defaults to 1; anything
// besides page and search is treated as a filter.
func ParseQuery(v url.Values) Query {
	q := NewQuery()
	if page, err := strconv.Atoi(v.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}
	q.Search = v.Get("search")
	for key, vals := range v {
		if key == "page" || key == "search" {
			continue
		}
		for _, val := range vals {
			q.Filters.Add(key, val)
		}
	}
	return q
}

// Values encodes the query back into URL values.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for key, vals := range q.Filters {
		for _, val := range vals {
			v.Add(key, val)
		}
	}
	return v
}

func (q Query) Filter(key string) string {
	return q.Filters.Get(key)
}

func (q Query) clone() Query {
	filters := url.Values{}
	for key, vals := range q.Filters {
		filters[key] = append([]string(nil), vals...)
	}
	return Query{Page: q.Page, Search: q.Search, Filters: filters}
}
