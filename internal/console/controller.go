package console

// controller.go is the list-view state machine every resource screen shares:
// query state in, exactly one fetch per mutation, rows+total swapped
// atomically on success, previous rows kept on failure. Each fetch carries a
// generation token; a response whose generation is no longer current is
// discarded, so rapid search typing can never leave an older result on
// screen.

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"dramahub/internal/api"
)

type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateErrored
)

func (s ViewState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// FetchFunc loads one page of rows for the given query.
type FetchFunc[T any] func(ctx context.Context, q Query) (api.Page[T], error)

type Controller[T any] struct {
	fetch    FetchFunc[T]
	notify   Notifier
	pageSize int

	mu      sync.Mutex
	gen     uint64
	query   Query
	state   ViewState
	loading bool
	rows    []T
	total   int
	counted bool
}

func NewController[T any](fetch FetchFunc[T], notify Notifier) *Controller[T] {
	return &Controller[T]{
		fetch:    fetch,
		notify:   notify,
		pageSize: DefaultPageSize,
		query:    NewQuery(),
		state:    StateIdle,
	}
}

// Restore replaces the whole query state, e.g. from a bookmarked URL.
func (c *Controller[T]) Restore(ctx context.Context, q Query) {
	c.mu.Lock()
	if q.Page < 1 {
		q.Page = 1
	}
	c.query = q.clone()
	c.mu.Unlock()
	c.load(ctx)
}

// Refresh refetches with the current query, e.g. after a form submit.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.load(ctx)
}

// SetPage moves to another page and refetches.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.query.Page = page
	c.mu.Unlock()
	c.load(ctx)
}

// SetSearch submits a new search. A new search invalidates the prior
// pagination position, so page resets to 1.
func (c *Controller[T]) SetSearch(ctx context.Context, search string) {
	c.mu.Lock()
	c.query.Search = search
	c.query.Page = 1
	c.mu.Unlock()
	c.load(ctx)
}

// SetFilter changes one filter value and refetches. Like search, it resets
// page to 1. An empty value removes the filter.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) {
	c.mu.Lock()
	if value == "" {
		c.query.Filters.Del(key)
	} else {
		c.query.Filters.Set(key, value)
	}
	c.query.Page = 1
	c.mu.Unlock()
	c.load(ctx)
}

func (c *Controller[T]) load(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	q := c.query.clone()
	c.loading = true
	c.state = StateLoading
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)
	c.apply(gen, page, err)
}

// apply installs one fetch result, or drops it if a newer fetch has been
// issued since. Loading always clears for the current generation, success or
// not.
func (c *Controller[T]) apply(gen uint64, page api.Page[T], err error) {
	c.mu.Lock()

	if gen != c.gen {
		c.mu.Unlock()
		log.WithFields(log.Fields{"gen": gen, "current": c.gen}).Debug("discarding stale list response")
		return
	}

	c.loading = false
	if err != nil {
		// previous rows stay visible
		c.state = StateErrored
		c.mu.Unlock()
		c.notify.Error(err.Error())
		return
	}

	c.rows = page.Items
	c.total = page.Total
	c.counted = page.Counted
	if len(page.Items) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StatePopulated
	}
	c.mu.Unlock()
}

func (c *Controller[T]) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.rows...)
}

func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *Controller[T]) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.clone()
}

func (c *Controller[T]) Pager() Pager {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Pager{
		Page:     c.query.Page,
		PageSize: c.pageSize,
		Total:    c.total,
		Counted:  c.counted,
		Returned: len(c.rows),
	}
}
