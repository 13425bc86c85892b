package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerCountedTotals(t *testing.T) {
	p := Pager{Page: 1, PageSize: 10, Total: 34, Counted: true, Returned: 10}
	assert.Equal(t, 4, p.TotalPages())
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p.Page = 4
	p.Returned = 4
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPagerExactMultiple(t *testing.T) {
	p := Pager{Page: 2, PageSize: 10, Total: 30, Counted: true, Returned: 10}
	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNext())

	p.Page = 3
	assert.False(t, p.HasNext())
}

func TestPagerEmptyResult(t *testing.T) {
	p := Pager{Page: 1, PageSize: 10, Total: 0, Counted: true, Returned: 0}
	assert.Equal(t, 0, p.TotalPages())
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPagerUncountedShortPage(t *testing.T) {
	// bare-array response with 2 rows: single page, no next
	p := Pager{Page: 1, PageSize: 10, Total: 2, Counted: false, Returned: 2}
	assert.Equal(t, 1, p.TotalPages())
	assert.False(t, p.HasNext())
}

func TestPagerUncountedFullPage(t *testing.T) {
	// a full uncounted page assumes more may follow
	p := Pager{Page: 1, PageSize: 10, Total: 10, Counted: false, Returned: 10}
	assert.True(t, p.HasNext())
}
