package console

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryRoundTrip(t *testing.T) {
	q := NewQuery()
	q.Page = 3
	q.Search = "crash landing"
	q.Filters.Set("status", "completed")
	q.Filters.Set("genre", "romance")

	restored := ParseQuery(q.Values())
	assert.Equal(t, 3, restored.Page)
	assert.Equal(t, "crash landing", restored.Search)
	assert.Equal(t, "completed", restored.Filter("status"))
	assert.Equal(t, "romance", restored.Filter("genre"))
}

func TestParseQueryDefaults(t *testing.T) {
	q := ParseQuery(url.Values{})
	assert.Equal(t, 1, q.Page)
	assert.Empty(t, q.Search)

	q = ParseQuery(url.Values{"page": {"0"}})
	assert.Equal(t, 1, q.Page)

	q = ParseQuery(url.Values{"page": {"nope"}})
	assert.Equal(t, 1, q.Page)
}
