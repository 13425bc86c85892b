package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dramahub/internal/forms"
)

func TestParseCastSpec(t *testing.T) {
	entries, err := parseCastSpec("12:main,34:support")
	require.NoError(t, err)
	assert.Equal(t, []forms.CastEntry{
		{ActorID: 12, Role: "main"},
		{ActorID: 34, Role: "support"},
	}, entries)
}

func TestParseCastSpecTolerantSpacing(t *testing.T) {
	entries, err := parseCastSpec(" 12:main , 34:support ")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(34), entries[1].ActorID)
}

func TestParseCastSpecEmpty(t *testing.T) {
	entries, err := parseCastSpec("")
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestParseCastSpecErrors(t *testing.T) {
	_, err := parseCastSpec("12")
	assert.Error(t, err)

	_, err = parseCastSpec("notanumber:main")
	assert.Error(t, err)
}
