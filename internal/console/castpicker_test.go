package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dramahub/internal/api"
	"dramahub/internal/models"
)

func actorSearch(all []models.Actor) ActorSearchFunc {
	return func(ctx context.Context, search string, page int) (api.Page[models.Actor], error) {
		return api.Page[models.Actor]{Items: all, Total: len(all), Counted: true}, nil
	}
}

func TestCastPickerAddAndRemove(t *testing.T) {
	notify := &memNotifier{}
	picker := NewCastPicker(actorSearch(nil), notify)

	ok := picker.Add(models.Actor{ID: 7, Name: "Son Ye-jin"}, models.CastRoleMain)
	require.True(t, ok)
	assert.Equal(t, 1, picker.Len())

	ok = picker.Add(models.Actor{ID: 9, Name: "Hyun Bin"}, models.CastRoleSupport)
	require.True(t, ok)

	selected := picker.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, "main", selected[0].Role)
	assert.Equal(t, "support", selected[1].Role)

	assert.True(t, picker.Remove(7))
	assert.False(t, picker.Remove(7))
	assert.Equal(t, 1, picker.Len())
}

func TestCastPickerRejectsDuplicate(t *testing.T) {
	notify := &memNotifier{}
	picker := NewCastPicker(actorSearch(nil), notify)

	require.True(t, picker.Add(models.Actor{ID: 7, Name: "Son Ye-jin"}, models.CastRoleMain))
	ok := picker.Add(models.Actor{ID: 7, Name: "Son Ye-jin"}, models.CastRoleSupport)

	assert.False(t, ok)
	assert.Equal(t, 1, picker.Len())
	assert.Equal(t, 1, notify.errorCount())
}

func TestCastPickerRejectsUnknownRole(t *testing.T) {
	notify := &memNotifier{}
	picker := NewCastPicker(actorSearch(nil), notify)

	ok := picker.Add(models.Actor{ID: 7, Name: "Son Ye-jin"}, "lead")
	assert.False(t, ok)
	assert.Zero(t, picker.Len())
	assert.Equal(t, 1, notify.errorCount())
}

func TestCastPickerLoadReplacesSelection(t *testing.T) {
	picker := NewCastPicker(actorSearch(nil), &memNotifier{})
	picker.Add(models.Actor{ID: 1, Name: "A"}, models.CastRoleMain)

	picker.Load([]models.CastMember{
		{ActorID: 2, Name: "B", Role: models.CastRoleSupport},
	})
	selected := picker.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, int64(2), selected[0].ActorID)
}

func TestCastPickerSupersededSearchDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	picker := NewCastPicker(func(ctx context.Context, search string, page int) (api.Page[models.Actor], error) {
		if search == "old" {
			close(started)
			<-release
			return api.Page[models.Actor]{Items: []models.Actor{{ID: 1, Name: "Old"}}}, nil
		}
		return api.Page[models.Actor]{Items: []models.Actor{{ID: 2, Name: "New"}}}, nil
	}, &memNotifier{})

	var oldErr error
	done := make(chan struct{})
	go func() {
		_, oldErr = picker.Search(context.Background(), "old", 1)
		close(done)
	}()
	<-started

	// newer input arrives while the first lookup is still on the server
	page, err := picker.Search(context.Background(), "new", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "New", page.Items[0].Name)

	close(release)
	<-done
	assert.ErrorIs(t, oldErr, ErrSearchSuperseded)
}

func TestCastPickerSearch(t *testing.T) {
	actors := []models.Actor{{ID: 1, Name: "Kim"}, {ID: 2, Name: "Park"}}
	picker := NewCastPicker(actorSearch(actors), &memNotifier{})

	page, err := picker.Search(context.Background(), "k", 1)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}
