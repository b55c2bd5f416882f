package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
)

func TestFavoriteService_ToggleOnAppliesOptimistically(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{}
	svc := NewFavoriteService(fake, testLogger())

	var applied []bool
	settled, err := svc.Toggle(ctx, "f1", false, func(favorite bool) {
		applied = append(applied, favorite)
	})
	require.NoError(t, err)
	require.True(t, settled)

	// The flip is visible before the request resolves and is not undone.
	require.Equal(t, []bool{true}, applied)
	require.Equal(t, 1, fake.AddFavCalls)
	require.Equal(t, "f1", fake.LastFavoriteID)
}

func TestFavoriteService_ToggleOffCallsRemove(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{}
	svc := NewFavoriteService(fake, testLogger())

	settled, err := svc.Toggle(ctx, "f1", true, nil)
	require.NoError(t, err)
	require.False(t, settled)
	require.Equal(t, 1, fake.RemoveFavCalls)
	require.Zero(t, fake.AddFavCalls)
}

func TestFavoriteService_FailureRollsBack(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{AddFavoriteErr: &api.Error{StatusCode: 500, Message: "boom"}}
	svc := NewFavoriteService(fake, testLogger())

	var applied []bool
	settled, err := svc.Toggle(ctx, "f1", false, func(favorite bool) {
		applied = append(applied, favorite)
	})
	require.Error(t, err)
	require.False(t, settled)

	// Optimistic flip, then the compensating rollback: net effect is as if
	// Toggle had never been called.
	require.Equal(t, []bool{true, false}, applied)
}

func TestFavoriteService_RemoveFailureRestoresFavorite(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{RemoveFavErr: api.ErrUnavailable}
	svc := NewFavoriteService(fake, testLogger())

	var applied []bool
	settled, err := svc.Toggle(ctx, "f1", true, func(favorite bool) {
		applied = append(applied, favorite)
	})
	require.ErrorIs(t, err, api.ErrUnavailable)
	require.True(t, settled)
	require.Equal(t, []bool{false, true}, applied)
}

func TestFavoriteService_List(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{FavoritesResp: []models.Favorite{
		{ID: "fav1", Fragrance: models.FragranceListItem{ID: "f1", Name: "Aventus"}},
	}}
	svc := NewFavoriteService(fake, testLogger())

	favorites, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.Equal(t, "Aventus", favorites[0].Fragrance.Name)
}
