package services

import (
	"context"
	"fmt"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/logging"
)

// FavoriteService applies optimistic add/remove of favorites. There is no
// shared favorite cache: each screen passes its own apply callback and
// re-derives its view, and the service only guarantees that the remote
// operation succeeded or was rolled back.
type FavoriteService struct {
	api api.Client
	log logging.Logger
}

func NewFavoriteService(apiClient api.Client, log logging.Logger) *FavoriteService {
	return &FavoriteService{api: apiClient, log: log}
}

// Toggle flips the favorite state of a fragrance. The apply callback is
// invoked with the new value before the network call so the interaction is
// latency-free, and invoked again with the prior value if the call fails.
// The returned bool is the settled state.
func (s *FavoriteService) Toggle(ctx context.Context, fragranceID string, currentlyFavorite bool, apply func(favorite bool)) (bool, error) {
	next := !currentlyFavorite
	if apply != nil {
		apply(next)
	}

	var err error
	if next {
		err = s.api.AddFavorite(ctx, fragranceID)
	} else {
		err = s.api.RemoveFavorite(ctx, fragranceID)
	}
	if err != nil {
		// Compensating rollback: after settling, the net effect is as if
		// Toggle had never been called.
		if apply != nil {
			apply(currentlyFavorite)
		}
		return currentlyFavorite, fmt.Errorf("failed to update favorite: %w", err)
	}

	return next, nil
}

// List returns the user's favorite entries.
func (s *FavoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	return s.api.Favorites(ctx)
}
