package cli

import (
	"context"
	"fmt"
)

func (a *App) Favorites(ctx context.Context) error {
	favorites, err := a.favorites.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load favorites: %s\n", err)
		return err
	}

	if len(favorites) == 0 {
		fmt.Fprintln(a.out, "No favorites yet.")
		return nil
	}

	for _, fav := range favorites {
		fmt.Fprintf(a.out, "%s  %s by %s\n", fav.Fragrance.ID, fav.Fragrance.Name, fav.Fragrance.Brand)
	}
	return nil
}

// ToggleFavorite flips the favorite state of a fragrance. The flip is shown
// immediately and undone if the request fails.
func (a *App) ToggleFavorite(ctx context.Context, fragranceID string) error {
	fragrance, err := a.apiClient.GetFragrance(ctx, fragranceID)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load fragrance: %s\n", err)
		return err
	}

	_, err = a.favorites.Toggle(ctx, fragranceID, fragrance.IsFavorite, func(favorite bool) {
		if favorite {
			fmt.Fprintf(a.out, "Added %s to favorites.\n", fragrance.Name)
		} else {
			fmt.Fprintf(a.out, "Removed %s from favorites.\n", fragrance.Name)
		}
	})
	if err != nil {
		fmt.Fprintf(a.out, "Could not update favorite: %s\n", err)
		return err
	}
	return nil
}
