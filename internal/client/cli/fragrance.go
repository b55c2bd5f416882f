package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/scentid/scentid-cli/internal/client/api"
)

// Show renders a fragrance detail view plus similar fragrances.
func (a *App) Show(ctx context.Context, fragranceID string) error {
	fragrance, err := a.apiClient.GetFragrance(ctx, fragranceID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "No fragrance found with id %s\n", fragranceID)
			return err
		}
		fmt.Fprintf(a.out, "Failed to load fragrance: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "%s by %s\n", fragrance.Name, fragrance.Brand)
	if fragrance.Description != "" {
		fmt.Fprintln(a.out, fragrance.Description)
	}
	printNotes(a.out, fragrance)
	if fragrance.Concentration != "" {
		fmt.Fprintf(a.out, "  concentration: %s\n", fragrance.Concentration)
	}
	if fragrance.PriceMin > 0 || fragrance.PriceMax > 0 {
		fmt.Fprintf(a.out, "  price: $%.0f - $%.0f\n", fragrance.PriceMin, fragrance.PriceMax)
	}
	fmt.Fprintf(a.out, "  rating: %.1f (%d reviews)\n", fragrance.AvgRating, fragrance.ReviewCount)
	if fragrance.IsFavorite {
		fmt.Fprintln(a.out, "  in your favorites")
	}

	similar, err := a.apiClient.SimilarFragrances(ctx, fragranceID, 5)
	if err != nil {
		a.log.Warn(ctx, "failed to load similar fragrances", "error", err)
		return nil
	}
	if len(similar) > 0 {
		fmt.Fprintln(a.out, "Similar fragrances:")
		for _, item := range similar {
			fmt.Fprintf(a.out, "  %s  %s by %s\n", item.ID, item.Name, item.Brand)
		}
	}
	return nil
}
