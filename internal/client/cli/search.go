package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/scentid/scentid-cli/internal/client/models"
)

// Search enters an interactive search loop. Every typed line updates the
// query; ":brand X", ":gender X" and ":clear" adjust the filters; an empty
// line or ":q" leaves the loop. Results arrive asynchronously through the
// coordinator's callbacks as the debounce window elapses.
func (a *App) Search(ctx context.Context) error {
	a.search.OnResults(func(items []models.FragranceListItem) {
		printResults(a.out, items)
	})
	a.search.OnError(func(err error) {
		fmt.Fprintf(a.out, "Search failed: %s\n", err)
	})

	if err := a.search.LoadBaseline(ctx); err != nil {
		fmt.Fprintf(a.out, "Failed to load popular fragrances: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Type to search, :brand <name>, :gender <m|f|u>, :clear, :q to quit")

	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == "" || line == ":q":
			a.search.Stop()
			return nil
		case strings.HasPrefix(line, ":brand "):
			a.search.SetBrand(strings.TrimSpace(strings.TrimPrefix(line, ":brand ")))
		case line == ":brand":
			a.search.SetBrand("")
		case strings.HasPrefix(line, ":gender "):
			a.search.SetGender(normalizeGender(strings.TrimSpace(strings.TrimPrefix(line, ":gender "))))
		case line == ":gender":
			a.search.SetGender("")
		case line == ":clear":
			a.search.SetQuery("")
			a.search.SetBrand("")
			a.search.SetGender("")
		default:
			a.search.SetQuery(line)
		}
	}
}

func (a *App) Brands(ctx context.Context) error {
	brands, err := a.apiClient.Brands(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load brands: %s\n", err)
		return err
	}
	for _, brand := range brands {
		fmt.Fprintln(a.out, brand)
	}
	return nil
}

func normalizeGender(s string) string {
	switch strings.ToLower(s) {
	case "m", "masculine":
		return "Masculine"
	case "f", "feminine":
		return "Feminine"
	case "u", "unisex":
		return "Unisex"
	default:
		return s
	}
}

func printResults(w io.Writer, items []models.FragranceListItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No fragrances found.")
		return
	}
	for _, item := range items {
		marker := " "
		if item.IsFavorite {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %s by %s (%.1f)\n", marker, item.ID, item.Name, item.Brand, item.AvgRating)
	}
}
