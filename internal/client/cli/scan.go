package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/client/services"
)

// Scan runs one full workflow: acquire a reading, submit it, fetch and
// render the result.
func (a *App) Scan(ctx context.Context) error {
	fmt.Fprintln(a.out, "Analyzing scent signature...")

	scanID, err := a.scans.Run(ctx)
	if err != nil {
		if errors.Is(err, services.ErrScanInProgress) {
			fmt.Fprintln(a.out, "A scan is already running, wait for it to finish.")
			return err
		}
		fmt.Fprintf(a.out, "Scan failed: %s\n", err)
		return err
	}

	return a.Result(ctx, scanID)
}

// Result fetches and renders a scan. A scan without a best match is a valid
// outcome and renders as such.
func (a *App) Result(ctx context.Context, scanID string) error {
	scan, err := a.scans.FetchResult(ctx, scanID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "No scan found with id %s\n", scanID)
			return err
		}
		fmt.Fprintf(a.out, "Failed to load scan: %s\n", err)
		return err
	}

	if scan.BestMatch == nil {
		fmt.Fprintln(a.out, "No match found for this scan.")
		return nil
	}

	best := scan.BestMatch
	fmt.Fprintf(a.out, "Best match: %s by %s (%s confidence)\n",
		best.Fragrance.Name, best.Fragrance.Brand, formatConfidence(best.ConfidenceScore))
	printNotes(a.out, &best.Fragrance)

	if len(scan.Alternatives) > 0 {
		fmt.Fprintln(a.out, "Alternatives:")
		for _, alt := range scan.Alternatives {
			fmt.Fprintf(a.out, "  %s by %s (%s)\n",
				alt.Fragrance.Name, alt.Fragrance.Brand, formatConfidence(alt.ConfidenceScore))
		}
	}

	fmt.Fprintf(a.out, "Scan id: %s\n", scan.ID)
	return nil
}

func (a *App) History(ctx context.Context) error {
	items, err := a.scans.History(ctx, a.config.HistoryPageSize, 0)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load history: %s\n", err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No scans yet.")
		return nil
	}

	for _, item := range items {
		name := "no match"
		if item.Fragrance != nil {
			name = fmt.Sprintf("%s by %s (%s)",
				item.Fragrance.Name, item.Fragrance.Brand, formatConfidence(item.ConfidenceScore))
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n", item.ID, item.ScannedAt.Format("2006-01-02 15:04"), name)
	}
	return nil
}

func (a *App) DeleteScan(ctx context.Context, scanID string) error {
	if err := a.scans.Delete(ctx, scanID); err != nil {
		fmt.Fprintf(a.out, "Failed to delete scan: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Scan deleted.")
	return nil
}

// Feedback reports whether the best match of a scan was correct. It does
// not change any displayed state, success or not.
func (a *App) Feedback(ctx context.Context) error {
	scanID, err := a.prompt("Scan id")
	if err != nil {
		return err
	}

	scan, err := a.scans.FetchResult(ctx, scanID)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load scan: %s\n", err)
		return err
	}
	if scan.BestMatch == nil {
		fmt.Fprintln(a.out, "That scan has no match to rate.")
		return nil
	}

	correct, err := GetYesNo(a.reader, fmt.Sprintf("Was %s the right match?", scan.BestMatch.Fragrance.Name), a.out)
	if err != nil {
		return err
	}

	if err := a.scans.SubmitFeedback(ctx, scanID, scan.BestMatch.Fragrance.ID, correct); err != nil {
		fmt.Fprintf(a.out, "Failed to submit feedback: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Thanks for the feedback!")
	return nil
}

func printNotes(w io.Writer, f *models.Fragrance) {
	if len(f.TopNotes) > 0 {
		fmt.Fprintf(w, "  top:  %s\n", joinNotes(f.TopNotes))
	}
	if len(f.MidNotes) > 0 {
		fmt.Fprintf(w, "  mid:  %s\n", joinNotes(f.MidNotes))
	}
	if len(f.BaseNotes) > 0 {
		fmt.Fprintf(w, "  base: %s\n", joinNotes(f.BaseNotes))
	}
}
