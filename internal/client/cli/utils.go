package cli

import (
	"fmt"
	"strings"
)

// formatConfidence renders a [0,1] confidence score as a percentage.
func formatConfidence(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

func joinNotes(notes []string) string {
	return strings.Join(notes, ", ")
}
