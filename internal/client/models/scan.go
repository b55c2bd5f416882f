package models

import "time"

// Scan is the read-only projection of a server-side scan. BestMatch is nil
// when the matcher produced no candidate; that is a valid displayable
// outcome, not an error.
type Scan struct {
	ID           string      `json:"id"`
	BestMatch    *ScanMatch  `json:"best_match"`
	Alternatives []ScanMatch `json:"alternatives"`
	ScannedAt    time.Time   `json:"scanned_at"`
}

// ScanMatch pairs a candidate fragrance with the matcher's confidence,
// a value in [0,1].
type ScanMatch struct {
	Fragrance       Fragrance `json:"fragrance"`
	ConfidenceScore float64   `json:"confidence_score"`
}

// ScanHistoryItem is the compact shape returned by the history endpoint.
// Fragrance is nil for scans that never matched anything.
type ScanHistoryItem struct {
	ID              string             `json:"id"`
	Fragrance       *FragranceListItem `json:"fragrance"`
	ConfidenceScore float64            `json:"confidence_score"`
	ScannedAt       time.Time          `json:"scanned_at"`
}
