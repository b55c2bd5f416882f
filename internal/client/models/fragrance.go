package models

import "time"

// Fragrance is the full descriptive record returned by the detail endpoint.
//
// IsFavorite is derived per-user by the server; the canonical favorite
// membership lives server-side and the field here is only a snapshot taken
// at fetch time.
type Fragrance struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Description    string    `json:"description,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	TopNotes       []string  `json:"top_notes,omitempty"`
	MidNotes       []string  `json:"mid_notes,omitempty"`
	BaseNotes      []string  `json:"base_notes,omitempty"`
	Concentration  string    `json:"concentration,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	YearReleased   int       `json:"year_released,omitempty"`
	LongevityHours float64   `json:"longevity_hours,omitempty"`
	Projection     string    `json:"projection,omitempty"`
	PriceMin       float64   `json:"price_min,omitempty"`
	PriceMax       float64   `json:"price_max,omitempty"`
	PriceURL       string    `json:"price_url,omitempty"`
	AvgRating      float64   `json:"avg_rating"`
	ReviewCount    int       `json:"review_count"`
	CreatedAt      time.Time `json:"created_at"`
	IsFavorite     bool      `json:"is_favorite"`
}

// FragranceListItem is the compact shape used by search results,
// similar-fragrance lists and favorites.
type FragranceListItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	ImageURL      string   `json:"image_url,omitempty"`
	TopNotes      []string `json:"top_notes,omitempty"`
	Concentration string   `json:"concentration,omitempty"`
	AvgRating     float64  `json:"avg_rating"`
	IsFavorite    bool     `json:"is_favorite"`
}
