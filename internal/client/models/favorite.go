package models

import "time"

// Favorite is one row of the user's favorite relation as the server
// returns it.
type Favorite struct {
	ID        string            `json:"id"`
	Fragrance FragranceListItem `json:"fragrance"`
	CreatedAt time.Time         `json:"created_at"`
}
