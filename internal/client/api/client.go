package api

import (
	"context"

	"github.com/scentid/scentid-cli/internal/client/models"
)

// Client is the API contract the controllers depend on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Signup(ctx context.Context, email, password, name string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)

	CreateScan(ctx context.Context, req CreateScanRequest) (*models.Scan, error)
	GetScan(ctx context.Context, scanID string) (*models.Scan, error)
	ScanHistory(ctx context.Context, limit, offset int) ([]models.ScanHistoryItem, error)
	DeleteScan(ctx context.Context, scanID string) error

	SearchFragrances(ctx context.Context, q SearchQuery) ([]models.FragranceListItem, error)
	GetFragrance(ctx context.Context, fragranceID string) (*models.Fragrance, error)
	SimilarFragrances(ctx context.Context, fragranceID string, limit int) ([]models.FragranceListItem, error)
	PopularFragrances(ctx context.Context, limit int) ([]models.FragranceListItem, error)
	Brands(ctx context.Context) ([]string, error)

	Favorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, fragranceID string) error
	RemoveFavorite(ctx context.Context, fragranceID string) error

	SubmitFeedback(ctx context.Context, req FeedbackRequest) error

	SimulateSensor(ctx context.Context) (*models.SensorReading, error)
}

// AuthResponse is returned by the signup and login endpoints.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// CreateScanRequest is the payload of POST /scans/. Device metadata is
// optional; the vector is required.
type CreateScanRequest struct {
	VOCVector   []float64 `json:"voc_vector"`
	DeviceID    string    `json:"device_id,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	Humidity    *float64  `json:"humidity,omitempty"`
}

// SearchQuery carries the three independently settable search inputs.
// Empty fields are omitted from the request.
type SearchQuery struct {
	Query  string
	Brand  string
	Gender string
}

// IsEmpty reports whether no input is set at all.
func (q SearchQuery) IsEmpty() bool {
	return q.Query == "" && q.Brand == "" && q.Gender == ""
}

// FeedbackRequest is the payload of POST /feedback/.
type FeedbackRequest struct {
	ScanID               string `json:"scan_id"`
	FragranceID          string `json:"fragrance_id"`
	IsCorrect            bool   `json:"is_correct"`
	CorrectFragranceName string `json:"correct_fragrance_name,omitempty"`
	Notes                string `json:"notes,omitempty"`
}
