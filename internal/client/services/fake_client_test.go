package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/logging"
)

// Polling bounds for require.Eventually in asynchronous tests.
const (
	waitFor = 3 * time.Second
	tick    = 5 * time.Millisecond
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for controller unit tests. Call counts
// and last arguments are recorded under a mutex so tests can assert against
// them after concurrent use.
type fakeClient struct {
	mu sync.Mutex

	SignupResp *api.AuthResponse
	SignupErr  error
	LoginResp  *api.AuthResponse
	LoginErr   error
	MeResp     *models.User
	MeErr      error
	MeCalls    int

	CreateScanResp *models.Scan
	CreateScanErr  error
	GetScanResp    *models.Scan
	GetScanErr     error
	HistoryResp    []models.ScanHistoryItem
	HistoryErr     error
	DeleteScanErr  error

	SearchResp   []models.FragranceListItem
	SearchErr    error
	SearchCalls  int
	LastSearch   api.SearchQuery
	SearchFn     func(q api.SearchQuery) ([]models.FragranceListItem, error)
	FragResp     *models.Fragrance
	FragErr      error
	SimilarResp  []models.FragranceListItem
	SimilarErr   error
	PopularResp  []models.FragranceListItem
	PopularErr   error
	PopularCalls int
	BrandsResp   []string
	BrandsErr    error

	FavoritesResp   []models.Favorite
	FavoritesErr    error
	AddFavoriteErr  error
	AddFavCalls     int
	RemoveFavErr    error
	RemoveFavCalls  int
	LastFavoriteID  string
	FeedbackErr     error
	LastFeedback    api.FeedbackRequest
	SensorResp      *models.SensorReading
	SensorErr       error
	SensorCalls     int
	SensorBlockedCh chan struct{}

	LastLoginEmail    string
	LastLoginPassword string
	LastScanReq       api.CreateScanRequest
}

func (f *fakeClient) Signup(ctx context.Context, email, password, name string) (*api.AuthResponse, error) {
	return f.SignupResp, f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	f.mu.Lock()
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	f.mu.Unlock()
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	f.MeCalls++
	f.mu.Unlock()
	return f.MeResp, f.MeErr
}

func (f *fakeClient) CreateScan(ctx context.Context, req api.CreateScanRequest) (*models.Scan, error) {
	f.mu.Lock()
	f.LastScanReq = req
	f.mu.Unlock()
	return f.CreateScanResp, f.CreateScanErr
}

func (f *fakeClient) GetScan(ctx context.Context, scanID string) (*models.Scan, error) {
	return f.GetScanResp, f.GetScanErr
}

func (f *fakeClient) ScanHistory(ctx context.Context, limit, offset int) ([]models.ScanHistoryItem, error) {
	return f.HistoryResp, f.HistoryErr
}

func (f *fakeClient) DeleteScan(ctx context.Context, scanID string) error {
	return f.DeleteScanErr
}

func (f *fakeClient) SearchFragrances(ctx context.Context, q api.SearchQuery) ([]models.FragranceListItem, error) {
	f.mu.Lock()
	f.SearchCalls++
	f.LastSearch = q
	fn := f.SearchFn
	f.mu.Unlock()
	if fn != nil {
		return fn(q)
	}
	return f.SearchResp, f.SearchErr
}

func (f *fakeClient) GetFragrance(ctx context.Context, fragranceID string) (*models.Fragrance, error) {
	return f.FragResp, f.FragErr
}

func (f *fakeClient) SimilarFragrances(ctx context.Context, fragranceID string, limit int) ([]models.FragranceListItem, error) {
	return f.SimilarResp, f.SimilarErr
}

func (f *fakeClient) PopularFragrances(ctx context.Context, limit int) ([]models.FragranceListItem, error) {
	f.mu.Lock()
	f.PopularCalls++
	f.mu.Unlock()
	return f.PopularResp, f.PopularErr
}

func (f *fakeClient) Brands(ctx context.Context) ([]string, error) {
	return f.BrandsResp, f.BrandsErr
}

func (f *fakeClient) Favorites(ctx context.Context) ([]models.Favorite, error) {
	return f.FavoritesResp, f.FavoritesErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, fragranceID string) error {
	f.mu.Lock()
	f.AddFavCalls++
	f.LastFavoriteID = fragranceID
	f.mu.Unlock()
	return f.AddFavoriteErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, fragranceID string) error {
	f.mu.Lock()
	f.RemoveFavCalls++
	f.LastFavoriteID = fragranceID
	f.mu.Unlock()
	return f.RemoveFavErr
}

func (f *fakeClient) SubmitFeedback(ctx context.Context, req api.FeedbackRequest) error {
	f.mu.Lock()
	f.LastFeedback = req
	f.mu.Unlock()
	return f.FeedbackErr
}

func (f *fakeClient) SimulateSensor(ctx context.Context) (*models.SensorReading, error) {
	f.mu.Lock()
	f.SensorCalls++
	blocked := f.SensorBlockedCh
	f.mu.Unlock()
	if blocked != nil {
		<-blocked
	}
	return f.SensorResp, f.SensorErr
}

func (f *fakeClient) searchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SearchCalls
}

func (f *fakeClient) lastSearch() api.SearchQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LastSearch
}
