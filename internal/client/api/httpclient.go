package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/client/session"
	"github.com/scentid/scentid-cli/internal/logging"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"
)

// HTTPClient is the HTTP/JSON implementation of Client. It is the single
// path by which the application talks to the backend: every request reads
// the token from the session store, and a 401 on any call clears the store
// and invokes onUnauthorized exactly once for that response.
type HTTPClient struct {
	baseURL        string
	httpClient     *http.Client
	sessions       *session.Store
	onUnauthorized func()
	log            logging.Logger
}

// NewHTTPClient builds a gateway rooted at baseURL. onUnauthorized may be
// nil; when set it is the "session invalidated, navigate to login" hook for
// the surrounding application.
func NewHTTPClient(baseURL string, sessions *session.Store, onUnauthorized func(), log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		sessions:       sessions,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// do performs one request and decodes the JSON response into result.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerRequestID, uuid.NewString())

	token, err := c.sessions.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Terminating effect for the whole session, not just this call.
		if err := c.sessions.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear session after 401", "error", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

func (c *HTTPClient) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) Signup(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	if name != "" {
		body["name"] = name
	}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/signup", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) CreateScan(ctx context.Context, req CreateScanRequest) (*models.Scan, error) {
	var scan models.Scan
	if err := c.post(ctx, "/scans/", req, &scan); err != nil {
		return nil, err
	}
	return &scan, nil
}

func (c *HTTPClient) GetScan(ctx context.Context, scanID string) (*models.Scan, error) {
	var scan models.Scan
	if err := c.get(ctx, "/scans/"+url.PathEscape(scanID), &scan); err != nil {
		return nil, err
	}
	return &scan, nil
}

func (c *HTTPClient) ScanHistory(ctx context.Context, limit, offset int) ([]models.ScanHistoryItem, error) {
	path := fmt.Sprintf("/scans/history?limit=%d&offset=%d", limit, offset)
	var items []models.ScanHistoryItem
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) DeleteScan(ctx context.Context, scanID string) error {
	return c.delete(ctx, "/scans/"+url.PathEscape(scanID))
}

func (c *HTTPClient) SearchFragrances(ctx context.Context, q SearchQuery) ([]models.FragranceListItem, error) {
	params := url.Values{}
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.Brand != "" {
		params.Set("brand", q.Brand)
	}
	if q.Gender != "" {
		params.Set("gender", q.Gender)
	}

	var items []models.FragranceListItem
	if err := c.get(ctx, "/fragrances/?"+params.Encode(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetFragrance(ctx context.Context, fragranceID string) (*models.Fragrance, error) {
	var fragrance models.Fragrance
	if err := c.get(ctx, "/fragrances/"+url.PathEscape(fragranceID), &fragrance); err != nil {
		return nil, err
	}
	return &fragrance, nil
}

func (c *HTTPClient) SimilarFragrances(ctx context.Context, fragranceID string, limit int) ([]models.FragranceListItem, error) {
	path := "/fragrances/" + url.PathEscape(fragranceID) + "/similar?limit=" + strconv.Itoa(limit)
	var items []models.FragranceListItem
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) PopularFragrances(ctx context.Context, limit int) ([]models.FragranceListItem, error) {
	var items []models.FragranceListItem
	if err := c.get(ctx, "/fragrances/popular?limit="+strconv.Itoa(limit), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	if err := c.get(ctx, "/fragrances/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *HTTPClient) Favorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := c.get(ctx, "/favorites/", &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, fragranceID string) error {
	return c.post(ctx, "/favorites/"+url.PathEscape(fragranceID), nil, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, fragranceID string) error {
	return c.delete(ctx, "/favorites/"+url.PathEscape(fragranceID))
}

func (c *HTTPClient) SubmitFeedback(ctx context.Context, req FeedbackRequest) error {
	return c.post(ctx, "/feedback/", req, nil)
}

func (c *HTTPClient) SimulateSensor(ctx context.Context) (*models.SensorReading, error) {
	var reading models.SensorReading
	if err := c.get(ctx, "/sensor/simulate", &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}
