package services

import (
	"context"
	"sync"
	"time"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/logging"
)

// DefaultSearchDebounce is the pause after the last input change before a
// search request is issued.
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchService coordinates the free-text query and the brand/gender
// filters. A change to any input restarts the debounce window; when the
// window elapses with all inputs empty the displayed results revert to the
// popular baseline without a network call. In-flight requests are never
// aborted: each dispatch carries a generation marker and a response whose
// marker is stale is discarded, so the most recent input always wins
// regardless of response arrival order.
type SearchService struct {
	mu  sync.Mutex
	api api.Client
	log logging.Logger

	debounce     time.Duration
	popularLimit int

	timer      *time.Timer
	inputs     api.SearchQuery
	generation uint64

	popular []models.FragranceListItem
	brands  []string
	results []models.FragranceListItem

	onResults func([]models.FragranceListItem)
	onError   func(error)
}

func NewSearchService(apiClient api.Client, log logging.Logger, debounce time.Duration, popularLimit int) *SearchService {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	if popularLimit <= 0 {
		popularLimit = 10
	}
	return &SearchService{
		api:          apiClient,
		log:          log,
		debounce:     debounce,
		popularLimit: popularLimit,
	}
}

// OnResults registers the callback that receives each new result set,
// including the baseline reverts.
func (s *SearchService) OnResults(fn func([]models.FragranceListItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResults = fn
}

// OnError registers the callback for failed searches. The previously
// displayed results stay in place when it fires.
func (s *SearchService) OnError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// LoadBaseline fetches the popular list and the brand filter options once at
// startup and makes the popular list the displayed result set.
func (s *SearchService) LoadBaseline(ctx context.Context) error {
	popular, err := s.api.PopularFragrances(ctx, s.popularLimit)
	if err != nil {
		return err
	}
	brands, err := s.api.Brands(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.popular = popular
	s.brands = brands
	s.results = popular
	cb := s.onResults
	s.mu.Unlock()

	if cb != nil {
		cb(popular)
	}
	return nil
}

// SetQuery updates the free-text query.
func (s *SearchService) SetQuery(query string) {
	s.setInput(func(q *api.SearchQuery) { q.Query = query })
}

// SetBrand updates the brand filter; empty means no filter.
func (s *SearchService) SetBrand(brand string) {
	s.setInput(func(q *api.SearchQuery) { q.Brand = brand })
}

// SetGender updates the gender filter; empty means no filter.
func (s *SearchService) SetGender(gender string) {
	s.setInput(func(q *api.SearchQuery) { q.Gender = gender })
}

func (s *SearchService) setInput(mutate func(*api.SearchQuery)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.inputs
	mutate(&s.inputs)
	if s.inputs == before {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
}

// fire runs when the debounce window elapses with no further input change.
func (s *SearchService) fire() {
	s.mu.Lock()
	inputs := s.inputs

	if inputs.IsEmpty() {
		// Invalidate anything still in flight, then show the baseline.
		s.generation++
		s.results = s.popular
		items := s.results
		cb := s.onResults
		s.mu.Unlock()

		if cb != nil {
			cb(items)
		}
		return
	}

	s.generation++
	gen := s.generation
	s.mu.Unlock()

	// Searches are bounded only by the transport; results are keyed by
	// generation so a superseded response cannot overwrite the display.
	items, err := s.api.SearchFragrances(context.Background(), inputs)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	if err != nil {
		cb := s.onError
		s.mu.Unlock()

		if cb != nil {
			cb(err)
		}
		return
	}
	s.results = items
	cb := s.onResults
	s.mu.Unlock()

	if cb != nil {
		cb(items)
	}
}

// Results returns the currently displayed result set.
func (s *SearchService) Results() []models.FragranceListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Brands returns the brand filter options loaded by LoadBaseline.
func (s *SearchService) Brands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brands
}

// Inputs returns the current query and filters.
func (s *SearchService) Inputs() api.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputs
}

// Stop cancels any pending debounce timer.
func (s *SearchService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
