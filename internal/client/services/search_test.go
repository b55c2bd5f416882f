package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
)

const testDebounce = 25 * time.Millisecond

func items(names ...string) []models.FragranceListItem {
	out := make([]models.FragranceListItem, 0, len(names))
	for _, n := range names {
		out = append(out, models.FragranceListItem{ID: n, Name: n})
	}
	return out
}

// resultSink records every result set delivered through OnResults.
type resultSink struct {
	mu   sync.Mutex
	sets [][]models.FragranceListItem
}

func (r *resultSink) record(set []models.FragranceListItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets = append(r.sets, set)
}

func (r *resultSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets)
}

func (r *resultSink) last() []models.FragranceListItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sets) == 0 {
		return nil
	}
	return r.sets[len(r.sets)-1]
}

func newSearchFixture(fake *fakeClient) (*SearchService, *resultSink) {
	svc := NewSearchService(fake, testLogger(), testDebounce, 10)
	sink := &resultSink{}
	svc.OnResults(sink.record)
	return svc, sink
}

func TestSearchService_LoadBaselineShowsPopular(t *testing.T) {
	fake := &fakeClient{
		PopularResp: items("Aventus", "Sauvage"),
		BrandsResp:  []string{"Creed", "Dior"},
	}
	svc, sink := newSearchFixture(fake)

	require.NoError(t, svc.LoadBaseline(context.Background()))
	require.Equal(t, items("Aventus", "Sauvage"), svc.Results())
	require.Equal(t, []string{"Creed", "Dior"}, svc.Brands())
	require.Equal(t, 1, sink.count())
}

func TestSearchService_DebounceCoalescesRapidTyping(t *testing.T) {
	fake := &fakeClient{SearchResp: items("Oud Wood")}
	svc, sink := newSearchFixture(fake)
	defer svc.Stop()

	svc.SetQuery("o")
	svc.SetQuery("ou")
	svc.SetQuery("oud")

	require.Eventually(t, func() bool { return sink.count() == 1 }, waitFor, tick)

	// One request for the final input; the intermediate inputs never hit the
	// network.
	require.Equal(t, 1, fake.searchCalls())
	require.Equal(t, "oud", fake.lastSearch().Query)
	require.Equal(t, items("Oud Wood"), svc.Results())
}

func TestSearchService_UnchangedInputDoesNotRearm(t *testing.T) {
	fake := &fakeClient{SearchResp: items("x")}
	svc, sink := newSearchFixture(fake)
	defer svc.Stop()

	svc.SetQuery("oud")
	require.Eventually(t, func() bool { return sink.count() == 1 }, waitFor, tick)

	svc.SetQuery("oud")
	time.Sleep(4 * testDebounce)
	require.Equal(t, 1, fake.searchCalls())
}

func TestSearchService_FilterChangeTriggersSearch(t *testing.T) {
	fake := &fakeClient{SearchResp: items("x")}
	svc, sink := newSearchFixture(fake)
	defer svc.Stop()

	svc.SetBrand("Creed")
	require.Eventually(t, func() bool { return sink.count() == 1 }, waitFor, tick)

	q := fake.lastSearch()
	require.Equal(t, "Creed", q.Brand)
	require.Empty(t, q.Query)
}

func TestSearchService_EmptyInputsRevertToBaselineWithoutNetwork(t *testing.T) {
	fake := &fakeClient{
		PopularResp: items("Aventus"),
		SearchResp:  items("Oud Wood"),
	}
	svc, sink := newSearchFixture(fake)
	defer svc.Stop()
	require.NoError(t, svc.LoadBaseline(context.Background()))

	svc.SetQuery("oud")
	require.Eventually(t, func() bool { return sink.count() == 2 }, waitFor, tick)
	require.Equal(t, items("Oud Wood"), svc.Results())

	svc.SetQuery("")
	require.Eventually(t, func() bool { return sink.count() == 3 }, waitFor, tick)

	require.Equal(t, items("Aventus"), svc.Results())
	require.Equal(t, 1, fake.searchCalls())
}

func TestSearchService_StaleResponseIsDiscarded(t *testing.T) {
	releaseFirst := make(chan struct{})
	firstDispatched := make(chan struct{})

	var once sync.Once
	fake := &fakeClient{}
	fake.SearchFn = func(q api.SearchQuery) ([]models.FragranceListItem, error) {
		if q.Query == "slow" {
			once.Do(func() { close(firstDispatched) })
			<-releaseFirst
			return items("stale"), nil
		}
		return items("fresh"), nil
	}

	svc, sink := newSearchFixture(fake)
	defer svc.Stop()

	svc.SetQuery("slow")
	<-firstDispatched

	// Second dispatch completes while the first is still blocked.
	svc.SetQuery("fast")
	require.Eventually(t, func() bool { return sink.count() == 1 }, waitFor, tick)
	require.Equal(t, items("fresh"), svc.Results())

	// The first response arrives last and must not overwrite the display.
	close(releaseFirst)
	time.Sleep(4 * testDebounce)
	require.Equal(t, items("fresh"), svc.Results())
	require.Equal(t, 1, sink.count())
}

func TestSearchService_StaleResponseCannotOverwriteBaselineRevert(t *testing.T) {
	release := make(chan struct{})
	dispatched := make(chan struct{})

	var once sync.Once
	fake := &fakeClient{PopularResp: items("Aventus")}
	fake.SearchFn = func(q api.SearchQuery) ([]models.FragranceListItem, error) {
		once.Do(func() { close(dispatched) })
		<-release
		return items("stale"), nil
	}

	svc, sink := newSearchFixture(fake)
	defer svc.Stop()
	require.NoError(t, svc.LoadBaseline(context.Background()))

	svc.SetQuery("oud")
	<-dispatched

	// Clearing the input reverts to the baseline and invalidates the
	// in-flight request.
	svc.SetQuery("")
	require.Eventually(t, func() bool { return sink.count() == 2 }, waitFor, tick)

	close(release)
	time.Sleep(4 * testDebounce)
	require.Equal(t, items("Aventus"), svc.Results())
}

func TestSearchService_ErrorKeepsPreviousResults(t *testing.T) {
	fake := &fakeClient{
		PopularResp: items("Aventus"),
		SearchErr:   api.ErrUnavailable,
	}
	svc, _ := newSearchFixture(fake)
	defer svc.Stop()
	require.NoError(t, svc.LoadBaseline(context.Background()))

	errCh := make(chan error, 1)
	svc.OnError(func(err error) { errCh <- err })

	svc.SetQuery("oud")

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, api.ErrUnavailable)
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for search error")
	}
	require.Equal(t, items("Aventus"), svc.Results())
}
