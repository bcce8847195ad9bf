package list_test

import (
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anniehayho/contactlist/internal/contact"
	"github.com/anniehayho/contactlist/internal/list"
	"github.com/anniehayho/contactlist/internal/pagination"
	"github.com/anniehayho/contactlist/internal/testutil"
)

// recorder collects controller events for assertions.
type recorder struct {
	mu     sync.Mutex
	states []list.State
	alerts []string
}

func (r *recorder) OnEvent(event list.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch e := event.(type) {
	case *list.StateEvent:
		r.states = append(r.states, e.State)
	case *list.AlertEvent:
		r.alerts = append(r.alerts, e.Message)
	}
}

func (r *recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

func (r *recorder) States() []list.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]list.State(nil), r.states...)
}

func newTestController(fetcher contact.Fetcher) (*list.Controller, *recorder) {
	sim := pagination.NewSimulatorWithDelay(time.Millisecond)
	ctrl := list.NewController(fetcher, sim, log.New(io.Discard, "", 0))
	rec := &recorder{}
	ctrl.Subscribe(rec)
	return ctrl, rec
}

func TestLoadSuccess(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
		contact.Contact{ID: "2", Name: "Bob Example", Phone: "(555) 333-4444"},
		contact.Contact{ID: "3", Name: "Carol Example", Phone: "(555) 555-6666"},
	)
	ctrl, rec := newTestController(fetcher)

	ctrl.Load()

	snap := ctrl.Snapshot()
	require.Len(t, snap.Contacts, 3)
	assert.Equal(t, "1", snap.Contacts[0].ID)
	assert.False(t, snap.Loading)
	assert.False(t, snap.LoadingMore)
	// A successful real fetch is single-page: pagination is done.
	assert.False(t, snap.HasMoreData)

	states := rec.States()
	require.NotEmpty(t, states)
	assert.True(t, states[0].Loading)
	assert.False(t, states[len(states)-1].Loading)
	assert.Empty(t, rec.Alerts())
}

func TestLoadFailureFallsBackToMockData(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.Err = &contact.TransportError{Message: "connection refused"}
	ctrl, rec := newTestController(fetcher)

	ctrl.Load()

	snap := ctrl.Snapshot()
	require.Len(t, snap.Contacts, 10)
	assert.Equal(t, "1", snap.Contacts[0].ID)
	assert.Equal(t, "10", snap.Contacts[9].ID)
	assert.False(t, snap.Loading)
	// The fallback path keeps simulated pagination available.
	assert.True(t, snap.HasMoreData)

	alerts := rec.Alerts()
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0], "connection refused")
}

func TestLoadHTTPErrorAlsoFallsBack(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.Err = &contact.HTTPError{Status: 503}
	ctrl, rec := newTestController(fetcher)

	ctrl.Load()

	snap := ctrl.Snapshot()
	require.Len(t, snap.Contacts, 10)
	require.Len(t, rec.Alerts(), 1)
}

func TestLoadMoreAppendsBatch(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.Err = &contact.TransportError{Message: "offline"}
	ctrl, _ := newTestController(fetcher)
	ctrl.Load()

	ctrl.LoadMore()

	snap := ctrl.Snapshot()
	require.Len(t, snap.Contacts, 15)
	assert.Equal(t, "11", snap.Contacts[10].ID)
	assert.Equal(t, "Additional User 11", snap.Contacts[10].Name)
	assert.Equal(t, "(999) 000-0000", snap.Contacts[10].Phone)
	assert.Equal(t, "(999) 444-4444", snap.Contacts[14].Phone)
	assert.True(t, snap.HasMoreData)
	assert.False(t, snap.LoadingMore)
}

func TestLoadMoreStopsAtCeiling(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.Err = &contact.TransportError{Message: "offline"}
	ctrl, _ := newTestController(fetcher)
	ctrl.Load()

	for ctrl.Snapshot().HasMoreData {
		ctrl.LoadMore()
	}

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Contacts, 30)
	assert.False(t, snap.HasMoreData)

	// Exhausted: further calls change nothing.
	ctrl.LoadMore()
	assert.Len(t, ctrl.Snapshot().Contacts, 30)
}

func TestLoadMoreNoOpAfterRealFetch(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
	)
	ctrl, _ := newTestController(fetcher)
	ctrl.Load()

	ctrl.LoadMore()

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Contacts, 1)
	assert.False(t, snap.HasMoreData)
}

func TestLoadMoreSingleFlight(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.Err = &contact.TransportError{Message: "offline"}
	sim := pagination.NewSimulatorWithDelay(200 * time.Millisecond)
	ctrl := list.NewController(fetcher, sim, log.New(io.Discard, "", 0))
	ctrl.Load()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.LoadMore()
	}()

	// Second trigger while the first batch is still pending is dropped.
	time.Sleep(50 * time.Millisecond)
	ctrl.LoadMore()
	wg.Wait()

	assert.Len(t, ctrl.Snapshot().Contacts, 15)
}

func TestRefreshReplacesCollection(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
		contact.Contact{ID: "2", Name: "Bob Example", Phone: "(555) 333-4444"},
	)
	ctrl, rec := newTestController(fetcher)
	ctrl.Load()

	fetcher.SetContacts(
		contact.Contact{ID: "7", Name: "Dan Example", Phone: "(555) 777-8888"},
	)
	ctrl.Refresh()

	snap := ctrl.Snapshot()
	require.Len(t, snap.Contacts, 1)
	assert.Equal(t, "7", snap.Contacts[0].ID)
	assert.Equal(t, 2, fetcher.Calls())

	// Refresh went back through the loading state before settling.
	states := rec.States()
	var sawReload bool
	for i := 1; i < len(states); i++ {
		if states[i].Loading && len(states[i].Contacts) > 0 {
			sawReload = true
		}
	}
	assert.True(t, sawReload)
	assert.False(t, states[len(states)-1].Loading)
}

func TestSelectNotifiesOnce(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
		contact.Contact{ID: "2", Name: "Bob Example", Phone: "(555) 333-4444"},
	)
	ctrl, rec := newTestController(fetcher)
	ctrl.Load()

	before := ctrl.Snapshot()
	ctrl.Select(1)

	alerts := rec.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Bob Example", alerts[0])
	assert.Equal(t, before, ctrl.Snapshot())
}

func TestSelectOutOfRangeIgnored(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
	)
	ctrl, rec := newTestController(fetcher)
	ctrl.Load()

	ctrl.Select(-1)
	ctrl.Select(5)

	assert.Empty(t, rec.Alerts())
}

func TestCloseCancelsInFlightFetch(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
	)
	fetcher.Block = make(chan struct{})
	ctrl, rec := newTestController(fetcher)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Load()
	}()

	time.Sleep(50 * time.Millisecond)
	ctrl.Close()
	wg.Wait()

	// The cancelled fetch neither delivered contacts nor fell back.
	snap := ctrl.Snapshot()
	assert.Empty(t, snap.Contacts)
	assert.Empty(t, rec.Alerts())
}

func TestOperationsAfterCloseAreNoOps(t *testing.T) {
	fetcher := testutil.NewFakeFetcher(
		contact.Contact{ID: "1", Name: "Alice Example", Phone: "(555) 111-2222"},
	)
	ctrl, rec := newTestController(fetcher)
	ctrl.Close()

	ctrl.Load()
	ctrl.LoadMore()

	assert.Empty(t, ctrl.Snapshot().Contacts)
	assert.Empty(t, rec.States())
	assert.Equal(t, 0, fetcher.Calls())
}
