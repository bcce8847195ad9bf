package list

import (
	"context"
	"log"
	"sync"

	"github.com/anniehayho/contactlist/internal/contact"
	"github.com/anniehayho/contactlist/internal/pagination"
)

// Controller owns the contact collection and its status flags. It drives
// the initial fetch, pull-to-refresh and incremental pagination, and
// publishes a state snapshot to its observers after every transition.
//
// At most one fetch and one pagination request are in flight at a time,
// enforced by the flag guards below. The controller holds a lifetime
// context so that Close cancels any pending work before it can touch the
// state of a torn-down view.
type Controller struct {
	mu    sync.Mutex
	state State

	// fetching guards the fetch path separately from the displayed
	// Loading flag, which starts true before the first Load.
	fetching bool

	fetcher   contact.Fetcher
	simulator *pagination.Simulator
	logger    *log.Logger

	observers     []Observer
	observersLock sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

// NewController creates a controller in its initial state: loading, empty
// collection, pagination assumed available.
func NewController(fetcher contact.Fetcher, simulator *pagination.Simulator, logger *log.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		state: State{
			Contacts:    []contact.Contact{},
			Loading:     true,
			HasMoreData: true,
		},
		fetcher:   fetcher,
		simulator: simulator,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Subscribe registers an observer for controller events
func (c *Controller) Subscribe(observer Observer) {
	c.observersLock.Lock()
	defer c.observersLock.Unlock()
	c.observers = append(c.observers, observer)
}

// publish delivers an event to all observers synchronously
func (c *Controller) publish(event Event) {
	c.observersLock.RLock()
	defer c.observersLock.RUnlock()
	for _, observer := range c.observers {
		observer.OnEvent(event)
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	snap := c.state
	snap.Contacts = make([]contact.Contact, len(c.state.Contacts))
	copy(snap.Contacts, c.state.Contacts)
	return snap
}

// Load performs the initial fetch. On success the collection holds exactly
// the response and pagination is disabled (the real backend is single-page).
// On any fetch error the message is surfaced once as an alert, then masked
// by the fallback dataset so the list never stays empty; the simulated
// pagination path remains available.
func (c *Controller) Load() {
	c.runFetch()
}

// Refresh re-enters the fetch path, replacing the entire collection.
func (c *Controller) Refresh() {
	c.runFetch()
}

func (c *Controller) runFetch() {
	if c.ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	if c.fetching {
		c.mu.Unlock()
		return
	}
	c.fetching = true
	c.state.Loading = true
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(NewStateEvent(snap))

	contacts, err := c.fetcher.FetchContacts(c.ctx)

	c.mu.Lock()
	c.fetching = false
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}

	var alert string
	if err != nil {
		c.logger.Printf("Contact fetch failed, using fallback dataset: %v", err)
		c.state.Contacts = contact.Fallback()
		alert = err.Error()
	} else {
		c.state.Contacts = contacts
		// The real backend serves a single page, so a successful
		// fetch permanently disables pagination.
		c.state.HasMoreData = false
	}
	c.state.Loading = false
	snap = c.snapshotLocked()
	c.mu.Unlock()

	if alert != "" {
		c.publish(NewAlertEvent(alert))
	}
	c.publish(NewStateEvent(snap))
}

// LoadMore appends the next simulated batch to the collection. It is a
// no-op while pagination is exhausted or another fetch of either kind is
// still in flight.
func (c *Controller) LoadMore() {
	if c.ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	if !c.state.HasMoreData || c.state.LoadingMore || c.fetching {
		c.mu.Unlock()
		return
	}
	c.state.LoadingMore = true
	currentCount := len(c.state.Contacts)
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(NewStateEvent(snap))

	batch := c.simulator.NextBatch(c.ctx, currentCount)

	c.mu.Lock()
	if c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.state.LoadingMore = false
	c.state.Contacts = append(c.state.Contacts, batch...)
	c.state.HasMoreData = c.simulator.HasMore(len(c.state.Contacts))
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.publish(NewStateEvent(snap))
}

// Select emits a single notification with the chosen contact's name. The
// state is not touched. Indexes outside the collection are ignored.
func (c *Controller) Select(index int) {
	c.mu.Lock()
	if index < 0 || index >= len(c.state.Contacts) {
		c.mu.Unlock()
		return
	}
	name := c.state.Contacts[index].Name
	c.mu.Unlock()
	c.publish(NewAlertEvent(name))
}

// Close cancels any in-flight fetch or pagination. The controller stops
// publishing once closed.
func (c *Controller) Close() {
	c.cancel()
}
