// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"github.com/anniehayho/contactlist/internal/contact"
)

// FakeFetcher is an in-memory implementation of contact.Fetcher for testing.
type FakeFetcher struct {
	mu       sync.Mutex
	contacts []contact.Contact
	calls    int

	// Err is returned instead of contacts when set
	Err error

	// Block, when non-nil, makes FetchContacts wait until the channel is
	// closed or the context is cancelled. Used to hold a fetch in flight.
	Block chan struct{}
}

// NewFakeFetcher creates a fake fetcher serving the given contacts.
func NewFakeFetcher(contacts ...contact.Contact) *FakeFetcher {
	return &FakeFetcher{contacts: contacts}
}

// SetContacts replaces the served dataset.
func (f *FakeFetcher) SetContacts(contacts ...contact.Contact) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = contacts
}

// Calls reports how many times FetchContacts has been invoked.
func (f *FakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FetchContacts implements contact.Fetcher.
func (f *FakeFetcher) FetchContacts(ctx context.Context) ([]contact.Contact, error) {
	f.mu.Lock()
	f.calls++
	block := f.Block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}

	result := make([]contact.Contact, len(f.contacts))
	copy(result, f.contacts)
	return result, nil
}
