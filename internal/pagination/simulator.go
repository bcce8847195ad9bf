package pagination

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anniehayho/contactlist/internal/contact"
)

const (
	// BatchSize is the number of synthetic contacts produced per request.
	BatchSize = 5

	// MaxRecords is the hard ceiling for the simulated dataset. Once the
	// collection reaches this size no further batches are available.
	MaxRecords = 30

	// DefaultDelay is how long a batch takes to arrive, standing in for
	// the latency of a real paginated API.
	DefaultDelay = time.Second
)

// Simulator synthesizes additional contacts on demand, standing in for a
// backend that supports pagination.
type Simulator struct {
	delay time.Duration
}

// NewSimulator creates a simulator with the default latency.
func NewSimulator() *Simulator {
	return &Simulator{delay: DefaultDelay}
}

// NewSimulatorWithDelay creates a simulator with a custom latency.
func NewSimulatorWithDelay(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// NextBatch waits the configured delay, then returns the next BatchSize
// synthetic contacts following currentCount. Ids continue the sequence
// (currentCount+1 ...), names follow "Additional User <id>" and phone
// numbers repeat the digit matching the offset within the batch. Returns
// nil without producing anything if ctx is cancelled during the delay.
func (s *Simulator) NextBatch(ctx context.Context, currentCount int) []contact.Contact {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil
	}

	batch := make([]contact.Contact, 0, BatchSize)
	for offset := 0; offset < BatchSize; offset++ {
		id := currentCount + offset + 1
		digit := fmt.Sprintf("%d", offset%10)
		batch = append(batch, contact.Contact{
			ID:    fmt.Sprintf("%d", id),
			Name:  fmt.Sprintf("Additional User %d", id),
			Phone: fmt.Sprintf("(999) %s-%s", strings.Repeat(digit, 3), strings.Repeat(digit, 4)),
		})
	}

	return batch
}

// HasMore reports whether another batch is available for a collection of
// the given size.
func (s *Simulator) HasMore(total int) bool {
	return total < MaxRecords
}
