package pagination

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBatchFromTen(t *testing.T) {
	sim := NewSimulatorWithDelay(time.Millisecond)

	batch := sim.NextBatch(context.Background(), 10)
	require.Len(t, batch, BatchSize)

	wantIDs := []string{"11", "12", "13", "14", "15"}
	wantPhones := []string{
		"(999) 000-0000",
		"(999) 111-1111",
		"(999) 222-2222",
		"(999) 333-3333",
		"(999) 444-4444",
	}
	for i, c := range batch {
		assert.Equal(t, wantIDs[i], c.ID)
		assert.Equal(t, "Additional User "+wantIDs[i], c.Name)
		assert.Equal(t, wantPhones[i], c.Phone)
	}

	assert.True(t, sim.HasMore(10+BatchSize))
}

func TestNextBatchNearCeiling(t *testing.T) {
	sim := NewSimulatorWithDelay(time.Millisecond)

	batch := sim.NextBatch(context.Background(), 27)
	require.Len(t, batch, BatchSize)
	assert.Equal(t, "28", batch[0].ID)
	assert.Equal(t, "32", batch[4].ID)

	// 32 records total, past the ceiling
	assert.False(t, sim.HasMore(27+BatchSize))
}

func TestHasMoreCeiling(t *testing.T) {
	sim := NewSimulator()

	assert.True(t, sim.HasMore(0))
	assert.True(t, sim.HasMore(29))
	assert.False(t, sim.HasMore(30))
	assert.False(t, sim.HasMore(31))
}

func TestNextBatchCancelled(t *testing.T) {
	sim := NewSimulatorWithDelay(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	batch := sim.NextBatch(ctx, 0)
	assert.Nil(t, batch)
	assert.Less(t, time.Since(start), time.Second)
}
