package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribePublish(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	assert.Equal(t, 1, h.Len())

	h.Publish([]Product{{ID: "p1"}})

	got := <-ch
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestHubDropsStaleSnapshot(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	// The subscriber never drains; only the newest snapshot survives.
	h.Publish([]Product{{ID: "old"}})
	h.Publish([]Product{{ID: "new"}})

	got := <-ch
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %v", extra)
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()

	cancel()
	assert.Equal(t, 0, h.Len())

	_, open := <-ch
	assert.False(t, open)

	// Cancelling twice is safe.
	cancel()
}

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.Publish([]Product{{ID: "p"}})

	assert.Equal(t, "p", (<-ch1)[0].ID)
	assert.Equal(t, "p", (<-ch2)[0].ID)
}

func TestHubPublishAfterCancel(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	cancel()

	// Must not panic on the closed channel.
	h.Publish([]Product{{ID: "p"}})
}
