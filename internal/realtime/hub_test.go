package realtime

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishAndreceive(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch := hub.Subscribe()
	id := uuid.New()
	hub.Publish("forum_posts", ActionInsert, id)

	select {
	case event := <-ch:
		assert.Equal(t, "forum_posts", event.Table)
		assert.Equal(t, ActionInsert, event.Action)
		assert.Equal(t, id.String(), event.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	hub.Unsubscribe(ch)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after unsubscribe must not panic.
	hub.Publish("forum_posts", ActionDelete, uuid.New())
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	slow := hub.Subscribe()
	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish("forum_posts", ActionUpdate, uuid.New())
	}
	// Buffer filled, overflow dropped, publisher never blocked.
	assert.Len(t, slow, subscriberBuffer)
}

func TestHubCloseTerminatesSubscribers(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	hub.Close()

	_, ok := <-ch
	assert.False(t, ok)

	// Subscribe after close yields a closed channel.
	ch2 := hub.Subscribe()
	_, ok = <-ch2
	assert.False(t, ok)
}
