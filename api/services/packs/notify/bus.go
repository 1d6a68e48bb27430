package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tbeaudouin05/packchange/api/metrics"
	"github.com/tbeaudouin05/packchange/api/services/packs/app"
)

// DefaultBufferSize is the per-subscriber channel capacity.
const DefaultBufferSize = 16

type subscriber struct {
	userID string
	ch     chan app.Notification
}

// Bus fans notifications out to the presentation layer. Publish never blocks:
// a subscriber whose buffer is full misses the event.
type Bus struct {
	mu          sync.RWMutex
	buffer      int
	subscribers map[string]subscriber
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Bus{buffer: buffer, subscribers: make(map[string]subscriber)}
}

// Publish implements app.Publisher.
func (b *Bus) Publish(n app.Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, s := range b.subscribers {
		if s.userID != "" && s.userID != n.UserID {
			continue
		}
		select {
		case s.ch <- n:
		default:
			metrics.ObserveDroppedNotification()
			slog.Warn("notification subscriber blocked, dropping event", "subscriber_id", id, "user_id", n.UserID, "notification_id", n.ID)
		}
	}
}

// Subscribe registers a listener for userID's notifications; an empty userID receives all of them.
// The returned func unsubscribes and closes the channel.
func (b *Bus) Subscribe(userID string) (<-chan app.Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan app.Notification, b.buffer)
	b.subscribers[id] = subscriber{userID: userID, ch: ch}

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Bus) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.subscribers[id]; ok {
		close(s.ch)
		delete(b.subscribers, id)
	}
}

// Len returns the number of live subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
