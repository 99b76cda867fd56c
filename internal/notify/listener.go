package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Hub fans a stream of change events out to any number of subscribers.
// Delivery is at-least-once from the database's point of view and lossy per
// subscriber: a slow subscriber drops events, which is fine because every
// event means the same thing ("refetch the list").
type Hub struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan string]struct{}),
	}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) publish(payload string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- payload:
		default:
		}
	}
}

// Listener holds a dedicated postgres connection on LISTEN and feeds the hub.
type Listener struct {
	dsn     string
	channel string
	hub     *Hub
}

func NewListener(dsn string, channel string, hub *Hub) *Listener {
	return &Listener{
		dsn:     dsn,
		channel: channel,
		hub:     hub,
	}
}

// Run blocks until ctx is cancelled, reconnecting with a flat backoff when
// the connection drops.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("change listener disconnected", "channel", l.channel, "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return err
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.hub.publish(notification.Payload)
	}
}
