package notify

import "testing"

func TestHubFanOut(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.publish("INSERT")

	for _, ch := range []chan string{a, b} {
		select {
		case got := <-ch:
			if got != "INSERT" {
				t.Errorf("received %q, want %q", got, "INSERT")
			}
		default:
			t.Error("subscriber did not receive the event")
		}
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()

	// overflow the buffer; publish must not block
	for i := 0; i < cap(ch)+5; i++ {
		hub.publish("UPDATE")
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("buffered %d events, want %d", got, cap(ch))
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()
	hub.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Error("channel still open after unsubscribe")
	}

	// publishing after unsubscribe must not panic on the closed channel
	hub.publish("INSERT")
}
