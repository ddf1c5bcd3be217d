package ws

import (
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	c := NewClient(h, nil, 7)
	h.Register(c)
	if !waitFor(t, time.Second, func() bool { return h.ClientCount() == 1 }) {
		t.Fatalf("expected 1 client, got %d", h.ClientCount())
	}

	h.Unregister(c)
	if !waitFor(t, time.Second, func() bool { return h.ClientCount() == 0 }) {
		t.Fatalf("expected 0 clients, got %d", h.ClientCount())
	}
}

func TestHub_DeliversToTargetUser(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	c := NewClient(h, nil, 7)
	h.Register(c)
	if !waitFor(t, time.Second, func() bool { return h.ClientCount() == 1 }) {
		t.Fatalf("client never registered")
	}

	h.SendToUser(7, []byte("hello"))
	select {
	case msg := <-c.send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected payload: %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("payload never delivered")
	}

	h.SendToUser(99, []byte("stray"))
	select {
	case msg := <-c.send:
		t.Fatalf("payload for another user delivered: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientDoesNotStallDelivery(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	slow := NewClient(h, nil, 7)
	h.Register(slow)
	if !waitFor(t, time.Second, func() bool { return h.ClientCount() == 1 }) {
		t.Fatalf("client never registered")
	}

	// Nothing drains slow.send, so its buffer fills and the hub must drop
	// the connection instead of blocking its own loop.
	for i := 0; i < cap(slow.send)+64; i++ {
		h.SendToUser(7, []byte("x"))
	}
	if !waitFor(t, 2*time.Second, func() bool { return h.ClientCount() == 0 }) {
		t.Fatalf("slow client never evicted; hub loop stalled")
	}

	// The hub keeps serving after the eviction.
	next := NewClient(h, nil, 8)
	h.Register(next)
	if !waitFor(t, time.Second, func() bool { return h.ClientCount() == 1 }) {
		t.Fatalf("hub stopped accepting registrations")
	}
	h.SendToUser(8, []byte("still alive"))
	select {
	case <-next.send:
	case <-time.After(time.Second):
		t.Fatalf("delivery after eviction never arrived")
	}
}
