package notify

import (
	"testing"
	"time"
)

func TestNotifyAndExpire(t *testing.T) {
	n := New(30 * time.Millisecond)
	n.Success("saved")

	msg, ok := n.Current()
	if !ok || msg.Text != "saved" || msg.Kind != Success {
		t.Fatalf("unexpected current message: %+v ok=%v", msg, ok)
	}

	time.Sleep(80 * time.Millisecond)
	if _, ok := n.Current(); ok {
		t.Fatal("message should have expired")
	}
}

func TestNotifyOverwriteCancelsPreviousTimer(t *testing.T) {
	n := New(40 * time.Millisecond)
	n.Error("first")
	time.Sleep(25 * time.Millisecond)

	// The replacement restarts the clock; the first message's timer
	// must not clear it.
	n.Success("second")
	time.Sleep(25 * time.Millisecond)

	msg, ok := n.Current()
	if !ok {
		t.Fatal("second message cleared too early")
	}
	if msg.Text != "second" || msg.Kind != Success {
		t.Fatalf("unexpected message: %+v", msg)
	}

	time.Sleep(40 * time.Millisecond)
	if _, ok := n.Current(); ok {
		t.Fatal("second message should have expired by now")
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	n := New(0)
	if n.ttl != DefaultTTL {
		t.Fatalf("expected default TTL, got %v", n.ttl)
	}
}
