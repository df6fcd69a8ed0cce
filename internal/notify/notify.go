// Package notify holds the single-slot transient message shown to the
// user after each operation. Only one message is visible at a time and
// it expires on its own.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

type Message struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// Notifier stores the current message and clears it after the TTL.
// A new Notify replaces the pending message and stops the previous
// clear timer, so an old timer can never wipe a newer message.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Message
	timer   *time.Timer
}

const DefaultTTL = 3 * time.Second

func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Notify(text string, kind Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	msg := &Message{Text: text, Kind: kind}
	n.current = msg
	n.timer = time.AfterFunc(n.ttl, func() {
		n.clear(msg)
	})
}

func (n *Notifier) Success(text string) { n.Notify(text, Success) }
func (n *Notifier) Error(text string)   { n.Notify(text, Error) }

// Current returns the pending message, if any.
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Message{}, false
	}
	return *n.current, true
}

// clear removes msg only if it is still the current one. Stop on a
// fired timer is a no-op, so the identity check keeps a stale timer
// from clearing a replacement message.
func (n *Notifier) clear(msg *Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == msg {
		n.current = nil
		n.timer = nil
	}
}
