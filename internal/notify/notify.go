package notify

import "sync"

// BlockID is the fixed opaque identifier carried by every completion
// message. Host integrations match on it; it carries no other meaning.
const BlockID = "c7c6f0b2-9a14-4d14-8a51-3f2e40f6b9d1"

// TypeBlockCompletion is the wire type of the completion message.
const TypeBlockCompletion = "BLOCK_COMPLETION"

// Completion is the broadcast emitted when the board transitions from idle
// to drawing. It is fire-and-forget: no acknowledgment, no retry.
type Completion struct {
	Type      string `json:"type"`
	BlockID   string `json:"blockId"`
	Completed bool   `json:"completed"`
}

// NewCompletion builds the fixed-shape completion message.
func NewCompletion() Completion {
	return Completion{
		Type:      TypeBlockCompletion,
		BlockID:   BlockID,
		Completed: true,
	}
}

// Forwarder relays a completion to an embedding host. The bridge hub
// implements this; a nil forwarder means the widget is not embedded.
type Forwarder interface {
	Forward(Completion)
}

// Notifier fans completions out to in-process subscribers and, when set,
// to the parent forwarder.
type Notifier struct {
	mu        sync.RWMutex
	subs      []func(Completion)
	forwarder Forwarder
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a callback invoked on every completion. Callbacks run
// synchronously on the emitting goroutine, same as the board's other hooks.
func (n *Notifier) Subscribe(fn func(Completion)) {
	if n == nil || fn == nil {
		return
	}
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

// SetForwarder attaches the parent-side relay.
func (n *Notifier) SetForwarder(f Forwarder) {
	if n == nil {
		return
	}
	n.mu.Lock()
	n.forwarder = f
	n.mu.Unlock()
}

// Completed broadcasts one completion message to every subscriber and to
// the forwarder. Safe with zero subscribers and no forwarder.
func (n *Notifier) Completed() {
	if n == nil {
		return
	}
	msg := NewCompletion()
	n.mu.RLock()
	subs := make([]func(Completion), len(n.subs))
	copy(subs, n.subs)
	fwd := n.forwarder
	n.mu.RUnlock()

	for _, fn := range subs {
		fn(msg)
	}
	if fwd != nil {
		fwd.Forward(msg)
	}
}
