package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ashoplabs/sitekit/core"
)

// MessagePolicy controls what happens to messages already on screen
// when a new one is posted.
type MessagePolicy int

const (
	// PolicyReplace removes any visible message immediately before
	// showing the new one. This is the historical behavior.
	PolicyReplace MessagePolicy = iota
	// PolicyStack keeps existing messages and shows the new one
	// alongside them.
	PolicyStack
)

// Display timings.
const (
	DefaultAutoDismiss = 5 * time.Second
	DefaultFade        = 300 * time.Millisecond
)

// Message is a transient user-facing notice.
type Message struct {
	ID     string
	Text   string
	Kind   core.MessageKind
	Fading bool
}

// MessageCenter shows transient messages with auto-dismissal. Dismissal
// is two-phase: the message first enters a fading state, then is
// removed after the fade interval, so a renderer can animate it out.
type MessageCenter struct {
	mu          sync.Mutex
	policy      MessagePolicy
	autoDismiss time.Duration
	fade        time.Duration
	messages    []*Message
	timers      map[string]*time.Timer
	closed      bool
}

var _ core.Notifier = (*MessageCenter)(nil)

// NotifierConfig wires a MessageCenter. Zero values take the defaults.
type NotifierConfig struct {
	Policy      MessagePolicy
	AutoDismiss time.Duration
	Fade        time.Duration
}

func NewMessageCenter(cfg NotifierConfig) *MessageCenter {
	autoDismiss := cfg.AutoDismiss
	if autoDismiss <= 0 {
		autoDismiss = DefaultAutoDismiss
	}
	fade := cfg.Fade
	if fade <= 0 {
		fade = DefaultFade
	}
	return &MessageCenter{
		policy:      cfg.Policy,
		autoDismiss: autoDismiss,
		fade:        fade,
		timers:      make(map[string]*time.Timer),
	}
}

// Show implements core.Notifier.
func (c *MessageCenter) Show(text string, kind core.MessageKind) {
	c.Post(text, kind)
}

// Post displays a message and schedules its auto-dismissal. Under the
// replace policy any visible message is removed immediately, fade
// skipped.
func (c *MessageCenter) Post(text string, kind core.MessageKind) *Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	if c.policy == PolicyReplace {
		for _, m := range c.messages {
			c.stopTimerLocked(m.ID)
		}
		c.messages = nil
	}

	msg := &Message{
		ID:   uuid.NewString(),
		Text: text,
		Kind: kind,
	}
	c.messages = append(c.messages, msg)
	c.timers[msg.ID] = time.AfterFunc(c.autoDismiss, func() {
		c.Dismiss(msg.ID)
	})
	return msg
}

// Dismiss starts the fade-out for a message. Dismissing an unknown or
// already fading message does nothing, so the auto-dismiss timer and a
// manual dismissal cannot race into a double removal.
func (c *MessageCenter) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	msg := c.findLocked(id)
	if msg == nil || msg.Fading {
		return
	}

	c.stopTimerLocked(id)
	msg.Fading = true
	c.timers[id] = time.AfterFunc(c.fade, func() {
		c.remove(id)
	})
}

// Active returns a snapshot of the visible messages, fading included.
func (c *MessageCenter) Active() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = *m
	}
	return out
}

// Close stops all pending timers and drops every message.
func (c *MessageCenter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.timers {
		c.stopTimerLocked(id)
	}
	c.messages = nil
	c.closed = true
}

func (c *MessageCenter) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked(id)
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}

func (c *MessageCenter) findLocked(id string) *Message {
	for _, m := range c.messages {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (c *MessageCenter) stopTimerLocked(id string) {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
}
