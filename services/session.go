package services

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/pkg/dispatch"
	"github.com/ashoplabs/sitekit/ui"
)

// SessionController mirrors the persisted session in memory and keeps
// the UI surface in step with it. At most one session exists at a time.
type SessionController struct {
	mu        sync.Mutex
	current   *core.Session
	store     core.SessionStorage
	reflector *ui.Reflector
	notifier  core.Notifier
	log       *logrus.Logger
}

// SessionConfig wires a SessionController. Storage is required; the
// reflector and notifier are optional.
type SessionConfig struct {
	Storage   core.SessionStorage
	Reflector *ui.Reflector
	Notifier  core.Notifier
	Logger    *logrus.Logger
}

func NewSessionController(cfg SessionConfig) (*SessionController, error) {
	if cfg.Storage == nil {
		return nil, core.ErrStorageRequired
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SessionController{
		store:     cfg.Storage,
		reflector: cfg.Reflector,
		notifier:  cfg.Notifier,
		log:       log,
	}, nil
}

// Start restores the persisted session, if any, and renders the initial
// state. A corrupted record has already been cleared by the store and
// restores as logged out.
func (c *SessionController) Start() {
	c.mu.Lock()
	c.current = c.store.LoadSession()
	sess := c.current
	c.mu.Unlock()

	c.reflect(sess)
}

// Current returns the in-memory session, or nil when logged out.
func (c *SessionController) Current() *core.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set replaces the in-memory session and re-renders.
func (c *SessionController) Set(sess *core.Session) {
	c.mu.Lock()
	c.current = sess
	c.mu.Unlock()

	c.reflect(sess)
}

// Bind subscribes the controller to session lifecycle events so logins,
// signups, and logouts update the mirror and the surface.
func (c *SessionController) Bind(events *dispatch.Dispatcher) {
	events.Register(EventLoggedIn, func(data any) {
		sess, ok := data.(*core.Session)
		if !ok {
			c.log.Warn("logged-in event carried unexpected payload")
			return
		}
		c.Set(sess)
		c.show("Welcome back, "+sess.Name+"!", core.KindSuccess)
	})
	events.Register(EventSignedUp, func(data any) {
		sess, ok := data.(*core.Session)
		if !ok {
			c.log.Warn("signed-up event carried unexpected payload")
			return
		}
		c.Set(sess)
	})
	events.Register(EventLoggedOut, func(any) {
		c.Set(nil)
		c.show("You have been logged out.", core.KindSuccess)
	})
}

func (c *SessionController) reflect(sess *core.Session) {
	if c.reflector != nil {
		c.reflector.Reflect(sess)
	}
}

func (c *SessionController) show(text string, kind core.MessageKind) {
	if c.notifier != nil {
		c.notifier.Show(text, kind)
	}
}
