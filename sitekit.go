// Package sitekit is the client-side core of the agency marketing
// site: account signup and login against a local store, the three-step
// signup wizard, session state mirrored to a UI surface, transient
// messages, and best-effort delivery of form submissions to the
// spreadsheet webhook.
package sitekit

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/adapters/localstore"
	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/pkg/dispatch"
	"github.com/ashoplabs/sitekit/pkg/kvstore"
	"github.com/ashoplabs/sitekit/services"
	"github.com/ashoplabs/sitekit/ui"
)

// interfaces
type (
	StorageAdapter = core.StorageAdapter
	Sink           = core.Sink
	Notifier       = core.Notifier
	SecretHandler  = core.SecretHandler

	Surface = ui.Surface
	Handle  = ui.Handle
)

// structs
type (
	Account     = core.Account
	Session     = core.Session
	SignUpInput = core.SignUpInput
	DemoAccount = core.DemoAccount

	ElementIDs = ui.ElementIDs

	MessageKind   = core.MessageKind
	MessagePolicy = services.MessagePolicy
	WizardStep    = services.WizardStep
	TermChecks    = services.TermChecks
	ContactForm   = services.ContactForm
	EstimateForm  = services.EstimateForm
)

const (
	KindInfo    = core.KindInfo
	KindSuccess = core.KindSuccess
	KindError   = core.KindError

	PolicyReplace = services.PolicyReplace
	PolicyStack   = services.PolicyStack

	StepAccount = services.StepAccount
	StepProfile = services.StepProfile
	StepTerms   = services.StepTerms

	EventLoggedIn     = services.EventLoggedIn
	EventSignedUp     = services.EventSignedUp
	EventLoggedOut    = services.EventLoggedOut
	EventLoginFailed  = services.EventLoginFailed
	EventWizardClosed = services.EventWizardClosed
)

// Constructors & helpers (convenience re-exports)
var (
	NewMemoryKV         = kvstore.NewMemoryKV
	NewFileKV           = kvstore.NewFileKV
	NewLocalStore       = localstore.New
	NewArgon2           = core.NewArgon2
	DefaultDemoAccount  = core.DefaultDemoAccount
	DefaultElementIDs   = ui.DefaultElementIDs
	IsValidEmail        = core.IsValidEmail
	IsValidPhone        = core.IsValidPhone
	ValidateSignUpInput = services.ValidateSignUpInput
)

var (
	ErrDuplicateUserID = core.ErrDuplicateUserID
	ErrDuplicateEmail  = core.ErrDuplicateEmail
)

var (
	ErrUserIDLength     = core.ErrUserIDLength
	ErrPasswordTooShort = core.ErrPasswordTooShort
	ErrPasswordMismatch = core.ErrPasswordMismatch
	ErrNameTooShort     = core.ErrNameTooShort
	ErrInvalidPhone     = core.ErrInvalidPhone
	ErrInvalidEmail     = core.ErrInvalidEmail
	ErrMessageTooShort  = core.ErrMessageTooShort
	ErrCompanyRequired  = core.ErrCompanyRequired
	ErrTermsRequired    = core.ErrTermsRequired
)

var (
	ErrNotOnFinalStep  = core.ErrNotOnFinalStep
	ErrStorageRequired = core.ErrStorageRequired
)

// Config assembles a Kit. Storage is required; everything else has a
// sensible default.
type Config struct {
	// Storage persists the account collection and the session.
	Storage StorageAdapter

	// Sink receives form and account telemetry. Optional; without one,
	// nothing is reported anywhere.
	Sink Sink

	// Secrets encodes stored account secrets. Defaults to plaintext,
	// which is what the site has always stored.
	Secrets SecretHandler

	// Demo overrides the built-in always-works account.
	Demo *DemoAccount

	// Surface receives session UI updates. Optional.
	Surface Surface

	// ElementIDs names the surface elements. Zero value takes the
	// site's defaults.
	ElementIDs ElementIDs

	// MessagePolicy, AutoDismiss, and Fade tune the message center.
	MessagePolicy MessagePolicy
	AutoDismiss   time.Duration
	Fade          time.Duration

	// Events defaults to a fresh dispatcher.
	Events *dispatch.Dispatcher

	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
}

// Kit bundles the wired services.
type Kit struct {
	Accounts *services.AccountService
	Sessions *services.SessionController
	Wizard   *services.SignUpWizard
	Forms    *services.FormService
	Messages *services.MessageCenter
	Events   *dispatch.Dispatcher
}

// New wires the services together: one dispatcher, one message center,
// a session controller bound to the account events, and a wizard ready
// on step one. Call Kit.Start to restore a persisted session.
func New(config Config) (*Kit, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	events := config.Events
	if events == nil {
		events = dispatch.New()
	}

	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	messages := services.NewMessageCenter(services.NotifierConfig{
		Policy:      config.MessagePolicy,
		AutoDismiss: config.AutoDismiss,
		Fade:        config.Fade,
	})

	var reflector *ui.Reflector
	if config.Surface != nil {
		ids := config.ElementIDs
		if ids == (ElementIDs{}) {
			ids = ui.DefaultElementIDs()
		}
		reflector = ui.NewReflector(config.Surface, ids)
	}

	accounts, err := services.NewAccountService(services.AccountConfig{
		Storage: config.Storage,
		Secrets: config.Secrets,
		Sink:    config.Sink,
		Demo:    config.Demo,
		Events:  events,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	sessions, err := services.NewSessionController(services.SessionConfig{
		Storage:   config.Storage,
		Reflector: reflector,
		Notifier:  messages,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}
	sessions.Bind(events)

	return &Kit{
		Accounts: accounts,
		Sessions: sessions,
		Wizard:   services.NewSignUpWizard(accounts, messages, events),
		Forms:    services.NewFormService(services.FormConfig{Sink: config.Sink, Notifier: messages, Logger: log}),
		Messages: messages,
		Events:   events,
	}, nil
}

// Start restores the persisted session and renders the initial state.
func (k *Kit) Start() {
	k.Sessions.Start()
}

// Close stops the message center's timers.
func (k *Kit) Close() {
	k.Messages.Close()
}
