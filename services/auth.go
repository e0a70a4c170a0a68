package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/pkg/crypto"
	"github.com/ashoplabs/sitekit/pkg/dispatch"
)

// AccountService owns the stored account collection and the login,
// signup, and logout flows against it.
type AccountService struct {
	store   core.StorageAdapter
	secrets core.SecretHandler
	sink    core.Sink
	ids     *crypto.IDGenerator
	demo    core.DemoAccount
	events  *dispatch.Dispatcher
	log     *logrus.Logger
}

// AccountConfig wires an AccountService. Storage is required;
// everything else has a default.
type AccountConfig struct {
	Storage core.StorageAdapter
	Secrets core.SecretHandler
	Sink    core.Sink
	Demo    *core.DemoAccount
	Events  *dispatch.Dispatcher
	Logger  *logrus.Logger
}

func NewAccountService(cfg AccountConfig) (*AccountService, error) {
	if cfg.Storage == nil {
		return nil, core.ErrStorageRequired
	}
	secrets := cfg.Secrets
	if secrets == nil {
		secrets = core.Plaintext{}
	}
	demo := core.DefaultDemoAccount()
	if cfg.Demo != nil {
		demo = *cfg.Demo
	}
	events := cfg.Events
	if events == nil {
		events = dispatch.New()
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AccountService{
		store:   cfg.Storage,
		secrets: secrets,
		sink:    cfg.Sink,
		ids:     crypto.NewIDGenerator(),
		demo:    demo,
		events:  events,
		log:     log,
	}, nil
}

// Events exposes the dispatcher the service emits on.
func (s *AccountService) Events() *dispatch.Dispatcher { return s.events }

// ValidateSignUpInput checks all wizard fields at once. The wizard
// applies the same rules step by step; this is the single enforcement
// point for callers that bypass the wizard.
func ValidateSignUpInput(in core.SignUpInput) error {
	if n := len(in.UserID); n < 4 || n > 20 {
		return core.ErrUserIDLength
	}
	if len(in.Password) < 8 {
		return core.ErrPasswordTooShort
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return core.ErrNameTooShort
	}
	if !core.IsValidPhone(in.Phone) {
		return core.ErrInvalidPhone
	}
	if !core.IsValidEmail(in.Email) {
		return core.ErrInvalidEmail
	}
	return nil
}

// Login checks the identifier/secret pair against the stored accounts,
// then against the built-in demo pair. A pair that matches neither is
// not an error: the result is simply (nil, nil), and the caller decides
// how to present the failure.
func (s *AccountService) Login(ctx context.Context, userID, secret string) (*core.Session, error) {
	// Step 1: Check the stored collection first.
	for _, a := range s.store.LoadAccounts() {
		if a.UserID != userID {
			continue
		}
		ok, err := s.secrets.Verify(secret, a.Secret)
		if err != nil {
			return nil, fmt.Errorf("failed to verify secret: %w", err)
		}
		if !ok {
			continue
		}

		sess := core.NewSessionFromAccount(&a)
		if err := s.store.SaveSession(sess); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}

		s.notifySink(core.NewAccountEventPayload(core.ActionLogin, sess))
		s.events.Emit(EventLoggedIn, sess)
		return sess, nil
	}

	// Step 2: The demo pair always works, even on an empty store, and
	// is never reported to the sink.
	if userID == s.demo.UserID && secret == s.demo.Secret {
		sess := s.demo.Session()
		if err := s.store.SaveSession(sess); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
		s.events.Emit(EventLoggedIn, sess)
		return sess, nil
	}

	s.events.Emit(EventLoginFailed, userID)
	return nil, nil
}

// SignUp registers a new account and logs it in.
func (s *AccountService) SignUp(ctx context.Context, in core.SignUpInput) (*core.Session, error) {
	// Step 1: Validate the collected fields.
	if err := ValidateSignUpInput(in); err != nil {
		return nil, err
	}

	// Step 2: Reject duplicates before anything is written.
	accounts := s.store.LoadAccounts()
	for _, a := range accounts {
		if a.UserID == in.UserID {
			return nil, core.ErrDuplicateUserID
		}
	}
	for _, a := range accounts {
		if a.Email == in.Email {
			return nil, core.ErrDuplicateEmail
		}
	}

	// Step 3: Hash the secret and mint the record.
	stored, err := s.secrets.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash secret: %w", err)
	}
	id, err := s.ids.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account id: %w", err)
	}
	account := core.Account{
		ID:             "user_" + id,
		UserID:         in.UserID,
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Secret:         stored,
		Company:        in.Company,
		MarketingOptIn: in.MarketingOptIn,
		CreatedAt:      time.Now(),
	}

	// Step 4: Append and persist the whole collection.
	if err := s.store.SaveAccounts(append(accounts, account)); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}

	// Step 5: Log the new account in.
	sess := core.NewSessionFromAccount(&account)
	if err := s.store.SaveSession(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.notifySink(core.NewAccountEventPayload(core.ActionSignup, sess))
	s.events.Emit(EventSignedUp, sess)
	return sess, nil
}

// Logout clears the persisted session.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.events.Emit(EventLoggedOut, nil)
	return nil
}

// notifySink delivers the payload on its own goroutine. Delivery
// failures are logged and never affect the caller.
func (s *AccountService) notifySink(p core.Payload) {
	if s.sink == nil {
		return
	}
	go func() {
		if err := s.sink.Submit(context.Background(), p); err != nil {
			s.log.WithError(err).WithField("formType", p.Form()).
				Warn("sink delivery failed")
		}
	}()
}
