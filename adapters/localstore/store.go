// Package localstore persists the account collection and the current
// session as JSON values in a key-value store, the way the site has
// always kept them in browser local storage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/pkg/kvstore"
)

// Storage keys, kept byte-compatible with the records the site already
// wrote.
const (
	DefaultAccountsKey = "ashop_users"
	DefaultSessionKey  = "ashop_user"
)

type Store struct {
	kv          kvstore.KV
	accountsKey string
	sessionKey  string
	log         *logrus.Logger
}

var _ core.StorageAdapter = (*Store)(nil)

func New(kv kvstore.KV, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		kv:          kv,
		accountsKey: DefaultAccountsKey,
		sessionKey:  DefaultSessionKey,
		log:         log,
	}
}

// LoadAccounts returns the stored collection. A missing or corrupted
// value reads as empty; the caller never sees an error.
func (s *Store) LoadAccounts() []core.Account {
	raw, err := s.kv.Get(s.accountsKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			s.log.WithError(err).Warn("account collection unreadable, treating as empty")
		}
		return nil
	}

	var accounts []core.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		s.log.WithError(err).Warn("account collection corrupted, treating as empty")
		return nil
	}
	return accounts
}

// SaveAccounts overwrites the whole collection in a single key write.
func (s *Store) SaveAccounts(accounts []core.Account) error {
	if accounts == nil {
		accounts = []core.Account{}
	}
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := s.kv.Set(s.accountsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

// LoadSession returns the stored session, or nil when none exists. A
// corrupted record is cleared so the next load starts clean.
func (s *Store) LoadSession() *core.Session {
	raw, err := s.kv.Get(s.sessionKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			s.log.WithError(err).Warn("session record unreadable, treating as absent")
		}
		return nil
	}

	var sess core.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.log.WithError(err).Warn("session record corrupted, clearing")
		if err := s.kv.Delete(s.sessionKey); err != nil {
			s.log.WithError(err).Warn("failed to clear corrupted session")
		}
		return nil
	}
	return &sess
}

func (s *Store) SaveSession(sess *core.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(s.sessionKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Store) ClearSession() error {
	if err := s.kv.Delete(s.sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
