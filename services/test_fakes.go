package services

import (
	"context"
	"sync"

	"github.com/ashoplabs/sitekit/core"
)

// FakeStorage is a test-only fake implementing core.StorageAdapter.
// It stores everything in memory and exposes error fields for behavior
// injection.
type FakeStorage struct {
	mu       sync.RWMutex
	accounts []core.Account
	session  *core.Session

	saveAccountsErr error
	saveSessionErr  error
	clearErr        error
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{}
}

func (f *FakeStorage) LoadAccounts() []core.Account {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]core.Account, len(f.accounts))
	copy(out, f.accounts)
	return out
}

func (f *FakeStorage) SaveAccounts(accounts []core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveAccountsErr != nil {
		return f.saveAccountsErr
	}
	f.accounts = make([]core.Account, len(accounts))
	copy(f.accounts, accounts)
	return nil
}

func (f *FakeStorage) LoadSession() *core.Session {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.session
}

func (f *FakeStorage) SaveSession(s *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveSessionErr != nil {
		return f.saveSessionErr
	}
	f.session = s
	return nil
}

func (f *FakeStorage) ClearSession() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}

// Test helper methods
func (f *FakeStorage) SetSaveAccountsError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveAccountsErr = err
}

func (f *FakeStorage) SetSaveSessionError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveSessionErr = err
}

func (f *FakeStorage) Seed(accounts ...core.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts = append(f.accounts, accounts...)
}

func (f *FakeStorage) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.accounts)
}

// FakeSink is a test-only fake implementing core.Sink. Submitted
// payloads are pushed on a channel so tests can await asynchronous
// deliveries. An injected error makes every Submit fail.
type FakeSink struct {
	Payloads chan core.Payload
	err      error
}

func NewFakeSink() *FakeSink {
	return &FakeSink{Payloads: make(chan core.Payload, 8)}
}

func (f *FakeSink) Submit(ctx context.Context, p core.Payload) error {
	f.Payloads <- p
	return f.err
}

func (f *FakeSink) SetError(err error) { f.err = err }

// FakeNotifier is a test-only fake implementing core.Notifier. It
// records every shown message in order.
type FakeNotifier struct {
	mu    sync.Mutex
	Texts []string
	Kinds []core.MessageKind
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (f *FakeNotifier) Show(text string, kind core.MessageKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Texts = append(f.Texts, text)
	f.Kinds = append(f.Kinds, kind)
}

func (f *FakeNotifier) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Texts)
}

func (f *FakeNotifier) Last() (string, core.MessageKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Texts) == 0 {
		return "", ""
	}
	return f.Texts[len(f.Texts)-1], f.Kinds[len(f.Kinds)-1]
}
