package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS
// ============================================

// AccountStorage persists the account collection under a single key.
//
// LoadAccounts never fails: a missing or unparseable collection reads
// as empty. SaveAccounts overwrites the whole collection.
type AccountStorage interface {
	LoadAccounts() []Account
	SaveAccounts(accounts []Account) error
}

// SessionStorage persists the single current-session record.
//
// LoadSession returns nil when no session is stored; a corrupted record
// is cleared and also reads as nil.
type SessionStorage interface {
	LoadSession() *Session
	SaveSession(s *Session) error
	ClearSession() error
}

// StorageAdapter combines the two storage ports.
type StorageAdapter interface {
	AccountStorage
	SessionStorage
}

// ============================================
// EXTERNAL SINK PORT
// ============================================

// Sink delivers form/event telemetry to an opaque external endpoint.
// Callers treat delivery as best-effort: failures are logged, never
// surfaced to the user, never retried.
type Sink interface {
	Submit(ctx context.Context, p Payload) error
}

// ============================================
// NOTIFIER PORT
// ============================================

// MessageKind classifies a user-facing message.
type MessageKind string

const (
	KindInfo    MessageKind = "info"
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// Notifier shows a transient, dismissible message to the user.
type Notifier interface {
	Show(text string, kind MessageKind)
}

// ============================================
// SECRET PORT
// ============================================

// SecretHandler encodes and checks account secrets.
type SecretHandler interface {
	Hash(secret string) (string, error)
	Verify(secret, stored string) (bool, error)
}
