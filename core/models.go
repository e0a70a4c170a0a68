package core

import "time"

// Account is a durably stored registered user record.
//
// JSON field names match the records the marketing site has always
// persisted, so previously stored data keeps round-tripping.
type Account struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Secret         string    `json:"password"`
	Company        string    `json:"company,omitempty"`
	MarketingOptIn bool      `json:"marketingAgree"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session represents "who is currently logged in": the public fields of
// an Account plus a logged-in flag. At most one exists at a time.
type Session struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	LoggedIn  bool      `json:"loggedIn"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewSessionFromAccount builds the session view of an account.
func NewSessionFromAccount(a *Account) *Session {
	return &Session{
		UserID:    a.UserID,
		Name:      a.Name,
		Phone:     a.Phone,
		Email:     a.Email,
		LoggedIn:  true,
		CreatedAt: time.Now(),
	}
}

// SignUpInput contains the data collected by the signup wizard.
type SignUpInput struct {
	UserID         string `json:"userId"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Company        string `json:"company"`
	MarketingOptIn bool   `json:"marketingAgree"`
}

// DemoAccount is the reserved identifier/secret pair that always signs
// in, independent of the stored account collection. A documented
// bypass, not a bug.
type DemoAccount struct {
	UserID string
	Secret string
	Name   string
	Phone  string
	Email  string
}

// DefaultDemoAccount returns the demo profile the site has always
// shipped with.
func DefaultDemoAccount() DemoAccount {
	return DemoAccount{
		UserID: "test",
		Secret: "12345678",
		Name:   "Test User",
		Phone:  "010-1234-5678",
		Email:  "test@ashop.com",
	}
}

// Session builds the session the demo account signs in with.
func (d DemoAccount) Session() *Session {
	return &Session{
		UserID:    d.UserID,
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		LoggedIn:  true,
		CreatedAt: time.Now(),
	}
}
