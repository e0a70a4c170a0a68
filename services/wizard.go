package services

import (
	"context"
	"strings"
	"sync"

	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/pkg/dispatch"
)

// WizardStep numbers the three signup screens.
type WizardStep int

const (
	StepAccount WizardStep = iota + 1 // identifier and password
	StepProfile                       // name, phone, email
	StepTerms                         // agreements and submit
)

const stepCount = 3

// TermChecks holds the three agreement checkboxes. Service and Privacy
// are required; Marketing is optional and becomes the account's opt-in
// flag.
type TermChecks struct {
	Service   bool
	Privacy   bool
	Marketing bool
}

// All reports whether every checkbox is ticked.
func (t TermChecks) All() bool { return t.Service && t.Privacy && t.Marketing }

// SignUpWizard is the three-step signup state machine. Each step gates
// advancement on its own validation; nothing is persisted until Submit
// succeeds on the final step.
type SignUpWizard struct {
	mu   sync.Mutex
	step WizardStep

	userID   string
	password string
	confirm  string

	name    string
	phone   string
	email   string
	company string

	terms     TermChecks
	selectAll bool

	accounts *AccountService
	notifier core.Notifier
	events   *dispatch.Dispatcher
}

func NewSignUpWizard(accounts *AccountService, notifier core.Notifier, events *dispatch.Dispatcher) *SignUpWizard {
	if events == nil {
		events = dispatch.New()
	}
	return &SignUpWizard{
		step:     StepAccount,
		accounts: accounts,
		notifier: notifier,
		events:   events,
	}
}

// Step returns the current step, 1-based.
func (w *SignUpWizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Progress returns the completion fraction shown on the progress bar.
func (w *SignUpWizard) Progress() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return float64(w.step) / stepCount
}

// SetAccountFields records the first screen's inputs.
func (w *SignUpWizard) SetAccountFields(userID, password, confirm string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.userID = userID
	w.password = password
	w.confirm = confirm
}

// SetProfileFields records the second screen's inputs.
func (w *SignUpWizard) SetProfileFields(name, phone, email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
	w.phone = phone
	w.email = email
}

// SetCompany records the optional company field.
func (w *SignUpWizard) SetCompany(company string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.company = company
}

// SetSelectAll drives all three checkboxes from the select-all box, in
// whichever direction it was toggled.
func (w *SignUpWizard) SetSelectAll(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selectAll = v
	w.terms = TermChecks{Service: v, Privacy: v, Marketing: v}
}

// Individual checkbox setters never write back to the select-all box.

func (w *SignUpWizard) SetServiceTerm(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.terms.Service = v
}

func (w *SignUpWizard) SetPrivacyTerm(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.terms.Privacy = v
}

func (w *SignUpWizard) SetMarketingTerm(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.terms.Marketing = v
}

// Terms returns the current checkbox state.
func (w *SignUpWizard) Terms() TermChecks {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.terms
}

// SelectAll returns the select-all box state.
func (w *SignUpWizard) SelectAll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectAll
}

// Next validates the current step and advances past it. On a validation
// failure the error is shown to the user and the step does not change.
func (w *SignUpWizard) Next() error {
	w.mu.Lock()
	var err error
	switch w.step {
	case StepAccount:
		err = w.validateAccountLocked()
	case StepProfile:
		err = w.validateProfileLocked()
	case StepTerms:
		// Final step; Submit takes it from here.
		w.mu.Unlock()
		return nil
	}
	if err == nil {
		w.step++
	}
	w.mu.Unlock()

	if err != nil {
		w.show(err.Error(), core.KindError)
	}
	return err
}

// Prev steps back one screen. Stored inputs are kept.
func (w *SignUpWizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepAccount {
		w.step--
	}
}

// Submit finishes the wizard from the terms step: required agreements
// are checked, the account is registered, and the wizard resets.
func (w *SignUpWizard) Submit(ctx context.Context) (*core.Session, error) {
	w.mu.Lock()
	if w.step != StepTerms {
		w.mu.Unlock()
		return nil, core.ErrNotOnFinalStep
	}
	if !w.terms.Service || !w.terms.Privacy {
		w.mu.Unlock()
		w.show(core.ErrTermsRequired.Error(), core.KindError)
		return nil, core.ErrTermsRequired
	}
	in := core.SignUpInput{
		UserID:         w.userID,
		Password:       w.password,
		Name:           strings.TrimSpace(w.name),
		Phone:          w.phone,
		Email:          w.email,
		Company:        w.company,
		MarketingOptIn: w.terms.Marketing,
	}
	w.mu.Unlock()

	sess, err := w.accounts.SignUp(ctx, in)
	if err != nil {
		w.show(err.Error(), core.KindError)
		return nil, err
	}

	w.show("Welcome, "+sess.Name+"! Your account is ready.", core.KindSuccess)
	w.Reset()
	w.events.Emit(EventWizardClosed, nil)
	return sess, nil
}

// Cancel abandons the wizard, discarding every input.
func (w *SignUpWizard) Cancel() {
	w.Reset()
	w.events.Emit(EventWizardClosed, nil)
}

// Reset returns the wizard to a blank first step.
func (w *SignUpWizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepAccount
	w.userID, w.password, w.confirm = "", "", ""
	w.name, w.phone, w.email, w.company = "", "", "", ""
	w.terms = TermChecks{}
	w.selectAll = false
}

func (w *SignUpWizard) validateAccountLocked() error {
	if n := len(w.userID); n < 4 || n > 20 {
		return core.ErrUserIDLength
	}
	if len(w.password) < 8 {
		return core.ErrPasswordTooShort
	}
	if w.password != w.confirm {
		return core.ErrPasswordMismatch
	}
	return nil
}

func (w *SignUpWizard) validateProfileLocked() error {
	if len(strings.TrimSpace(w.name)) < 2 {
		return core.ErrNameTooShort
	}
	if !core.IsValidPhone(w.phone) {
		return core.ErrInvalidPhone
	}
	if !core.IsValidEmail(w.email) {
		return core.ErrInvalidEmail
	}
	return nil
}

func (w *SignUpWizard) show(text string, kind core.MessageKind) {
	if w.notifier != nil {
		w.notifier.Show(text, kind)
	}
}
