package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/pkg/dispatch"
)

func newTestWizard(t *testing.T) (*SignUpWizard, *FakeStorage, *FakeNotifier) {
	t.Helper()
	storage := NewFakeStorage()
	svc, err := NewAccountService(AccountConfig{
		Storage: storage,
		Logger:  quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewAccountService() error = %v", err)
	}
	notifier := NewFakeNotifier()
	return NewSignUpWizard(svc, notifier, svc.Events()), storage, notifier
}

func fillValidAccount(w *SignUpWizard) {
	w.SetAccountFields("alice01", "hunter2hunter2", "hunter2hunter2")
}

func fillValidProfile(w *SignUpWizard) {
	w.SetProfileFields("Alice", "010-1234-5678", "alice@example.com")
}

// Requirement: the wizard starts on step one with a third of the
// progress bar filled.
func TestWizard_InitialState(t *testing.T) {
	w, _, _ := newTestWizard(t)

	if got := w.Step(); got != StepAccount {
		t.Errorf("Step() = %d, want %d", got, StepAccount)
	}
	if got := w.Progress(); got != 1.0/3 {
		t.Errorf("Progress() = %v, want 1/3", got)
	}
}

// Requirement: each step gates advancement on its own validation; a
// failure shows the error and keeps the step.
func TestWizard_Next_Validation(t *testing.T) {
	tests := []struct {
		name    string
		fill    func(w *SignUpWizard)
		wantErr error
	}{
		{
			name:    "user id too short",
			fill:    func(w *SignUpWizard) { w.SetAccountFields("abc", "hunter2hunter2", "hunter2hunter2") },
			wantErr: core.ErrUserIDLength,
		},
		{
			name:    "password of seven",
			fill:    func(w *SignUpWizard) { w.SetAccountFields("alice01", "1234567", "1234567") },
			wantErr: core.ErrPasswordTooShort,
		},
		{
			name:    "password mismatch",
			fill:    func(w *SignUpWizard) { w.SetAccountFields("alice01", "hunter2hunter2", "hunter2hunter3") },
			wantErr: core.ErrPasswordMismatch,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			w, _, notifier := newTestWizard(t)
			test.fill(w)

			err := w.Next()
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Next() error = %v, want %v", err, test.wantErr)
			}
			if got := w.Step(); got != StepAccount {
				t.Errorf("Step() = %d after failed Next, want %d", got, StepAccount)
			}
			if text, kind := notifier.Last(); text != test.wantErr.Error() || kind != core.KindError {
				t.Errorf("shown message = (%q, %q), want the validation error", text, kind)
			}
		})
	}
}

// Requirement: an eight character password is the boundary that
// advances past the first step.
func TestWizard_Next_PasswordBoundary(t *testing.T) {
	w, _, _ := newTestWizard(t)
	w.SetAccountFields("alice01", "12345678", "12345678")

	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := w.Step(); got != StepProfile {
		t.Errorf("Step() = %d, want %d", got, StepProfile)
	}
}

// Requirement: the profile step applies the shared field rules.
func TestWizard_Next_ProfileValidation(t *testing.T) {
	w, _, _ := newTestWizard(t)
	fillValidAccount(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	w.SetProfileFields("Alice", "01012345678", "alice@example.com")
	if err := w.Next(); !errors.Is(err, core.ErrInvalidPhone) {
		t.Fatalf("Next() error = %v, want %v", err, core.ErrInvalidPhone)
	}
	if got := w.Step(); got != StepProfile {
		t.Errorf("Step() = %d after failed Next, want %d", got, StepProfile)
	}

	fillValidProfile(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := w.Step(); got != StepTerms {
		t.Errorf("Step() = %d, want %d", got, StepTerms)
	}
}

// Requirement: stepping back keeps the stored inputs.
func TestWizard_Prev(t *testing.T) {
	w, _, _ := newTestWizard(t)
	fillValidAccount(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	w.Prev()
	if got := w.Step(); got != StepAccount {
		t.Errorf("Step() = %d, want %d", got, StepAccount)
	}
	w.Prev() // already at the first step
	if got := w.Step(); got != StepAccount {
		t.Errorf("Step() = %d after extra Prev, want %d", got, StepAccount)
	}

	// The inputs survived the round trip.
	if err := w.Next(); err != nil {
		t.Errorf("Next() after Prev error = %v, want stored inputs to still pass", err)
	}
}

// Requirement: select-all drives all three checkboxes in both
// directions; individual toggles never write back to select-all.
func TestWizard_SelectAllCascade(t *testing.T) {
	w, _, _ := newTestWizard(t)

	w.SetSelectAll(true)
	if terms := w.Terms(); !terms.All() {
		t.Errorf("Terms() = %+v after select-all, want all true", terms)
	}

	w.SetSelectAll(false)
	if terms := w.Terms(); terms.Service || terms.Privacy || terms.Marketing {
		t.Errorf("Terms() = %+v after deselect-all, want all false", terms)
	}

	w.SetSelectAll(true)
	w.SetMarketingTerm(false)
	if !w.SelectAll() {
		t.Error("SelectAll() flipped by an individual toggle")
	}
	if terms := w.Terms(); !terms.Service || !terms.Privacy || terms.Marketing {
		t.Errorf("Terms() = %+v, want only marketing cleared", terms)
	}
}

// Requirement: submit is only available on the final step.
func TestWizard_Submit_NotOnFinalStep(t *testing.T) {
	w, _, _ := newTestWizard(t)

	if _, err := w.Submit(context.Background()); !errors.Is(err, core.ErrNotOnFinalStep) {
		t.Fatalf("Submit() error = %v, want %v", err, core.ErrNotOnFinalStep)
	}
}

// Requirement: the two required agreements gate submission; marketing
// is optional.
func TestWizard_Submit_RequiredTerms(t *testing.T) {
	w, _, notifier := newTestWizard(t)
	fillValidAccount(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	fillValidProfile(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	w.SetServiceTerm(true) // privacy still unchecked

	if _, err := w.Submit(context.Background()); !errors.Is(err, core.ErrTermsRequired) {
		t.Fatalf("Submit() error = %v, want %v", err, core.ErrTermsRequired)
	}
	if got := w.Step(); got != StepTerms {
		t.Errorf("Step() = %d after rejected submit, want %d", got, StepTerms)
	}
	if text, kind := notifier.Last(); text != core.ErrTermsRequired.Error() || kind != core.KindError {
		t.Errorf("shown message = (%q, %q), want the terms error", text, kind)
	}
}

// Requirement: a completed wizard registers the account with the
// marketing flag, resets to a blank first step, and announces closure.
func TestWizard_Submit(t *testing.T) {
	w, storage, notifier := newTestWizard(t)

	var closed bool
	w.events.Register(EventWizardClosed, func(any) { closed = true })

	fillValidAccount(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	fillValidProfile(w)
	w.SetCompany("Alice Studio")
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	w.SetServiceTerm(true)
	w.SetPrivacyTerm(true)
	w.SetMarketingTerm(true)

	sess, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sess == nil || sess.UserID != "alice01" || !sess.LoggedIn {
		t.Fatalf("Submit() session = %+v, want logged-in alice01", sess)
	}

	if storage.Len() != 1 {
		t.Fatalf("stored %d accounts, want 1", storage.Len())
	}
	account := storage.LoadAccounts()[0]
	if !account.MarketingOptIn {
		t.Error("marketing opt-in not recorded on the account")
	}
	if account.Company != "Alice Studio" {
		t.Errorf("account company = %q, want %q", account.Company, "Alice Studio")
	}

	if got := w.Step(); got != StepAccount {
		t.Errorf("Step() = %d after submit, want a reset wizard", got)
	}
	if terms := w.Terms(); terms.Service || terms.Privacy || terms.Marketing {
		t.Errorf("Terms() = %+v after submit, want cleared", terms)
	}
	if !closed {
		t.Error("wizard-closed event was not emitted")
	}
	if _, kind := notifier.Last(); kind != core.KindSuccess {
		t.Errorf("last message kind = %q, want success", kind)
	}
}

// Requirement: a duplicate identifier surfaces on submit and leaves the
// wizard on the final step for correction.
func TestWizard_Submit_Duplicate(t *testing.T) {
	w, _, notifier := newTestWizard(t)
	if _, err := w.accounts.SignUp(context.Background(), core.SignUpInput{
		UserID: "alice01", Password: "hunter2hunter2", Name: "Alice",
		Phone: "010-1234-5678", Email: "first@example.com",
	}); err != nil {
		t.Fatalf("seed SignUp() error = %v", err)
	}

	fillValidAccount(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	fillValidProfile(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	w.SetSelectAll(true)

	_, err := w.Submit(context.Background())
	if !errors.Is(err, core.ErrDuplicateUserID) {
		t.Fatalf("Submit() error = %v, want %v", err, core.ErrDuplicateUserID)
	}
	if got := w.Step(); got != StepTerms {
		t.Errorf("Step() = %d after rejected submit, want %d", got, StepTerms)
	}
	if _, kind := notifier.Last(); kind != core.KindError {
		t.Errorf("last message kind = %q, want error", kind)
	}
}

// Requirement: cancelling discards everything and announces closure.
func TestWizard_Cancel(t *testing.T) {
	events := dispatch.New()
	storage := NewFakeStorage()
	svc, err := NewAccountService(AccountConfig{
		Storage: storage,
		Events:  events,
		Logger:  quietLogger(),
	})
	if err != nil {
		t.Fatalf("NewAccountService() error = %v", err)
	}
	w := NewSignUpWizard(svc, nil, events)

	var closed bool
	events.Register(EventWizardClosed, func(any) { closed = true })

	fillValidAccount(w)
	if err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	w.Cancel()

	if got := w.Step(); got != StepAccount {
		t.Errorf("Step() = %d after cancel, want %d", got, StepAccount)
	}
	if !closed {
		t.Error("wizard-closed event was not emitted")
	}
	if storage.Len() != 0 {
		t.Errorf("stored %d accounts after cancel, want 0", storage.Len())
	}

	// Discarded inputs do not pass the first gate anymore.
	if err := w.Next(); err == nil {
		t.Error("Next() after cancel passed with blank inputs")
	}
}
