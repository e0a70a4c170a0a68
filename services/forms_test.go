package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ashoplabs/sitekit/core"
)

var validContact = ContactForm{
	Name:    "Alice",
	Email:   "alice@example.com",
	Phone:   "010-1234-5678",
	Message: "I would like to discuss a project.",
}

var validEstimate = EstimateForm{
	Name:    "Alice",
	Company: "Alice Studio",
	Email:   "alice@example.com",
	Website: true,
	Budget:  "500-1000",
}

// Requirement: contact submissions apply the shared field rules plus
// the ten character message minimum.
func TestContactForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *ContactForm)
		wantErr error
	}{
		{"valid", func(f *ContactForm) {}, nil},
		{"name too short", func(f *ContactForm) { f.Name = " a " }, core.ErrNameTooShort},
		{"bad email", func(f *ContactForm) { f.Email = "nope" }, core.ErrInvalidEmail},
		{"bad phone", func(f *ContactForm) { f.Phone = "12345" }, core.ErrInvalidPhone},
		{"message too short", func(f *ContactForm) { f.Message = "  too short  " }, core.ErrMessageTooShort},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			f := validContact
			test.mutate(&f)

			if err := f.Validate(); !errors.Is(err, test.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

// Requirement: the estimate type is the joined service selection, or
// "other" when nothing is ticked.
func TestEstimateForm_EstimateType(t *testing.T) {
	tests := []struct {
		name string
		form EstimateForm
		want string
	}{
		{"none", EstimateForm{}, "other"},
		{"single", EstimateForm{Website: true}, "website"},
		{"pair", EstimateForm{Website: true, Marketing: true}, "website, marketing"},
		{"all", EstimateForm{Website: true, Branding: true, Marketing: true}, "website, branding, marketing"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := test.form.EstimateType(); got != test.want {
				t.Errorf("EstimateType() = %q, want %q", got, test.want)
			}
		})
	}
}

// Requirement: budget codes resolve through the label table; empty is
// "undecided" and unknown codes pass through.
func TestEstimateForm_BudgetRange(t *testing.T) {
	tests := []struct {
		name   string
		budget string
		want   string
	}{
		{"empty", "", "undecided"},
		{"low band", "under500", "under 5M KRW"},
		{"mid band", "1000-3000", "10M - 30M KRW"},
		{"top band", "over3000", "over 30M KRW"},
		{"unknown code", "custom-band", "custom-band"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			f := EstimateForm{Budget: test.budget}
			if got := f.BudgetRange(); got != test.want {
				t.Errorf("BudgetRange() = %q, want %q", got, test.want)
			}
		})
	}
}

// Requirement: a valid contact submission reaches the sink with the
// derived timestamp and trimmed fields, and the user sees success.
func TestFormService_SubmitContact(t *testing.T) {
	sink := NewFakeSink()
	notifier := NewFakeNotifier()
	svc := NewFormService(FormConfig{Sink: sink, Notifier: notifier, Logger: quietLogger()})

	f := validContact
	f.Name = "  Alice  "
	if err := svc.SubmitContact(context.Background(), f); err != nil {
		t.Fatalf("SubmitContact() error = %v", err)
	}

	p := awaitPayload(t, sink)
	contact, ok := p.(core.ContactPayload)
	if !ok {
		t.Fatalf("sink payload type = %T, want ContactPayload", p)
	}
	if contact.FormType != core.FormContact {
		t.Errorf("formType = %q, want %q", contact.FormType, core.FormContact)
	}
	if contact.Name != "Alice" {
		t.Errorf("name = %q, want trimmed %q", contact.Name, "Alice")
	}
	if contact.Timestamp == "" {
		t.Error("timestamp not set")
	}

	if _, kind := notifier.Last(); kind != core.KindSuccess {
		t.Errorf("last message kind = %q, want success", kind)
	}
}

// Requirement: validation failures are shown and returned, and nothing
// reaches the sink.
func TestFormService_SubmitContact_Invalid(t *testing.T) {
	sink := NewFakeSink()
	notifier := NewFakeNotifier()
	svc := NewFormService(FormConfig{Sink: sink, Notifier: notifier, Logger: quietLogger()})

	f := validContact
	f.Email = "nope"
	if err := svc.SubmitContact(context.Background(), f); !errors.Is(err, core.ErrInvalidEmail) {
		t.Fatalf("SubmitContact() error = %v, want %v", err, core.ErrInvalidEmail)
	}

	assertNoPayload(t, sink)
	if _, kind := notifier.Last(); kind != core.KindError {
		t.Errorf("last message kind = %q, want error", kind)
	}
}

// Requirement: a valid estimate carries the derived type and budget
// labels.
func TestFormService_SubmitEstimate(t *testing.T) {
	sink := NewFakeSink()
	notifier := NewFakeNotifier()
	svc := NewFormService(FormConfig{Sink: sink, Notifier: notifier, Logger: quietLogger()})

	if err := svc.SubmitEstimate(context.Background(), validEstimate); err != nil {
		t.Fatalf("SubmitEstimate() error = %v", err)
	}

	p := awaitPayload(t, sink)
	estimate, ok := p.(core.EstimatePayload)
	if !ok {
		t.Fatalf("sink payload type = %T, want EstimatePayload", p)
	}
	if estimate.EstimateType != "website" {
		t.Errorf("estimateType = %q, want %q", estimate.EstimateType, "website")
	}
	if estimate.BudgetRange != "5M - 10M KRW" {
		t.Errorf("budgetRange = %q, want %q", estimate.BudgetRange, "5M - 10M KRW")
	}

	if _, kind := notifier.Last(); kind != core.KindSuccess {
		t.Errorf("last message kind = %q, want success", kind)
	}
}

// Requirement: the estimate form requires a company name.
func TestFormService_SubmitEstimate_MissingCompany(t *testing.T) {
	sink := NewFakeSink()
	svc := NewFormService(FormConfig{Sink: sink, Logger: quietLogger()})

	f := validEstimate
	f.Company = "  "
	if err := svc.SubmitEstimate(context.Background(), f); !errors.Is(err, core.ErrCompanyRequired) {
		t.Fatalf("SubmitEstimate() error = %v, want %v", err, core.ErrCompanyRequired)
	}
	assertNoPayload(t, sink)
}

// Requirement: once a submission validates, a sink failure is logged
// and the user still sees success.
func TestFormService_Submit_SinkFailure(t *testing.T) {
	sink := NewFakeSink()
	sink.SetError(errors.New("webhook down"))
	notifier := NewFakeNotifier()
	svc := NewFormService(FormConfig{Sink: sink, Notifier: notifier, Logger: quietLogger()})

	if err := svc.SubmitContact(context.Background(), validContact); err != nil {
		t.Fatalf("SubmitContact() error = %v, want nil despite sink failure", err)
	}
	awaitPayload(t, sink)
	if _, kind := notifier.Last(); kind != core.KindSuccess {
		t.Errorf("last message kind = %q, want success", kind)
	}
}
