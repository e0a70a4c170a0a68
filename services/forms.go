package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/core"
)

// ContactForm is a contact-page submission.
type ContactForm struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Service string
	Message string
}

// Validate checks the required contact fields.
func (f ContactForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 2 {
		return core.ErrNameTooShort
	}
	if !core.IsValidEmail(f.Email) {
		return core.ErrInvalidEmail
	}
	if !core.IsValidPhone(f.Phone) {
		return core.ErrInvalidPhone
	}
	if len(strings.TrimSpace(f.Message)) < 10 {
		return core.ErrMessageTooShort
	}
	return nil
}

// EstimateForm is an estimate-request submission. The service
// checkboxes and budget code are raw form values; the derived wire
// fields come from EstimateType and BudgetRange.
type EstimateForm struct {
	Name           string
	Company        string
	Email          string
	Website        bool
	Branding       bool
	Marketing      bool
	Budget         string
	ProjectDesc    string
	Timeline       string
	Reference      string
	AdditionalInfo string
}

// Validate checks the required estimate fields.
func (f EstimateForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 2 {
		return core.ErrNameTooShort
	}
	if strings.TrimSpace(f.Company) == "" {
		return core.ErrCompanyRequired
	}
	if !core.IsValidEmail(f.Email) {
		return core.ErrInvalidEmail
	}
	return nil
}

// EstimateType joins the selected services into the wire label, or
// "other" when none is selected.
func (f EstimateForm) EstimateType() string {
	var services []string
	if f.Website {
		services = append(services, "website")
	}
	if f.Branding {
		services = append(services, "branding")
	}
	if f.Marketing {
		services = append(services, "marketing")
	}
	if len(services) == 0 {
		return "other"
	}
	return strings.Join(services, ", ")
}

// budgetLabels maps the form's budget codes to the labels the sink
// spreadsheet shows.
var budgetLabels = map[string]string{
	"under500":  "under 5M KRW",
	"500-1000":  "5M - 10M KRW",
	"1000-3000": "10M - 30M KRW",
	"over3000":  "over 30M KRW",
}

// BudgetRange resolves the budget code to its label. An empty code
// reads as "undecided"; an unknown code passes through unchanged.
func (f EstimateForm) BudgetRange() string {
	if f.Budget == "" {
		return "undecided"
	}
	if label, ok := budgetLabels[f.Budget]; ok {
		return label
	}
	return f.Budget
}

// FormService validates and forwards the two public site forms to the
// sink. Delivery is best-effort: once a submission validates, the user
// sees success even if the sink is unreachable.
type FormService struct {
	sink     core.Sink
	notifier core.Notifier
	log      *logrus.Logger
}

// FormConfig wires a FormService. Sink and notifier are optional.
type FormConfig struct {
	Sink     core.Sink
	Notifier core.Notifier
	Logger   *logrus.Logger
}

func NewFormService(cfg FormConfig) *FormService {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FormService{sink: cfg.Sink, notifier: cfg.Notifier, log: log}
}

// SubmitContact validates and forwards a contact submission. Validation
// failures are shown and returned; delivery failures are only logged.
func (s *FormService) SubmitContact(ctx context.Context, f ContactForm) error {
	if err := f.Validate(); err != nil {
		s.show(err.Error(), core.KindError)
		return err
	}

	s.deliver(ctx, core.ContactPayload{
		FormType:  core.FormContact,
		Timestamp: core.SinkTimestamp(),
		Name:      strings.TrimSpace(f.Name),
		Company:   f.Company,
		Email:     f.Email,
		Phone:     f.Phone,
		Service:   f.Service,
		Message:   strings.TrimSpace(f.Message),
	})

	s.show("Your inquiry has been submitted. We will get back to you shortly.", core.KindSuccess)
	return nil
}

// SubmitEstimate validates and forwards an estimate request.
func (s *FormService) SubmitEstimate(ctx context.Context, f EstimateForm) error {
	if err := f.Validate(); err != nil {
		s.show(err.Error(), core.KindError)
		return err
	}

	s.deliver(ctx, core.EstimatePayload{
		FormType:       core.FormEstimate,
		Timestamp:      core.SinkTimestamp(),
		Name:           strings.TrimSpace(f.Name),
		Company:        f.Company,
		Email:          f.Email,
		EstimateType:   f.EstimateType(),
		BudgetRange:    f.BudgetRange(),
		ProjectDesc:    f.ProjectDesc,
		Timeline:       f.Timeline,
		Reference:      f.Reference,
		AdditionalInfo: f.AdditionalInfo,
	})

	s.show("Your estimate request has been received. We will contact you within 24 hours.", core.KindSuccess)
	return nil
}

func (s *FormService) deliver(ctx context.Context, p core.Payload) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Submit(ctx, p); err != nil {
		s.log.WithError(err).WithField("formType", p.Form()).
			Warn("sink delivery failed")
	}
}

func (s *FormService) show(text string, kind core.MessageKind) {
	if s.notifier != nil {
		s.notifier.Show(text, kind)
	}
}
