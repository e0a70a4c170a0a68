package core

import "time"

// Payload is a record sent to the external sink. Each form type has its
// own struct enumerating exactly the fields that go over the wire; no
// field is forwarded implicitly.
type Payload interface {
	Form() string
}

// Form type discriminators.
const (
	FormAccount  = "account"
	FormContact  = "contact"
	FormEstimate = "estimate"
)

// Account event actions.
const (
	ActionLogin  = "login"
	ActionSignup = "signup"
)

// SinkTimestamp is the human-readable timestamp the sink spreadsheet
// expects.
func SinkTimestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// AccountEventPayload reports a login or signup.
type AccountEventPayload struct {
	FormType  string `json:"formType"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserPhone string `json:"userPhone"`
	UserEmail string `json:"userEmail"`
}

// NewAccountEventPayload builds the payload for a session event.
func NewAccountEventPayload(action string, s *Session) AccountEventPayload {
	return AccountEventPayload{
		FormType:  FormAccount,
		Timestamp: SinkTimestamp(),
		Action:    action,
		UserID:    s.UserID,
		UserName:  s.Name,
		UserPhone: s.Phone,
		UserEmail: s.Email,
	}
}

func (p AccountEventPayload) Form() string { return p.FormType }

// ContactPayload carries a contact-form submission.
type ContactPayload struct {
	FormType  string `json:"formType"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

func (p ContactPayload) Form() string { return p.FormType }

// EstimatePayload carries an estimate-request submission.
type EstimatePayload struct {
	FormType       string `json:"formType"`
	Timestamp      string `json:"timestamp"`
	Name           string `json:"name"`
	Company        string `json:"company"`
	Email          string `json:"email"`
	EstimateType   string `json:"estimateType"`
	BudgetRange    string `json:"budgetRange"`
	ProjectDesc    string `json:"projectDesc"`
	Timeline       string `json:"timeline"`
	Reference      string `json:"reference"`
	AdditionalInfo string `json:"additionalInfo"`
}

func (p EstimatePayload) Form() string { return p.FormType }
