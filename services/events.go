package services

// Event names emitted on the dispatcher. Handlers receive the
// documented payload type.
const (
	// EventLoggedIn carries *core.Session.
	EventLoggedIn = "auth:logged-in"
	// EventSignedUp carries *core.Session.
	EventSignedUp = "auth:signed-up"
	// EventLoggedOut carries nil.
	EventLoggedOut = "auth:logged-out"
	// EventLoginFailed carries the attempted user id as a string.
	EventLoginFailed = "auth:login-failed"
	// EventWizardClosed carries nil. Emitted after a completed or
	// cancelled signup so the host can tear the wizard surface down.
	EventWizardClosed = "signup:closed"
)
