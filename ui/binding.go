// Package ui reflects the current session into a rendering surface.
// The surface itself (DOM, terminal, test fake) is a collaborator; this
// package only decides what each element should show.
package ui

// Handle is a single bound UI element.
type Handle interface {
	SetVisible(visible bool)
	SetText(text string)
	SetStyle(name, value string)
}

// Surface resolves element IDs to handles. Lookup makes absence
// explicit: callers branch on ok instead of relying on silent no-ops
// against missing elements.
type Surface interface {
	Lookup(id string) (Handle, bool)
}

// ElementIDs names the elements the reflector drives. They are a
// contract with the markup, not with this package's logic.
type ElementIDs struct {
	UserInfo   string // logged-in region
	LoginForm  string // logged-out region
	UserName   string // display-name text node
	UserAvatar string // avatar node (text + background style)
}

// DefaultElementIDs matches the site markup.
func DefaultElementIDs() ElementIDs {
	return ElementIDs{
		UserInfo:   "user-info",
		LoginForm:  "login-form-container",
		UserName:   "user-name",
		UserAvatar: "user-avatar",
	}
}
