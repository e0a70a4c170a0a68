package ui

import (
	"strings"

	"github.com/ashoplabs/sitekit/core"
)

// avatarPalette and the code-point modulo below must not change: they
// keep avatar colors identical to what returning visitors already see.
var avatarPalette = [...]string{"#D4A76A", "#B8934F", "#9D6B53", "#1A1A2E", "#2D3047"}

// View is the derived visible state for a session.
type View struct {
	LoggedIn      bool
	Name          string
	AvatarInitial string
	AvatarColor   string
}

// AvatarInitial returns the first rune of the name, uppercased.
func AvatarInitial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

// AvatarColor picks a palette color from the first rune's code point.
func AvatarColor(name string) string {
	for _, r := range name {
		return avatarPalette[int(r)%len(avatarPalette)]
	}
	return avatarPalette[0]
}

// DeriveView maps a session (or nil) to its visible state. Pure.
func DeriveView(s *core.Session) View {
	if s == nil || !s.LoggedIn {
		return View{}
	}
	return View{
		LoggedIn:      true,
		Name:          s.Name,
		AvatarInitial: AvatarInitial(s.Name),
		AvatarColor:   AvatarColor(s.Name),
	}
}

// Reflector applies derived views to a surface.
type Reflector struct {
	surface Surface
	ids     ElementIDs
}

func NewReflector(surface Surface, ids ElementIDs) *Reflector {
	return &Reflector{surface: surface, ids: ids}
}

// Reflect renders the session state. Absent elements are skipped.
// Reflecting the same state twice yields the same visible result.
func (r *Reflector) Reflect(s *core.Session) {
	view := DeriveView(s)

	if info, ok := r.surface.Lookup(r.ids.UserInfo); ok {
		info.SetVisible(view.LoggedIn)
	}
	if form, ok := r.surface.Lookup(r.ids.LoginForm); ok {
		form.SetVisible(!view.LoggedIn)
	}

	if !view.LoggedIn {
		return
	}

	if name, ok := r.surface.Lookup(r.ids.UserName); ok {
		name.SetText(view.Name)
	}
	if avatar, ok := r.surface.Lookup(r.ids.UserAvatar); ok {
		avatar.SetText(view.AvatarInitial)
		avatar.SetStyle("background", view.AvatarColor)
	}
}
