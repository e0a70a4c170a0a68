// Package fiber exposes the account, session, and form services over
// HTTP for hosts that front the site with a Fiber app.
package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/ashoplabs/sitekit/services"
)

const defaultBasePath = "/api"

type Adapter struct {
	accounts *services.AccountService
	sessions *services.SessionController
	forms    *services.FormService
	basePath string
	log      *logrus.Logger
}

// Config wires the adapter. Accounts is required; sessions and forms
// enable their route groups when present.
type Config struct {
	Accounts *services.AccountService
	Sessions *services.SessionController
	Forms    *services.FormService
	BasePath string
	Logger   *logrus.Logger
}

func New(cfg Config) *Adapter {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Adapter{
		accounts: cfg.Accounts,
		sessions: cfg.Sessions,
		forms:    cfg.Forms,
		basePath: basePath,
		log:      log,
	}
}

// RegisterRoutes mounts every endpoint under the base path.
func (a *Adapter) RegisterRoutes(app *fiber.App) {
	api := app.Group(a.basePath)

	api.Post("/sign-up", a.signup)
	api.Post("/sign-in", a.signin)
	api.Post("/sign-out", a.signout)
	api.Get("/session", a.session)

	if a.forms != nil {
		api.Post("/forms/contact", a.contact)
		api.Post("/forms/estimate", a.estimate)
	}
}
