package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/ashoplabs/sitekit/core"
	"github.com/ashoplabs/sitekit/services"
)

type signInRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type estimateRequest struct {
	Name           string `json:"name"`
	Company        string `json:"company"`
	Email          string `json:"email"`
	Website        bool   `json:"website"`
	Branding       bool   `json:"branding"`
	Marketing      bool   `json:"marketing"`
	Budget         string `json:"budget"`
	ProjectDesc    string `json:"projectDesc"`
	Timeline       string `json:"timeline"`
	Reference      string `json:"reference"`
	AdditionalInfo string `json:"additionalInfo"`
}

func (a *Adapter) signup(c fiber.Ctx) error {
	var input core.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		a.log.WithError(err).Debug("sign-up body rejected")
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	sess, err := a.accounts.SignUp(c.Context(), input)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(sess)
}

func (a *Adapter) signin(c fiber.Ctx) error {
	var input signInRequest
	if err := c.Bind().Body(&input); err != nil {
		a.log.WithError(err).Debug("sign-in body rejected")
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if input.UserID == "" || input.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "user id and password are required",
		})
	}

	sess, err := a.accounts.Login(c.Context(), input.UserID, input.Password)
	if err != nil {
		return handleServiceError(c, err)
	}
	if sess == nil {
		// No matching pair. The client may offer the signup wizard.
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error":         "no account matches that user id and password",
			"suggestSignup": true,
		})
	}

	return c.Status(http.StatusOK).JSON(sess)
}

func (a *Adapter) signout(c fiber.Ctx) error {
	if err := a.accounts.Logout(c.Context()); err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "signed out successfully",
	})
}

func (a *Adapter) session(c fiber.Ctx) error {
	if a.sessions != nil {
		if sess := a.sessions.Current(); sess != nil {
			return c.Status(http.StatusOK).JSON(sess)
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"loggedIn": false,
	})
}

func (a *Adapter) contact(c fiber.Ctx) error {
	var req contactRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	err := a.forms.SubmitContact(c.Context(), services.ContactForm{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "inquiry submitted",
	})
}

func (a *Adapter) estimate(c fiber.Ctx) error {
	var req estimateRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	err := a.forms.SubmitEstimate(c.Context(), services.EstimateForm{
		Name:           req.Name,
		Company:        req.Company,
		Email:          req.Email,
		Website:        req.Website,
		Branding:       req.Branding,
		Marketing:      req.Marketing,
		Budget:         req.Budget,
		ProjectDesc:    req.ProjectDesc,
		Timeline:       req.Timeline,
		Reference:      req.Reference,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "estimate request submitted",
	})
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(c fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrDuplicateUserID),
		errors.Is(err, core.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.Is(err, core.ErrUserIDLength),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrPasswordMismatch),
		errors.Is(err, core.ErrNameTooShort),
		errors.Is(err, core.ErrInvalidPhone),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrMessageTooShort),
		errors.Is(err, core.ErrCompanyRequired),
		errors.Is(err, core.ErrTermsRequired):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
