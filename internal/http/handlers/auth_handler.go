package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	"ferromart/internal/log"
	"ferromart/internal/store"
	"ferromart/internal/validate"
)

type AuthHandler struct {
	API     *backend.Client
	Session *store.SessionStore
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": "", "Registered": c.Query("registered") != ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok || pass == "" {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}

	u := h.Session.Login(c.Context(), email, pass)
	if u == nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email, "client_id": u.ID})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

// Register creates the client on the backend, then sends the visitor to
// the login form. Nothing is persisted locally until the first login.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name, okName := validate.Name(c.FormValue("name"))
	lastname, okLast := validate.Name(c.FormValue("lastname"))
	email, okEmail := validate.Email(c.FormValue("email"))
	pass := c.FormValue("password")
	if !okName || !okLast || !okEmail {
		return c.Status(400).Render("register", fiber.Map{"Err": "Please review your details and try again."})
	}
	if !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Password must be 8+ characters with upper, lower and digit."})
	}

	_, err := h.API.CreateClient(c.Context(), domain.ClientCreate{
		Name:      name,
		Lastname:  lastname,
		Email:     email,
		Password:  pass,
		Telephone: c.FormValue("telephone"),
	})
	if err != nil {
		log.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(400).Render("register", fiber.Map{"Err": "Registration failed. Please verify your details."})
	}

	log.Audit(c, "auth.register", map[string]any{"email": email})
	return c.Redirect("/login?registered=1")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Session.Logout()
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}
