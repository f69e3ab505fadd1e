package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"ferromart/internal/backend"
	"ferromart/internal/config"
	"ferromart/internal/http/handlers"
	applog "ferromart/internal/log"
	"ferromart/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Durable client state (the localStorage analogue)
	db, err := store.OpenState(cfg.StateDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Backend client and stores, constructed once and passed by reference.
	api := backend.New(cfg.BackendURL)
	cart := store.NewCartStore(db)
	session := store.NewSessionStore(db, api, cfg.AdminEmail)

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard (covers image uploads)
	app.Server().MaxRequestBodySize = 8 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the restored profile and the cart badge count for templates
	app.Use(func(c *fiber.Ctx) error {
		if u := session.Current(); u != nil {
			c.Locals("user", u)
		}
		c.Locals("cartCount", cart.ItemCount())
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(api, cart, session)

	// Storefront
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/product/:id", deps.ProductHandler.Detail)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)

	// Checkout
	app.Post("/checkout", deps.CheckoutHandler.Place)

	// Auth (login throttled)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Profile
	app.Get("/profile", handlers.RequireUser(session), deps.ProfileHandler.Show)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(session))
	admin.Get("/", deps.AdminHandler.Panel)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Post("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Post("/categories", deps.AdminHandler.CreateCategory)
	admin.Post("/categories/:id/delete", deps.AdminHandler.DeleteCategory)
	admin.Post("/uploads", deps.AdminHandler.UploadImage)

	// Health & 404
	app.Get("/healthz", deps.HealthHandler.Check)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
