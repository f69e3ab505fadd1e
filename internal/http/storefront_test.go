package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	"ferromart/internal/http/handlers"
	"ferromart/internal/store"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/7", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Product{ID: 7, Name: "Pipe Wrench", Price: 10.00, Stock: 12, CategoryID: 1})
	})
	mux.HandleFunc("GET /products/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Product{{ID: 7, Name: "Pipe Wrench", Price: 10.00, Stock: 12, CategoryID: 1}})
	})
	mux.HandleFunc("GET /categories/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Category{{ID: 1, Name: "Plumbing"}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func memState(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := store.OpenState(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func newApp(t *testing.T, backendURL string) (*fiber.App, *store.SessionStore) {
	t.Helper()
	db := memState(t)
	api := backend.New(backendURL)
	cart := store.NewCartStore(db)
	session := store.NewSessionStore(db, api, "admin@ferreteria.com")
	deps := handlers.NewDeps(api, cart, session)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if u := session.Current(); u != nil {
			c.Locals("user", u)
		}
		c.Locals("cartCount", cart.ItemCount())
		return c.Next()
	})

	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/checkout", deps.CheckoutHandler.Place)
	admin := app.Group("/admin", handlers.RequireAdmin(session))
	admin.Get("/", deps.AdminHandler.Panel)
	return app, session
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestCartAddAndViewFlow(t *testing.T) {
	app, _ := newApp(t, fakeBackend(t).URL)

	respView, err := app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	csrfTok := extractCookie(respView, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}

	form := strings.NewReader("csrf=" + csrfTok + "&productId=7&qty=2")
	reqAdd := httptest.NewRequest("POST", "/cart", form)
	reqAdd.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	reqAdd.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	respAdd, err := app.Test(reqAdd)
	if err != nil {
		t.Fatal(err)
	}
	if respAdd.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after add, got %d", respAdd.StatusCode)
	}

	respCart, err := app.Test(httptest.NewRequest("GET", "/cart", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(respCart.Body)
	if !strings.Contains(string(body), "Pipe Wrench") {
		t.Fatal("cart page should list the added product")
	}
	if !strings.Contains(string(body), "20.00") {
		t.Fatal("cart page should show the line subtotal")
	}
}

func TestCheckoutWithoutLoginRedirects(t *testing.T) {
	app, _ := newApp(t, fakeBackend(t).URL)

	respView, _ := app.Test(httptest.NewRequest("GET", "/cart", nil))
	csrfTok := extractCookie(respView, "csrf_")

	req := httptest.NewRequest("POST", "/checkout", strings.NewReader("csrf="+csrfTok))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestAdminPanelRequiresAdminProfile(t *testing.T) {
	app, _ := newApp(t, fakeBackend(t).URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without an admin profile, got %d", resp.StatusCode)
	}
}
