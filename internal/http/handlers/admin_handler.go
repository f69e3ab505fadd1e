package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	applog "ferromart/internal/log"
	"ferromart/internal/validate"
)

// AdminHandler drives the inventory panel. Every mutation goes straight
// to the backend; nothing admin-related is stored locally.
type AdminHandler struct {
	API *backend.Client
}

// GET /admin
func (h *AdminHandler) Panel(c *fiber.Ctx) error {
	products, err := h.API.ListProducts(c.Context(), backend.DefaultSkip, backend.DefaultLimit)
	if err != nil {
		applog.Error(c, "admin.products.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	categories, err := h.API.ListCategories(c.Context(), backend.DefaultSkip, backend.DefaultLimit)
	if err != nil {
		applog.Error(c, "admin.categories.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	clients, err := h.API.ListClients(c.Context(), backend.DefaultSkip, backend.DefaultLimit)
	if err != nil {
		applog.Error(c, "admin.clients.load", err, nil)
		clients = nil
	}
	return render(c, "admin", fiber.Map{
		"Products":   products,
		"Categories": categories,
		"Clients":    clients,
		"Err":        c.Query("err"),
	})
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	in, ok := productForm(c)
	if !ok {
		return c.Redirect("/admin?err=invalid+product")
	}
	p, err := h.API.CreateProduct(c.Context(), in)
	if err != nil {
		applog.Error(c, "admin.product.create.fail", err, nil)
		return c.Redirect("/admin?err=create+failed")
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product_id": p.ID, "name": p.Name})
	return c.Redirect("/admin")
}

// POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	in, ok := productForm(c)
	if !okID || !ok {
		return c.Redirect("/admin?err=invalid+product")
	}
	if _, err := h.API.UpdateProduct(c.Context(), id, in); err != nil {
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product_id": id})
		return c.Redirect("/admin?err=update+failed")
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.API.DeleteProduct(c.Context(), id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product_id": id})
		return c.Redirect("/admin?err=delete+failed")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin")
}

// POST /admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Redirect("/admin?err=invalid+category")
	}
	cat, err := h.API.CreateCategory(c.Context(), name)
	if err != nil {
		applog.Error(c, "admin.category.create.fail", err, nil)
		return c.Redirect("/admin?err=create+failed")
	}
	applog.Audit(c, "admin.category.create", map[string]any{"category_id": cat.ID, "name": name})
	return c.Redirect("/admin")
}

// POST /admin/categories/:id/delete
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.API.DeleteCategory(c.Context(), id); err != nil {
		// Usually means the category still has products.
		applog.Error(c, "admin.category.delete.fail", err, map[string]any{"category_id": id})
		return c.Redirect("/admin?err=delete+failed")
	}
	applog.Audit(c, "admin.category.delete", map[string]any{"category_id": id})
	return c.Redirect("/admin")
}

// POST /admin/uploads — passes the form file through to the backend and
// returns the hosted image URL for use in a product form.
func (h *AdminHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "missing file"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer f.Close()

	url, err := h.API.UploadImage(c.Context(), fh.Filename, f)
	if err != nil {
		applog.Error(c, "admin.upload.fail", err, map[string]any{"filename": fh.Filename})
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "upload failed"})
	}
	applog.Audit(c, "admin.upload", map[string]any{"filename": fh.Filename, "url": url})
	return c.JSON(fiber.Map{"url": url})
}

func productForm(c *fiber.Ctx) (domain.ProductCreate, bool) {
	name, okName := validate.Name(c.FormValue("name"))
	price, okPrice := validate.Price(c.FormValue("price"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	catID, okCat := validate.ID(c.FormValue("category_id"))
	if !okName || !okPrice || !okStock || !okCat {
		return domain.ProductCreate{}, false
	}
	return domain.ProductCreate{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		CategoryID:  catID,
		ImageURL:    c.FormValue("image_url"),
	}, true
}
