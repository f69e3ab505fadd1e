package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	applog "ferromart/internal/log"
	"ferromart/internal/validate"
)

type CatalogHandler struct {
	API *backend.Client
}

// Home renders the product grid from the first catalog page, optionally
// narrowed to a category or a name search. The storefront never pages
// past the first batch.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	products, err := h.API.ListProducts(c.Context(), backend.DefaultSkip, backend.DefaultLimit)
	if err != nil {
		applog.Error(c, "catalog.products.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the catalog. Please try again."})
	}
	categories, err := h.API.ListCategories(c.Context(), backend.DefaultSkip, backend.DefaultLimit)
	if err != nil {
		applog.Error(c, "catalog.categories.load", err, nil)
		categories = nil
	}

	if catID, ok := validate.ID(c.Query("category")); ok {
		products = filterByCategory(products, catID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		products = filterByName(products, q)
	}

	return render(c, "home", fiber.Map{
		"Products":   products,
		"Categories": categories,
		"Query":      c.Query("q"),
	})
}

func filterByCategory(products []domain.Product, catID int) []domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if p.CategoryID == catID {
			out = append(out, p)
		}
	}
	return out
}

func filterByName(products []domain.Product, q string) []domain.Product {
	q = strings.ToLower(q)
	out := products[:0:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
