package backend

import (
	"context"
	"fmt"
	"net/http"

	"ferromart/internal/domain"
)

// ListProducts fetches one page of the catalog. Pass DefaultSkip and
// DefaultLimit for the first batch.
func (c *Client) ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, "/products/"+pageQuery(skip, limit), nil, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in domain.ProductCreate) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPost, "/products/", in, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in domain.ProductCreate) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), in, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	var out []domain.Category
	err := c.do(ctx, http.MethodGet, "/categories/"+pageQuery(skip, limit), nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var out domain.Category
	err := c.do(ctx, http.MethodPost, "/categories/", domain.Category{Name: name}, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
