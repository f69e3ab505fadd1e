package backend

import (
	"context"
	"net/http"

	"ferromart/internal/domain"
)

func (c *Client) ListClients(ctx context.Context, skip, limit int) ([]domain.Client, error) {
	var out []domain.Client
	err := c.do(ctx, http.MethodGet, "/clients/"+pageQuery(skip, limit), nil, &out)
	return out, err
}

func (c *Client) CreateClient(ctx context.Context, in domain.ClientCreate) (domain.Client, error) {
	var out domain.Client
	err := c.do(ctx, http.MethodPost, "/clients/", in, &out)
	return out, err
}

// Login exchanges credentials for the client record. The backend issues
// no token; the caller keeps only the public profile.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Client, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var out domain.Client
	err := c.do(ctx, http.MethodPost, "/clients/login", in, &out)
	return out, err
}
