package backend

import (
	"context"
	"fmt"
	"net/http"

	"ferromart/internal/domain"
)

func (c *Client) CreateBill(ctx context.Context, in domain.BillCreate) (domain.Bill, error) {
	var out domain.Bill
	err := c.do(ctx, http.MethodPost, "/bills/", in, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, in domain.OrderCreate) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPost, "/orders/", in, &out)
	return out, err
}

func (c *Client) ListOrdersByClient(ctx context.Context, clientID int) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/client/%d", clientID), nil, &out)
	return out, err
}

func (c *Client) CreateOrderDetail(ctx context.Context, in domain.OrderDetailCreate) (domain.OrderDetail, error) {
	var out domain.OrderDetail
	err := c.do(ctx, http.MethodPost, "/order_details/", in, &out)
	return out, err
}
