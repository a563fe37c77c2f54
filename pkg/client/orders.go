package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type checkoutResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

func (c *Client) Checkout(ctx context.Context) (*Order, error) {
	var resp checkoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders/checkout", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) OrderHistory(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/history", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) AdminOrders(ctx context.Context, status string) ([]Order, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}

	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status string) (*Order, error) {
	var order Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", id), nil, updateStatusRequest{Status: status}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
