package client

import (
	"context"
	"net/http"
)

type cartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity,omitempty"`
}

func (c *Client) GetCart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddToCart(ctx context.Context, productID uint, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart/add", nil, cartItemRequest{ProductID: productID, Quantity: &quantity}, nil)
}

// UpdateCartItem sets the line quantity; zero removes the line (server rule).
func (c *Client) UpdateCartItem(ctx context.Context, productID uint, quantity int) error {
	return c.do(ctx, http.MethodPut, "/api/cart/update", nil, cartItemRequest{ProductID: productID, Quantity: &quantity}, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, productID uint) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/remove", nil, cartItemRequest{ProductID: productID}, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/clear", nil, nil, nil)
}
