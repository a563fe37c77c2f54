package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

// CartSnapshot is the fully materialized view of a user's cart, rebuilt from
// live product data on every read. It replaces any prior snapshot wholesale.
type CartSnapshot struct {
	UserID      string          `json:"user_id"`
	Items       []CartSnapshotItem `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

type CartSnapshotItem struct {
	ProductID      uint            `json:"product_id"`
	ProductName    string          `json:"product_name"`
	ProductPrice   decimal.Decimal `json:"product_price"`
	ProductImage   string          `json:"product_image"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	AvailableStock int             `json:"available_stock"`
}

type ICartService interface {
	GetCart(ctx context.Context, userID string) (*CartSnapshot, error)
	AddItem(ctx context.Context, userID string, productID uint, quantity int) error
	UpdateItem(ctx context.Context, userID string, productID uint, quantity int) error
	RemoveItem(ctx context.Context, userID string, productID uint) error
	ClearCart(ctx context.Context, userID string) error
}

type CartService struct {
	cartRepo    redis_repo.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo redis_repo.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart joins stored lines with live product data. Lines whose product no
// longer exists are silently dropped from the snapshot.
func (c *CartService) GetCart(ctx context.Context, userID string) (*CartSnapshot, error) {
	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &CartSnapshot{
		UserID:      userID,
		TotalAmount: decimal.Zero,
	}

	for _, line := range cart.Lines {
		product, err := c.productRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				continue
			}
			return nil, err
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		snapshot.Items = append(snapshot.Items, CartSnapshotItem{
			ProductID:      product.ProductID,
			ProductName:    product.Name,
			ProductPrice:   product.Price,
			ProductImage:   product.ImageURL,
			Quantity:       line.Quantity,
			Subtotal:       subtotal,
			AvailableStock: product.Stock,
		})
		snapshot.TotalAmount = snapshot.TotalAmount.Add(subtotal)
		snapshot.ItemCount += line.Quantity
	}
	return snapshot, nil
}

// AddItem merges the quantity into an existing line, or appends a new one.
func (c *CartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	if _, err := c.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	if line := cart.Line(productID); line != nil {
		line.Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, model.CartLine{ProductID: productID, Quantity: quantity})
	}
	return c.cartRepo.SaveCart(ctx, cart)
}

// UpdateItem sets the line quantity. A quantity of zero or less removes the
// line.
func (c *CartService) UpdateItem(ctx context.Context, userID string, productID uint, quantity int) error {
	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	line := cart.Line(productID)
	if line == nil {
		return ErrCartItemNotFound
	}

	if quantity <= 0 {
		cart.RemoveLine(productID)
	} else {
		line.Quantity = quantity
	}
	return c.cartRepo.SaveCart(ctx, cart)
}

func (c *CartService) RemoveItem(ctx context.Context, userID string, productID uint) error {
	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	if cart.Line(productID) == nil {
		return ErrCartItemNotFound
	}

	cart.RemoveLine(productID)
	return c.cartRepo.SaveCart(ctx, cart)
}

func (c *CartService) ClearCart(ctx context.Context, userID string) error {
	return c.cartRepo.DeleteCart(ctx, userID)
}
