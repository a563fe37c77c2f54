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
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// StockValidationError carries the per-item verdicts of a failed checkout
// stock check so the handler can hand them back to the client.
type StockValidationError struct {
	Result *StockValidation
}

func (e *StockValidationError) Error() string {
	return "stock validation failed"
}

type IOrderService interface {
	Checkout(ctx context.Context, userID string) (*model.Order, error)
	OrderHistory(ctx context.Context, userID string) ([]model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListAllOrders(ctx context.Context, status string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*model.Order, error)
}

type OrderService struct {
	orderRepo      db.IOrderRepository
	cartRepo       redis_repo.ICartRepository
	productRepo    db.IProductRepository
	productService IProductService
}

func NewOrderService(orderRepo db.IOrderRepository, cartRepo redis_repo.ICartRepository, productRepo db.IProductRepository, productService IProductService) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		productService: productService,
	}
}

// Checkout turns the stored cart into a confirmed order: validate stock,
// snapshot product name/price into order items, create the order and deduct
// stock in one transaction, then clear the cart.
func (o *OrderService) Checkout(ctx context.Context, userID string) (*model.Order, error) {
	cart, err := o.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	stockItems := make([]model.StockItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		stockItems = append(stockItems, model.StockItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	validation, err := o.productService.ValidateStock(ctx, stockItems)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		return nil, &StockValidationError{Result: validation}
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		product, err := o.productRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}

		items = append(items, model.OrderItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    line.Quantity,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &model.Order{
		UserID:      userID,
		TotalAmount: total,
		Status:      string(model.OrderStatusConfirmed),
		Items:       items,
	}

	if err := o.orderRepo.CreateOrderWithStockDeduction(ctx, order); err != nil {
		if errors.Is(err, db.ErrInsufficientStock) {
			// stock moved between validation and commit
			revalidation, verr := o.productService.ValidateStock(ctx, stockItems)
			if verr == nil {
				return nil, &StockValidationError{Result: revalidation}
			}
			return nil, err
		}
		return nil, err
	}

	if err := o.cartRepo.DeleteCart(ctx, userID); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *OrderService) OrderHistory(ctx context.Context, userID string) ([]model.Order, error) {
	return o.orderRepo.ListOrdersByUser(ctx, userID)
}

func (o *OrderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (o *OrderService) ListAllOrders(ctx context.Context, status string) ([]model.Order, error) {
	return o.orderRepo.ListAllOrders(ctx, status)
}

// UpdateOrderStatus validates the status against the whitelist and sets it.
// Re-setting the current status is a no-op, a repeated attempt is safe.
func (o *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	if !model.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := o.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
