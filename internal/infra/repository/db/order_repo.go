package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateOrderWithStockDeduction(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAllOrders(ctx context.Context, status string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*model.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	CountOrdersByStatus(ctx context.Context) (map[string]int64, error)
	RecentOrders(ctx context.Context, limit int) ([]model.Order, error)
}

type OrderRepo struct {
	db           *DbDao
	productCache *redis.Client
}

func NewOrderRepo(db *DbDao, productCache *redis.Client) *OrderRepo {
	return &OrderRepo{db: db, productCache: productCache}
}

// CreateOrderWithStockDeduction writes the order and deducts stock for every
// item in one transaction. Deduction is guarded by the current stock level so
// a concurrent checkout cannot drive stock negative.
func (s *OrderRepo) CreateOrderWithStockDeduction(ctx context.Context, order *model.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&model.Product{}).
				Where("product_id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return err
	}

	// deducted rows are stale in the product cache
	if s.productCache != nil {
		for _, item := range order.Items {
			s.productCache.Del(ctx, productCacheKey(item.ProductID))
		}
	}
	return nil
}

func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderRepo) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderRepo) ListAllOrders(ctx context.Context, status string) ([]model.Order, error) {
	q := s.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []model.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	res := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrderByID(ctx, id)
}

func (s *OrderRepo) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (s *OrderRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (s *OrderRepo) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (s *OrderRepo) RecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
