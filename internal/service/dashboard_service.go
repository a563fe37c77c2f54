package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardData struct {
	TotalProducts     int              `json:"total_products"`
	TotalOrders       int64            `json:"total_orders"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	LowStockProducts  int              `json:"low_stock_products"`
	OrderStatusCounts map[string]int64 `json:"order_status_counts"`
	RecentOrders      []model.Order    `json:"recent_orders"`
	LowStockItems     []model.Product  `json:"low_stock_items"`
}

type IDashboardService interface {
	Dashboard(ctx context.Context) (*DashboardData, error)
}

type DashboardService struct {
	orderRepo   db.IOrderRepository
	productRepo db.IProductRepository
}

func NewDashboardService(orderRepo db.IOrderRepository, productRepo db.IProductRepository) *DashboardService {
	return &DashboardService{orderRepo: orderRepo, productRepo: productRepo}
}

// Dashboard gathers the order half and the product half concurrently.
func (d *DashboardService) Dashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{
		TotalRevenue:      decimal.Zero,
		OrderStatusCounts: map[string]int64{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := d.orderRepo.CountOrders(gctx)
		if err != nil {
			return err
		}
		data.TotalOrders = count

		revenue, err := d.orderRepo.TotalRevenue(gctx)
		if err != nil {
			return err
		}
		data.TotalRevenue = revenue

		counts, err := d.orderRepo.CountOrdersByStatus(gctx)
		if err != nil {
			return err
		}
		data.OrderStatusCounts = counts

		recent, err := d.orderRepo.RecentOrders(gctx, constants.DashboardRecentOrders)
		if err != nil {
			return err
		}
		data.RecentOrders = recent
		return nil
	})

	g.Go(func() error {
		products, err := d.productRepo.ListProducts(gctx, "", "")
		if err != nil {
			return err
		}
		data.TotalProducts = len(products)

		var low []model.Product
		for _, p := range products {
			if p.Stock < constants.LowStockThreshold {
				low = append(low, p)
			}
		}
		data.LowStockProducts = len(low)
		if len(low) > constants.DashboardRecentOrders {
			low = low[:constants.DashboardRecentOrders]
		}
		data.LowStockItems = low
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
