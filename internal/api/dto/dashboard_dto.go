package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/shopspring/decimal"
)

type DashboardDTO struct {
	TotalProducts     int              `json:"total_products"`
	TotalOrders       int64            `json:"total_orders"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	LowStockProducts  int              `json:"low_stock_products"`
	OrderStatusCounts map[string]int64 `json:"order_status_counts"`
	RecentOrders      []OrderDTO       `json:"recent_orders"`
	LowStockItems     []ProductDTO     `json:"low_stock_items"`
}

func FromDashboard(d *service.DashboardData) DashboardDTO {
	return DashboardDTO{
		TotalProducts:     d.TotalProducts,
		TotalOrders:       d.TotalOrders,
		TotalRevenue:      d.TotalRevenue,
		LowStockProducts:  d.LowStockProducts,
		OrderStatusCounts: d.OrderStatusCounts,
		RecentOrders:      FromOrders(d.RecentOrders),
		LowStockItems:     FromProducts(d.LowStockItems),
	}
}
