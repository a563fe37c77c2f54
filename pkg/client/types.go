package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Cart is the server-computed snapshot; it replaces any prior snapshot
// wholesale on every reload.
type Cart struct {
	UserID      string          `json:"user_id"`
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

type CartItem struct {
	ProductID      uint            `json:"product_id"`
	ProductName    string          `json:"product_name"`
	ProductPrice   decimal.Decimal `json:"product_price"`
	ProductImage   string          `json:"product_image"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	AvailableStock int             `json:"available_stock"`
}

type Order struct {
	ID          uint            `json:"id"`
	UserID      string          `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []OrderItem     `json:"items"`
}

type OrderItem struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type Dashboard struct {
	TotalProducts     int              `json:"total_products"`
	TotalOrders       int64            `json:"total_orders"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	LowStockProducts  int              `json:"low_stock_products"`
	OrderStatusCounts map[string]int64 `json:"order_status_counts"`
	RecentOrders      []Order          `json:"recent_orders"`
	LowStockItems     []Product        `json:"low_stock_items"`
}
