package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock       int             `gorm:"not null;type:int" json:"stock"`
	Category    string          `gorm:"type:varchar(50)" json:"category"`
	ImageURL    string          `gorm:"type:varchar(200)" json:"image_url"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID" json:"-"`
	BaseModel
}

// StockItem is the unit of stock validation and deduction at checkout.
type StockItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}
