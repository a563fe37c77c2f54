package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInvalid  = errors.New("product name and price are required")
)

// ProductUpdate carries a partial update, nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	ImageURL    *string
}

// StockCheck is the per-item verdict of a stock validation.
type StockCheck struct {
	ProductID      uint   `json:"product_id"`
	Valid          bool   `json:"valid"`
	Reason         string `json:"reason,omitempty"`
	AvailableStock int    `json:"available_stock,omitempty"`
}

type StockValidation struct {
	Valid bool         `json:"valid"`
	Items []StockCheck `json:"items"`
}

type IProductService interface {
	ListProducts(ctx context.Context, category, search string) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id uint, upd ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ValidateStock(ctx context.Context, items []model.StockItem) (*StockValidation, error)
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (p *ProductService) ListProducts(ctx context.Context, category, search string) ([]model.Product, error) {
	return p.productRepo.ListProducts(ctx, category, search)
}

func (p *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (p *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if product.Name == "" || product.Price.IsNegative() {
		return ErrProductInvalid
	}
	return p.productRepo.CreateProduct(ctx, product)
}

func (p *ProductService) UpdateProduct(ctx context.Context, id uint, upd ProductUpdate) (*model.Product, error) {
	product, err := p.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.Stock != nil {
		product.Stock = *upd.Stock
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.ImageURL != nil {
		product.ImageURL = *upd.ImageURL
	}

	if err := p.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := p.productRepo.DeleteProduct(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

// ValidateStock checks every requested line against current stock. Verdicts
// are advisory, checkout re-checks inside the deduction transaction.
func (p *ProductService) ValidateStock(ctx context.Context, items []model.StockItem) (*StockValidation, error) {
	result := &StockValidation{Valid: true}

	for _, item := range items {
		product, err := p.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				result.Valid = false
				result.Items = append(result.Items, StockCheck{
					ProductID: item.ProductID,
					Valid:     false,
					Reason:    "Product not found",
				})
				continue
			}
			return nil, err
		}

		if product.Stock >= item.Quantity {
			result.Items = append(result.Items, StockCheck{
				ProductID:      item.ProductID,
				Valid:          true,
				AvailableStock: product.Stock,
			})
		} else {
			result.Valid = false
			result.Items = append(result.Items, StockCheck{
				ProductID:      item.ProductID,
				Valid:          false,
				Reason:         fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", product.Stock, item.Quantity),
				AvailableStock: product.Stock,
			})
		}
	}
	return result, nil
}
