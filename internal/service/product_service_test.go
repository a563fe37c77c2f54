package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	ctx := context.Background()

	err := svc.CreateProduct(ctx, &model.Product{Price: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, ErrProductInvalid)

	err = svc.CreateProduct(ctx, &model.Product{Name: "widget", Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, ErrProductInvalid)

	err = svc.CreateProduct(ctx, &model.Product{Name: "widget", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
}

func TestListProductsFilters(t *testing.T) {
	repo := newFakeProductRepo()
	repo.add("teddy bear", "12.50", 3, "toys")
	repo.add("racing car", "30.00", 7, "toys")
	repo.add("toolbox", "45.00", 2, "tools")
	svc := NewProductService(repo)
	ctx := context.Background()

	toys, err := svc.ListProducts(ctx, "toys", "")
	require.NoError(t, err)
	require.Len(t, toys, 2)

	bears, err := svc.ListProducts(ctx, "", "bear")
	require.NoError(t, err)
	require.Len(t, bears, 1)
	require.Equal(t, "teddy bear", bears[0].Name)
}

func TestUpdateProductPartial(t *testing.T) {
	repo := newFakeProductRepo()
	p := repo.add("widget", "10.00", 5, "tools")
	svc := NewProductService(repo)
	ctx := context.Background()

	stock := 2
	got, err := svc.UpdateProduct(ctx, p.ProductID, ProductUpdate{Stock: &stock})
	require.NoError(t, err)
	require.Equal(t, 2, got.Stock)

	// untouched fields survive
	require.Equal(t, "widget", got.Name)
	require.True(t, got.Price.Equal(decimal.RequireFromString("10.00")))

	_, err = svc.UpdateProduct(ctx, 99, ProductUpdate{Stock: &stock})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	p := repo.add("widget", "10.00", 5, "")
	svc := NewProductService(repo)
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, p.ProductID))
	require.ErrorIs(t, svc.DeleteProduct(ctx, p.ProductID), ErrProductNotFound)

	_, err := svc.GetProduct(ctx, p.ProductID)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestValidateStockVerdicts(t *testing.T) {
	repo := newFakeProductRepo()
	ok := repo.add("plenty", "10.00", 10, "")
	low := repo.add("scarce", "10.00", 1, "")
	svc := NewProductService(repo)

	result, err := svc.ValidateStock(context.Background(), []model.StockItem{
		{ProductID: ok.ProductID, Quantity: 3},
		{ProductID: low.ProductID, Quantity: 2},
		{ProductID: 99, Quantity: 1},
	})
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Len(t, result.Items, 3)

	require.True(t, result.Items[0].Valid)
	require.Equal(t, 10, result.Items[0].AvailableStock)

	require.False(t, result.Items[1].Valid)
	require.Equal(t, "Insufficient stock. Available: 1, Requested: 2", result.Items[1].Reason)

	require.False(t, result.Items[2].Valid)
	require.Equal(t, "Product not found", result.Items[2].Reason)
}

func TestValidateStockAllValid(t *testing.T) {
	repo := newFakeProductRepo()
	p := repo.add("plenty", "10.00", 3, "")
	svc := NewProductService(repo)

	result, err := svc.ValidateStock(context.Background(), []model.StockItem{
		{ProductID: p.ProductID, Quantity: 3},
	})
	require.NoError(t, err)
	require.True(t, result.Valid)
}
