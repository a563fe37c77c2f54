package db

import (
	"context"
	"os"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// Integration suite against a live postgres. Set STOREFRONT_TEST_DB to the
// database name to enable it, e.g.
//
//	STOREFRONT_TEST_DB=storefront_test go test ./internal/infra/repository/db/...
type RepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	userRepo    *UserRepo
	productRepo *ProductRepo
	orderRepo   *OrderRepo
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (suite *RepoTestSuite) SetupSuite() {
	dbName := os.Getenv("STOREFRONT_TEST_DB")
	if dbName == "" {
		suite.T().Skip("STOREFRONT_TEST_DB not set")
	}

	conn, err := GetDbConn(dbName,
		envOr("STOREFRONT_TEST_DB_HOST", "localhost"),
		envOr("STOREFRONT_TEST_DB_PORT", "5432"),
		envOr("STOREFRONT_TEST_DB_USER", "royce"),
		envOr("STOREFRONT_TEST_DB_PASSWORD", "password"))
	require.NoError(suite.T(), err)

	dbDao := NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = conn
	suite.userRepo = NewUserRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao, nil)
	suite.orderRepo = NewOrderRepo(dbDao, nil)
}

func (suite *RepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM users")
}

func (suite *RepoTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *RepoTestSuite) createTestProduct(name string, price string, stock int) *model.Product {
	product := &model.Product{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *RepoTestSuite) TestUserRoundTrip() {
	ctx := context.Background()

	user := &model.User{Username: "alice", PasswordHash: "hash", Role: model.RoleUser}
	require.NoError(suite.T(), suite.userRepo.CreateUser(ctx, user))

	got, err := suite.userRepo.GetUserByUsername(ctx, "alice")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), user.UserID, got.UserID)

	_, err = suite.userRepo.GetUserByUsername(ctx, "nobody")
	require.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *RepoTestSuite) TestProductFilters() {
	ctx := context.Background()
	suite.createTestProduct("Teddy Bear", "12.50", 3)
	bear2 := suite.createTestProduct("Polar Bear", "20.00", 1)
	suite.createTestProduct("Toolbox", "45.00", 2)

	all, err := suite.productRepo.ListProducts(ctx, "", "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 3)

	// search is case-insensitive over name and description
	bears, err := suite.productRepo.ListProducts(ctx, "", "bear")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), bears, 2)

	require.NoError(suite.T(), suite.productRepo.DeleteProduct(ctx, bear2.ProductID))
	require.ErrorIs(suite.T(), suite.productRepo.DeleteProduct(ctx, bear2.ProductID), ErrNotFound)
}

func (suite *RepoTestSuite) TestCreateOrderDeductsStock() {
	ctx := context.Background()
	product := suite.createTestProduct("Widget", "10.00", 5)

	order := &model.Order{
		UserID:      "user1",
		TotalAmount: decimal.RequireFromString("20.00"),
		Status:      string(model.OrderStatusConfirmed),
		Items: []model.OrderItem{
			{ProductID: product.ProductID, ProductName: product.Name, Price: product.Price, Quantity: 2},
		},
	}
	require.NoError(suite.T(), suite.orderRepo.CreateOrderWithStockDeduction(ctx, order))
	require.NotZero(suite.T(), order.OrderID)

	got, err := suite.productRepo.GetProductByID(ctx, product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 3, got.Stock)

	loaded, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), loaded.Items, 1)
	require.Equal(suite.T(), "Widget", loaded.Items[0].ProductName)
}

func (suite *RepoTestSuite) TestCreateOrderRejectsOverdraw() {
	ctx := context.Background()
	product := suite.createTestProduct("Widget", "10.00", 1)

	order := &model.Order{
		UserID:      "user1",
		TotalAmount: decimal.RequireFromString("30.00"),
		Status:      string(model.OrderStatusConfirmed),
		Items: []model.OrderItem{
			{ProductID: product.ProductID, ProductName: product.Name, Price: product.Price, Quantity: 3},
		},
	}
	err := suite.orderRepo.CreateOrderWithStockDeduction(ctx, order)
	require.ErrorIs(suite.T(), err, ErrInsufficientStock)

	// the transaction rolled back, stock untouched and no order row
	got, err := suite.productRepo.GetProductByID(ctx, product.ProductID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, got.Stock)

	orders, err := suite.orderRepo.ListAllOrders(ctx, "")
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), orders)
}

func (suite *RepoTestSuite) TestOrderStatusAndStats() {
	ctx := context.Background()
	product := suite.createTestProduct("Widget", "10.00", 10)

	for i := 0; i < 2; i++ {
		order := &model.Order{
			UserID:      "user1",
			TotalAmount: decimal.RequireFromString("10.00"),
			Status:      string(model.OrderStatusConfirmed),
			Items: []model.OrderItem{
				{ProductID: product.ProductID, ProductName: product.Name, Price: product.Price, Quantity: 1},
			},
		}
		require.NoError(suite.T(), suite.orderRepo.CreateOrderWithStockDeduction(ctx, order))
		if i == 0 {
			_, err := suite.orderRepo.UpdateOrderStatus(ctx, order.OrderID, string(model.OrderStatusShipped))
			require.NoError(suite.T(), err)
		}
	}

	count, err := suite.orderRepo.CountOrders(ctx)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(2), count)

	revenue, err := suite.orderRepo.TotalRevenue(ctx)
	require.NoError(suite.T(), err)
	require.True(suite.T(), revenue.Equal(decimal.RequireFromString("20.00")))

	counts, err := suite.orderRepo.CountOrdersByStatus(ctx)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), counts[string(model.OrderStatusShipped)])
	require.Equal(suite.T(), int64(1), counts[string(model.OrderStatusConfirmed)])

	_, err = suite.orderRepo.UpdateOrderStatus(ctx, 9999, string(model.OrderStatusShipped))
	require.ErrorIs(suite.T(), err, ErrNotFound)
}

func TestRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RepoTestSuite))
}
