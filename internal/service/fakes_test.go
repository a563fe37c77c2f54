package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. They are deliberately single-goroutine; the
// tests here drive each service sequentially.

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.UserID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

type fakeProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*model.Product{}, nextID: 1}
}

func (f *fakeProductRepo) add(name string, price string, stock int, category string) *model.Product {
	p := &model.Product{
		ProductID: f.nextID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		Category:  category,
	}
	f.nextID++
	f.products[p.ProductID] = p
	return p
}

func (f *fakeProductRepo) CreateProduct(_ context.Context, product *model.Product) error {
	product.ProductID = f.nextID
	f.nextID++
	f.products[product.ProductID] = product
	return nil
}

func (f *fakeProductRepo) GetProductByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) ListProducts(_ context.Context, category, search string) ([]model.Product, error) {
	var out []model.Product
	for id := uint(1); id < f.nextID; id++ {
		p, ok := f.products[id]
		if !ok {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, product *model.Product) error {
	if _, ok := f.products[product.ProductID]; !ok {
		return db.ErrNotFound
	}
	copied := *product
	f.products[product.ProductID] = &copied
	return nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeCartRepo struct {
	carts map[string]*model.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*model.Cart{}}
}

func (f *fakeCartRepo) GetCart(_ context.Context, userID string) (*model.Cart, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return &model.Cart{UserID: userID}, nil
	}
	copied := model.Cart{UserID: cart.UserID, Lines: append([]model.CartLine(nil), cart.Lines...)}
	return &copied, nil
}

func (f *fakeCartRepo) SaveCart(_ context.Context, cart *model.Cart) error {
	copied := model.Cart{UserID: cart.UserID, Lines: append([]model.CartLine(nil), cart.Lines...)}
	f.carts[cart.UserID] = &copied
	return nil
}

func (f *fakeCartRepo) DeleteCart(_ context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

// fakeOrderRepo mirrors the transactional semantics of the real repo:
// CreateOrderWithStockDeduction fails atomically when any line exceeds stock.
type fakeOrderRepo struct {
	products *fakeProductRepo
	orders   map[uint]*model.Order
	nextID   uint
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{products: products, orders: map[uint]*model.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) CreateOrderWithStockDeduction(_ context.Context, order *model.Order) error {
	for _, item := range order.Items {
		p, ok := f.products.products[item.ProductID]
		if !ok || p.Stock < item.Quantity {
			return db.ErrInsufficientStock
		}
	}
	for _, item := range order.Items {
		f.products.products[item.ProductID].Stock -= item.Quantity
	}

	order.OrderID = f.nextID
	f.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.OrderID
	}
	copied := *order
	f.orders[order.OrderID] = &copied
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(_ context.Context, id uint) (*model.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) ListOrdersByUser(_ context.Context, userID string) ([]model.Order, error) {
	var out []model.Order
	for id := f.nextID; id >= 1; id-- {
		if order, ok := f.orders[id]; ok && order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAllOrders(_ context.Context, status string) ([]model.Order, error) {
	var out []model.Order
	for id := f.nextID; id >= 1; id-- {
		order, ok := f.orders[id]
		if !ok {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ context.Context, id uint, status string) (*model.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	order.Status = status
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) CountOrders(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, order := range f.orders {
		total = total.Add(order.TotalAmount)
	}
	return total, nil
}

func (f *fakeOrderRepo) CountOrdersByStatus(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, order := range f.orders {
		counts[order.Status]++
	}
	return counts, nil
}

func (f *fakeOrderRepo) RecentOrders(_ context.Context, limit int) ([]model.Order, error) {
	orders, err := f.ListAllOrders(context.Background(), "")
	if err != nil {
		return nil, err
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}
