package cartcache

import (
	"context"
	"sync"
	"testing"

	"github.com/RoyceAzure/lab/storefront/pkg/client"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeCartAPI behaves like the server: it keeps the cart lines, knows the
// product prices, and rebuilds the snapshot with totals on every GetCart.
type fakeCartAPI struct {
	mu       sync.Mutex
	products map[uint]client.Product
	lines    map[uint]int

	getCalls    int
	addCalls    int
	updateCalls int
	removeCalls int
	clearCalls  int
}

func newFakeCartAPI(products ...client.Product) *fakeCartAPI {
	f := &fakeCartAPI{
		products: make(map[uint]client.Product),
		lines:    make(map[uint]int),
	}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCartAPI) GetCart(ctx context.Context) (*client.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	return f.buildSnapshot(), nil
}

func (f *fakeCartAPI) buildSnapshot() *client.Cart {
	cart := &client.Cart{UserID: "user1", TotalAmount: decimal.Zero}
	for id, qty := range f.lines {
		p := f.products[id]
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		cart.Items = append(cart.Items, client.CartItem{
			ProductID:      id,
			ProductName:    p.Name,
			ProductPrice:   p.Price,
			Quantity:       qty,
			Subtotal:       subtotal,
			AvailableStock: p.Stock,
		})
		cart.TotalAmount = cart.TotalAmount.Add(subtotal)
		cart.ItemCount += qty
	}
	return cart
}

func (f *fakeCartAPI) AddToCart(ctx context.Context, productID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	f.lines[productID] += quantity
	return nil
}

func (f *fakeCartAPI) UpdateCartItem(ctx context.Context, productID uint, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if quantity <= 0 {
		delete(f.lines, productID)
	} else {
		f.lines[productID] = quantity
	}
	return nil
}

func (f *fakeCartAPI) RemoveFromCart(ctx context.Context, productID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	delete(f.lines, productID)
	return nil
}

func (f *fakeCartAPI) ClearCart(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	f.lines = make(map[uint]int)
	return nil
}

func requireInvariants(t *testing.T, cart *client.Cart) {
	t.Helper()
	total := decimal.Zero
	count := 0
	for _, item := range cart.Items {
		total = total.Add(item.Subtotal)
		count += item.Quantity
	}
	require.True(t, cart.TotalAmount.Equal(total), "total %s != sum of subtotals %s", cart.TotalAmount, total)
	require.Equal(t, count, cart.ItemCount)
}

func TestAddOutOfStockIssuesNoRequest(t *testing.T) {
	fake := newFakeCartAPI()
	cache := New(fake)

	err := cache.Add(context.Background(), client.Product{ID: 1, Name: "sold out", Stock: 0}, 1)
	require.ErrorIs(t, err, ErrOutOfStock)
	require.Equal(t, 0, fake.addCalls)
	require.Equal(t, 0, fake.getCalls)
	require.Nil(t, cache.Snapshot())
}

func TestMutationsReloadExactlyOnce(t *testing.T) {
	productA := client.Product{ID: 1, Name: "A", Price: decimal.NewFromInt(10), Stock: 5}
	fake := newFakeCartAPI(productA)
	cache := New(fake)
	ctx := context.Background()

	require.NoError(t, cache.Add(ctx, productA, 2))
	require.Equal(t, 1, fake.addCalls)
	require.Equal(t, 1, fake.getCalls)

	require.NoError(t, cache.UpdateQuantity(ctx, 1, 3))
	require.Equal(t, 1, fake.updateCalls)
	require.Equal(t, 2, fake.getCalls)

	require.NoError(t, cache.Remove(ctx, 1))
	require.Equal(t, 1, fake.removeCalls)
	require.Equal(t, 3, fake.getCalls)

	require.NoError(t, cache.Clear(ctx))
	require.Equal(t, 1, fake.clearCalls)
	require.Equal(t, 4, fake.getCalls)
}

func TestQuantityZeroEquivalentToRemove(t *testing.T) {
	productA := client.Product{ID: 1, Name: "A", Price: decimal.RequireFromString("10.00"), Stock: 10}
	productB := client.Product{ID: 2, Name: "B", Price: decimal.RequireFromString("5.00"), Stock: 10}
	fake := newFakeCartAPI(productA, productB)
	cache := New(fake)
	ctx := context.Background()

	require.NoError(t, cache.Add(ctx, productA, 2))
	require.NoError(t, cache.Add(ctx, productB, 1))

	cart := cache.Snapshot()
	require.NotNil(t, cart)
	requireInvariants(t, cart)
	require.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("25.00")))
	require.Equal(t, 3, cart.ItemCount)

	// setting A to zero must leave the same snapshot as removing A
	require.NoError(t, cache.UpdateQuantity(ctx, productA.ID, 0))

	cart = cache.Snapshot()
	requireInvariants(t, cart)
	require.True(t, cart.TotalAmount.Equal(decimal.RequireFromString("5.00")))
	require.Equal(t, 1, cart.ItemCount)
	require.Len(t, cart.Items, 1)
	require.Equal(t, productB.ID, cart.Items[0].ProductID)
}

func TestSubscribersSeeNewSnapshot(t *testing.T) {
	productA := client.Product{ID: 1, Name: "A", Price: decimal.NewFromInt(10), Stock: 5}
	fake := newFakeCartAPI(productA)
	cache := New(fake)

	updates, cancel := cache.Subscribe()
	defer cancel()

	require.NoError(t, cache.Add(context.Background(), productA, 2))

	cart := <-updates
	requireInvariants(t, &cart)
	require.Equal(t, 2, cart.ItemCount)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	productA := client.Product{ID: 1, Name: "A", Price: decimal.NewFromInt(10), Stock: 5}
	fake := newFakeCartAPI(productA)
	cache := New(fake)

	updates, cancel := cache.Subscribe()
	cancel()

	_, open := <-updates
	require.False(t, open)

	// publishing after cancel must not panic
	require.NoError(t, cache.Add(context.Background(), productA, 1))
}

// gatedCartAPI hands each GetCart call a reply channel so the test controls
// the order responses resolve in.
type gatedCartAPI struct {
	calls chan chan *client.Cart
}

func (g *gatedCartAPI) GetCart(ctx context.Context) (*client.Cart, error) {
	reply := make(chan *client.Cart)
	g.calls <- reply
	return <-reply, nil
}

func (g *gatedCartAPI) AddToCart(ctx context.Context, productID uint, quantity int) error { return nil }
func (g *gatedCartAPI) UpdateCartItem(ctx context.Context, productID uint, quantity int) error {
	return nil
}
func (g *gatedCartAPI) RemoveFromCart(ctx context.Context, productID uint) error { return nil }
func (g *gatedCartAPI) ClearCart(ctx context.Context) error                      { return nil }

func TestStaleReloadResponseIsDiscarded(t *testing.T) {
	gate := &gatedCartAPI{calls: make(chan chan *client.Cart)}
	cache := New(gate)
	ctx := context.Background()

	older := &client.Cart{UserID: "user1", ItemCount: 1, TotalAmount: decimal.NewFromInt(10)}
	newer := &client.Cart{UserID: "user1", ItemCount: 0, TotalAmount: decimal.Zero}

	done1 := make(chan error, 1)
	go func() { done1 <- cache.Reload(ctx) }()
	reply1 := <-gate.calls

	done2 := make(chan error, 1)
	go func() { done2 <- cache.Reload(ctx) }()
	reply2 := <-gate.calls

	// the second (newer) reload resolves first
	reply2 <- newer
	require.NoError(t, <-done2)
	require.Equal(t, 0, cache.Snapshot().ItemCount)

	// the first (older) response arrives late and must be dropped
	reply1 <- older
	require.NoError(t, <-done1)
	require.Equal(t, 0, cache.Snapshot().ItemCount)
	require.True(t, cache.Snapshot().TotalAmount.Equal(decimal.Zero))
}
