// Package cartcache keeps the single authoritative client-side cart snapshot.
// Mutations are fire-then-reload: the server applies the change, then the
// whole cart is fetched again, so the local copy can never diverge from the
// server's. Subscribers receive every applied snapshot over channels.
package cartcache

import (
	"context"
	"errors"
	"sync"

	"github.com/RoyceAzure/lab/storefront/pkg/client"
)

var ErrOutOfStock = errors.New("product is out of stock")

// CartAPI is the slice of the store client the cache needs.
type CartAPI interface {
	GetCart(ctx context.Context) (*client.Cart, error)
	AddToCart(ctx context.Context, productID uint, quantity int) error
	UpdateCartItem(ctx context.Context, productID uint, quantity int) error
	RemoveFromCart(ctx context.Context, productID uint) error
	ClearCart(ctx context.Context) error
}

type Cache struct {
	api CartAPI

	mu       sync.Mutex
	snapshot *client.Cart
	// seq numbers reloads; a response whose seq is no longer the newest is
	// discarded so a slow early reload cannot overwrite a later one.
	seq     uint64
	subs    map[int]chan client.Cart
	nextSub int
}

func New(api CartAPI) *Cache {
	if api == nil {
		panic("api cannot be nil")
	}
	return &Cache{
		api:  api,
		subs: make(map[int]chan client.Cart),
	}
}

// Snapshot returns a copy of the current cart, or nil before the first reload.
func (c *Cache) Snapshot() *client.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil {
		return nil
	}
	cp := *c.snapshot
	cp.Items = append([]client.CartItem(nil), c.snapshot.Items...)
	return &cp
}

// Subscribe registers for snapshot updates. The returned cancel func must be
// called to release the channel. Publishes never block: a subscriber that is
// not keeping up misses intermediate snapshots.
func (c *Cache) Subscribe() (<-chan client.Cart, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan client.Cart, 1)
	c.subs[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}
}

// Add puts quantity of product into the cart. A product with no stock is
// rejected locally, no request goes out.
func (c *Cache) Add(ctx context.Context, product client.Product, quantity int) error {
	if product.Stock <= 0 {
		return ErrOutOfStock
	}
	if err := c.api.AddToCart(ctx, product.ID, quantity); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// UpdateQuantity sets a line's quantity; zero is equivalent to Remove.
func (c *Cache) UpdateQuantity(ctx context.Context, productID uint, quantity int) error {
	if err := c.api.UpdateCartItem(ctx, productID, quantity); err != nil {
		return err
	}
	return c.Reload(ctx)
}

func (c *Cache) Remove(ctx context.Context, productID uint) error {
	if err := c.api.RemoveFromCart(ctx, productID); err != nil {
		return err
	}
	return c.Reload(ctx)
}

func (c *Cache) Clear(ctx context.Context) error {
	if err := c.api.ClearCart(ctx); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Reload fetches the full cart and, if no newer reload was issued meanwhile,
// applies and publishes it.
func (c *Cache) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	cart, err := c.api.GetCart(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// a newer reload is in flight or already applied; this response is stale
		return nil
	}
	c.snapshot = cart

	for _, ch := range c.subs {
		// keep only the newest snapshot in each subscriber's buffer
		select {
		case ch <- *cart:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- *cart:
			default:
			}
		}
	}
	return nil
}
