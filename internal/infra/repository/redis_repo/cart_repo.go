package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

const cartTTL = 24 * time.Hour

type ICartRepository interface {
	GetCart(ctx context.Context, userID string) (*model.Cart, error)
	SaveCart(ctx context.Context, cart *model.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// CartRepo keeps one cart per user as a JSON blob under cart:<userID>.
// A cart that was not touched for 24h expires.
type CartRepo struct {
	cartCache *redis.Client
}

func NewCartRepo(cartCache *redis.Client) *CartRepo {
	return &CartRepo{cartCache: cartCache}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// GetCart returns the stored cart, or an empty cart when none exists.
func (s *CartRepo) GetCart(ctx context.Context, userID string) (*model.Cart, error) {
	raw, err := s.cartCache.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &model.Cart{UserID: userID}, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func (s *CartRepo) SaveCart(ctx context.Context, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.cartCache.Set(ctx, cartKey(cart.UserID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartRepo) DeleteCart(ctx context.Context, userID string) error {
	if err := s.cartCache.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
