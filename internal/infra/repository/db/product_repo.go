package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const productCacheTTL = 10 * time.Minute

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, category, search string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductRepo struct {
	db           *DbDao
	productCache *redis.Client
}

func NewProductRepo(db *DbDao, productCache *redis.Client) *ProductRepo {
	return &ProductRepo{db: db, productCache: productCache}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// GetProductByID reads through the product cache. A cache failure falls back
// to the db, it never fails the lookup.
func (s *ProductRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	if s.productCache != nil {
		raw, err := s.productCache.Get(ctx, productCacheKey(id)).Result()
		if err == nil {
			var cached model.Product
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var product model.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.productCache != nil {
		if raw, err := json.Marshal(&product); err == nil {
			s.productCache.Set(ctx, productCacheKey(id), raw, productCacheTTL)
		}
	}
	return &product, nil
}

func (s *ProductRepo) ListProducts(ctx context.Context, category, search string) ([]model.Product, error) {
	q := s.db.WithContext(ctx).Model(&model.Product{})
	if category != "" {
		q = q.Where("category ILIKE ?", "%"+category+"%")
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var products []model.Product
	if err := q.Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	err := s.db.WithContext(ctx).Save(product).Error
	if err != nil {
		return err
	}
	s.invalidate(ctx, product.ProductID)
	return nil
}

func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductRepo) invalidate(ctx context.Context, id uint) {
	if s.productCache != nil {
		s.productCache.Del(ctx, productCacheKey(id))
	}
}
