package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/logging"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/repo"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	Repo *repo.GormRepo
	// Cache is optional; nil disables the read-through cache entirely.
	Cache *redis.Client
}

func (s *CatalogService) ListProducts(ctx context.Context, f transport.ProductFilter, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.ListProducts(ctx, f, offset, limit)
}

// GetProduct reads through the cache when one is configured. Cache
// failures only degrade to a database read, never fail the request.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	l := logging.FromContext(ctx)

	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, productCacheKey(id)).Result()
		if err == nil {
			var product models.Product
			if jsonErr := json.Unmarshal([]byte(raw), &product); jsonErr == nil {
				return &product, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			l.Warn("product_cache_get_failed", "product_id", id, "error", err)
		}
	}

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(product); jsonErr == nil {
			if err := s.Cache.Set(ctx, productCacheKey(id), data, productCacheTTL).Err(); err != nil {
				l.Warn("product_cache_set_failed", "product_id", id, "error", err)
			}
		}
	}

	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product) (uint, error) {
	return s.Repo.CreateProduct(ctx, product)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) error {
	if err := s.Repo.UpdateProduct(ctx, id, req); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id uint) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, productCacheKey(id)).Err(); err != nil {
		logging.FromContext(ctx).Warn("product_cache_del_failed", "product_id", id, "error", err)
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
