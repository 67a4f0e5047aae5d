package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

// productFilters turns the optional list predicates into chained AND
// clauses. The same scope is applied to the COUNT and the data query so
// both always agree.
func productFilters(f transport.ProductFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.Name != "" {
			q = q.Where("name LIKE ?", "%"+f.Name+"%")
		}
		if f.Brand != "" {
			q = q.Where("brand LIKE ?", "%"+f.Brand+"%")
		}
		if f.Category != "" {
			q = q.Where("category = ?", f.Category)
		}
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.MinPrice != nil {
			q = q.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("price <= ?", *f.MaxPrice)
		}
		return q
	}
}

func (r *GormRepo) ListProducts(ctx context.Context, f transport.ProductFilter, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Scopes(productFilters(f)).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Scopes(productFilters(f)).
		Order("id ASC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Colors").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts the product row and its color rows as one atomic
// unit. Colors are inserted one by one, each referencing the key generated
// for the parent in the same transaction.
func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) (uint, error) {
	colors := product.Colors
	product.Colors = nil

	err := r.runInTx(ctx,
		func(tx *gorm.DB) error {
			return tx.Create(product).Error
		},
		func(tx *gorm.DB) error {
			for i := range colors {
				colors[i].ProductID = product.ID
				if err := tx.Create(&colors[i]).Error; err != nil {
					return err
				}
			}
			return nil
		},
	)
	if err != nil {
		return 0, err
	}

	product.Colors = colors
	return product.ID, nil
}

// UpdateProduct replaces every mutable column and refreshes updated_at.
// Zero affected rows means the id did not match or the write changed
// nothing; the two cases are reported identically.
func (r *GormRepo) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) error {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]any{
		"name":        req.Name,
		"brand":       req.Brand,
		"price":       req.Price,
		"category":    req.Category,
		"description": req.Description,
		"image_link":  req.ImageLink,
		"stock":       req.Stock,
		"status":      req.Status,
		"updated_at":  time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteProduct removes the row physically and cascades to its color rows
// in the same transaction, so no orphans survive.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.runInTx(ctx,
		func(tx *gorm.DB) error {
			res := tx.Delete(&models.Product{}, id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		},
		func(tx *gorm.DB) error {
			return tx.Where("product_id = ?", id).Delete(&models.ProductColor{}).Error
		},
	)
}
