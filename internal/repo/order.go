package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

func orderFilters(f transport.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.OrderNum != "" {
			q = q.Where("orders.order_num LIKE ?", "%"+f.OrderNum+"%")
		}
		if f.UserID != "" {
			q = q.Where("users.id LIKE ?", "%"+f.UserID+"%")
		}
		if f.StartDate != nil {
			q = q.Where("orders.order_date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			q = q.Where("orders.order_date <= ?", *f.EndDate)
		}
		return q
	}
}

// ListOrders joins each order with its customer so the list can show and
// filter by the customer's login id.
func (r *GormRepo) ListOrders(ctx context.Context, f transport.OrderFilter, offset, limit int) (int64, []transport.OrderSummary, error) {
	base := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&models.Order{}).
			Joins("JOIN users ON users.idx = orders.user_idx").
			Scopes(orderFilters(f))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]transport.OrderSummary, 0, limit)
	if err := base().
		Select("orders.id, orders.order_num, users.id AS user_id, orders.total_price, orders.order_date").
		Order("orders.order_date DESC").Limit(limit).Offset(offset).
		Scan(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*transport.OrderDetail, error) {
	var detail transport.OrderDetail
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Joins("JOIN users ON users.idx = orders.user_idx").
		Select("orders.id, orders.order_num, orders.order_date, orders.total_price, users.name AS user_name, users.id AS user_id, users.phone_num").
		Where("orders.id = ?", id).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}

	items := make([]transport.OrderItemView, 0)
	err = r.DB.WithContext(ctx).Model(&models.OrderItem{}).
		Select("product_name, quantity, price, line_total").
		Where("order_id = ?", id).
		Order("id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	detail.Items = items
	return &detail, nil
}
