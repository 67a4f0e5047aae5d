package repo

import (
	"context"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

// monthExpr returns the dialect's expression for truncating order_date to
// a YYYY-MM bucket. Production runs on MySQL; the sqlite branch keeps the
// aggregation testable against the in-memory test database.
func (r *GormRepo) monthExpr() string {
	if r.DB.Dialector.Name() == "mysql" {
		return "DATE_FORMAT(order_date, '%Y-%m')"
	}
	return "strftime('%Y-%m', order_date)"
}

func (r *GormRepo) SalesByMonth(ctx context.Context, limit int) ([]transport.MonthlySales, error) {
	expr := r.monthExpr()

	rows := make([]transport.MonthlySales, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("orders").
		Select(expr + " AS month, SUM(total_price) AS sales").
		Group(expr).
		Order("month DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Newest month last, the order charts expect.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (r *GormRepo) SalesByCategory(ctx context.Context, limit int) ([]transport.CategorySales, error) {
	rows := make([]transport.CategorySales, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("products.category AS category, SUM(order_items.line_total) AS sales").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.category").
		Order("sales DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) SalesByBrand(ctx context.Context, limit int) ([]transport.BrandSales, error) {
	rows := make([]transport.BrandSales, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("products.brand AS brand, SUM(order_items.line_total) AS sales").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.brand").
		Order("sales DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
