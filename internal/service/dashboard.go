package service

import (
	"context"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/repo"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

type DashboardService struct {
	Repo *repo.GormRepo
}

func (s *DashboardService) SalesByMonth(ctx context.Context, limit int) ([]transport.MonthlySales, error) {
	return s.Repo.SalesByMonth(ctx, limit)
}

func (s *DashboardService) SalesByCategory(ctx context.Context, limit int) ([]transport.CategorySales, error) {
	return s.Repo.SalesByCategory(ctx, limit)
}

func (s *DashboardService) SalesByBrand(ctx context.Context, limit int) ([]transport.BrandSales, error) {
	return s.Repo.SalesByBrand(ctx, limit)
}
