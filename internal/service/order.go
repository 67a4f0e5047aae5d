package service

import (
	"context"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/repo"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) ListOrders(ctx context.Context, f transport.OrderFilter, offset, limit int) (int64, []transport.OrderSummary, error) {
	return s.Repo.ListOrders(ctx, f, offset, limit)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*transport.OrderDetail, error) {
	return s.Repo.GetOrder(ctx, id)
}
