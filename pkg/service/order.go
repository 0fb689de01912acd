package service

import (
	"context"

	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/repo"
)

type OrderService struct {
	repo repo.PGInterface
}

func NewOrderService(repo repo.PGInterface) OrderServiceInterface {
	return &OrderService{repo: repo}
}

type OrderServiceInterface interface {
	GetAllOrdersForExport(ctx context.Context) ([]model.OrderListingRow, error)
}

func (s *OrderService) GetAllOrdersForExport(ctx context.Context) ([]model.OrderListingRow, error) {
	log := logger.WithCtx(ctx, "OrderService.GetAllOrdersForExport")

	orders, err := s.repo.GetAllOrdersForExport(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Get all orders for export error")
		return nil, err
	}

	log.WithField("count", len(orders)).Info("loaded orders for export")
	return orders, nil
}
