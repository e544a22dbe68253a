package usecase

import (
	"context"
	"fmt"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type OrderUseCase interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	// LookupOrders resolves /orders/:orderId, which is either an order id or a user id.
	LookupOrders(ctx context.Context, id string) (*domain.OrderLookup, error)
}

type orderUseCase struct {
	repo domain.OrderRepository
	log  *logrus.Logger
}

func NewOrderUseCase(repo domain.OrderRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		repo: repo,
		log:  logger,
	}
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := uc.repo.ListOrders(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d orders", len(orders))
	return orders, nil
}

func (uc *orderUseCase) LookupOrders(ctx context.Context, id string) (*domain.OrderLookup, error) {
	if err := domain.ValidID(id); err != nil {
		uc.log.Warnf("Use Case: Attempted to look up orders with invalid ID: %q", id)
		return nil, err
	}
	lookup, err := uc.repo.LookupOrders(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to look up orders for %s: %v", id, err)
		return nil, fmt.Errorf("failed to look up orders %s: %w", id, err)
	}
	return lookup, nil
}
