package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

const ordersPath = "/api/orders"

type orderHTTPClient struct {
	api *APIClient
	log *logrus.Logger
}

func NewOrderClient(api *APIClient, logger *logrus.Logger) domain.OrderRepository {
	return &orderHTTPClient{api: api, log: logger}
}

func (c *orderHTTPClient) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.api.Get(ctx, ordersPath, nil, &orders); err != nil {
		return nil, err
	}
	c.log.Debugf("OrderClient: Received %d orders", len(orders))
	return orders, nil
}

// LookupOrders fetches /api/orders/{id}. Depending on the id the API answers
// with a single order or with all the orders of a user.
func (c *orderHTTPClient) LookupOrders(ctx context.Context, id string) (*domain.OrderLookup, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, resourcePath(ordersPath, id), nil, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var orders []domain.Order
		if err := json.Unmarshal(raw, &orders); err != nil {
			return nil, fmt.Errorf("failed to decode orders: %w", err)
		}
		c.log.Debugf("OrderClient: Received %d orders for %s", len(orders), id)
		return &domain.OrderLookup{Orders: orders}, nil
	}
	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	return &domain.OrderLookup{Order: &order}, nil
}
