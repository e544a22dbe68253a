package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

const productsPath = "/api/products"

type productHTTPClient struct {
	api *APIClient
	log *logrus.Logger
}

func NewProductClient(api *APIClient, logger *logrus.Logger) domain.ProductRepository {
	return &productHTTPClient{api: api, log: logger}
}

// ListProducts fetches one page. The API answers {products, totalPages}, {products} or a bare array.
func (c *productHTTPClient) ListProducts(ctx context.Context, page, limit int) (*domain.ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var raw json.RawMessage
	if err := c.api.Get(ctx, productsPath, query, &raw); err != nil {
		return nil, err
	}
	result, err := decodeProductPage(raw)
	if err != nil {
		c.log.Errorf("ProductClient: Unexpected product list shape: %v", err)
		return nil, err
	}
	c.log.Debugf("ProductClient: Received %d products, page %d of %d", len(result.Products), page, result.TotalPages)
	return result, nil
}

func decodeProductPage(raw json.RawMessage) (*domain.ProductPage, error) {
	raw = bytes.TrimSpace(raw)
	result := &domain.ProductPage{TotalPages: 1}
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &result.Products); err != nil {
			return nil, fmt.Errorf("failed to decode product list: %w", err)
		}
		return result, nil
	}
	var envelope struct {
		Products   []domain.Product `json:"products"`
		TotalPages int              `json:"totalPages"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}
	result.Products = envelope.Products
	if envelope.TotalPages > 0 {
		result.TotalPages = envelope.TotalPages
	}
	return result, nil
}

func (c *productHTTPClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.api.Get(ctx, resourcePath(productsPath, id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *productHTTPClient) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	c.log.Debugf("ProductClient: Creating product: Name=%s", product.Name)
	var created domain.Product
	if err := c.api.Post(ctx, productsPath, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *productHTTPClient) UpdateProduct(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	c.log.Debugf("ProductClient: Updating product: ID=%s", id)
	var updated domain.Product
	if err := c.api.Put(ctx, resourcePath(productsPath, id), product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *productHTTPClient) DeleteProduct(ctx context.Context, id string) error {
	c.log.Debugf("ProductClient: Deleting product: ID=%s", id)
	return c.api.Delete(ctx, resourcePath(productsPath, id))
}
