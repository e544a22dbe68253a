package clients

import (
	"context"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

const categoriesPath = "/api/category"

type categoryHTTPClient struct {
	api *APIClient
	log *logrus.Logger
}

func NewCategoryClient(api *APIClient, logger *logrus.Logger) domain.CategoryRepository {
	return &categoryHTTPClient{api: api, log: logger}
}

func (c *categoryHTTPClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.api.Get(ctx, categoriesPath, nil, &categories); err != nil {
		return nil, err
	}
	c.log.Debugf("CategoryClient: Received %d categories", len(categories))
	return categories, nil
}

func (c *categoryHTTPClient) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	if err := c.api.Get(ctx, resourcePath(categoriesPath, id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *categoryHTTPClient) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	c.log.Debugf("CategoryClient: Creating category: Name=%s", category.Name)
	var created domain.Category
	if err := c.api.Post(ctx, categoriesPath, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *categoryHTTPClient) UpdateCategory(ctx context.Context, id string, category *domain.Category) (*domain.Category, error) {
	c.log.Debugf("CategoryClient: Updating category: ID=%s", id)
	var updated domain.Category
	if err := c.api.Put(ctx, resourcePath(categoriesPath, id), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *categoryHTTPClient) DeleteCategory(ctx context.Context, id string) error {
	c.log.Debugf("CategoryClient: Deleting category: ID=%s", id)
	return c.api.Delete(ctx, resourcePath(categoriesPath, id))
}
