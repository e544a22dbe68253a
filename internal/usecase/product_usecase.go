package usecase

import (
	"context"
	"fmt"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListProducts(ctx context.Context, q ListQuery) (*ListView[domain.Product], error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, form domain.ProductForm) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, form domain.ProductForm) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	// CategoryOptions lists the categories a product can be attached to.
	CategoryOptions(ctx context.Context) ([]domain.Category, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	pageLimit    int
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, pageLimit int, logger *logrus.Logger) ProductUseCase {
	if pageLimit <= 0 {
		pageLimit = 10
	}
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		pageLimit:    pageLimit,
		log:          logger,
	}
}

func matchProduct(p domain.Product, term string) bool {
	return domain.Matches(term, p.Name)
}

// ListProducts fetches the requested page and filters it by the search term.
func (uc *productUseCase) ListProducts(ctx context.Context, q ListQuery) (*ListView[domain.Product], error) {
	view := newListView[domain.Product](q)
	page := max(q.Page, 1)
	view.Pager = NewPager(page, page)

	result, err := uc.productRepo.ListProducts(ctx, page, uc.pageLimit)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list products page %d: %v", page, err)
		return view, fmt.Errorf("failed to list products: %w", err)
	}
	view.Pager = NewPager(page, result.TotalPages)
	view.load(result.Products, matchProduct)
	return view, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := domain.ValidID(id); err != nil {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %q", id)
		return nil, err
	}
	product, err := uc.productRepo.GetProduct(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get product %s: %v", id, err)
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, form domain.ProductForm) (*domain.Product, error) {
	product, err := form.Parse()
	if err != nil {
		uc.log.Warnf("Use Case: Rejected product form: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Name)
	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	uc.log.Infof("Use Case: Product '%s' created with ID %s", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, form domain.ProductForm) (*domain.Product, error) {
	if err := domain.ValidID(id); err != nil {
		return nil, err
	}
	product, err := form.Parse()
	if err != nil {
		uc.log.Warnf("Use Case: Rejected product form for %s: %v", id, err)
		return nil, err
	}

	updated, err := uc.productRepo.UpdateProduct(ctx, id, product)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to update product %s: %v", id, err)
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	uc.log.Infof("Use Case: Product %s updated", id)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := domain.ValidID(id); err != nil {
		return err
	}
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Failed to delete product %s: %v", id, err)
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	uc.log.Infof("Use Case: Product %s deleted", id)
	return nil
}

func (uc *productUseCase) CategoryOptions(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list categories for product form: %v", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
