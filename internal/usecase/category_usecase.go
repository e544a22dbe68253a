package usecase

import (
	"context"
	"fmt"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories(ctx context.Context, q ListQuery) (*ListView[domain.Category], error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, form domain.CategoryForm) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, form domain.CategoryForm) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryUseCase struct {
	repo domain.CategoryRepository
	log  *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		repo: repo,
		log:  logger,
	}
}

func matchCategory(c domain.Category, term string) bool {
	return domain.Matches(term, c.Name)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, q ListQuery) (*ListView[domain.Category], error) {
	view := newListView[domain.Category](q)
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list categories: %v", err)
		return view, fmt.Errorf("failed to list categories: %w", err)
	}
	view.load(categories, matchCategory)
	return view, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if err := domain.ValidID(id); err != nil {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %q", id)
		return nil, err
	}
	category, err := uc.repo.GetCategory(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get category %s: %v", id, err)
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	return category, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, form domain.CategoryForm) (*domain.Category, error) {
	category, err := form.Parse()
	if err != nil {
		uc.log.Warnf("Use Case: Rejected category form: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create category '%s'", category.Name)
	created, err := uc.repo.CreateCategory(ctx, category)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	uc.log.Infof("Use Case: Category '%s' created with ID %s", created.Name, created.ID)
	return created, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, form domain.CategoryForm) (*domain.Category, error) {
	if err := domain.ValidID(id); err != nil {
		return nil, err
	}
	category, err := form.Parse()
	if err != nil {
		uc.log.Warnf("Use Case: Rejected category form for %s: %v", id, err)
		return nil, err
	}

	updated, err := uc.repo.UpdateCategory(ctx, id, category)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to update category %s: %v", id, err)
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	uc.log.Infof("Use Case: Category %s updated", id)
	return updated, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := domain.ValidID(id); err != nil {
		return err
	}
	if err := uc.repo.DeleteCategory(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Failed to delete category %s: %v", id, err)
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	uc.log.Infof("Use Case: Category %s deleted", id)
	return nil
}
