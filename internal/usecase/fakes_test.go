package usecase

import (
	"context"
	"io"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeCategoryRepo struct {
	categories []domain.Category
	err        error
	created    []*domain.Category
	updated    map[string]*domain.Category
	deleted    []string
}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, io.EOF
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, c)
	out := *c
	out.ID = "new"
	return &out, nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, id string, c *domain.Category) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		f.updated = map[string]*domain.Category{}
	}
	f.updated[id] = c
	return c, nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductRepo struct {
	page    domain.ProductPage
	err     error
	calls   [][2]int
	created []*domain.Product
}

func (f *fakeProductRepo) ListProducts(ctx context.Context, page, limit int) (*domain.ProductPage, error) {
	f.calls = append(f.calls, [2]int{page, limit})
	if f.err != nil {
		return nil, f.err
	}
	return &f.page, nil
}

func (f *fakeProductRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return nil, f.err
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	return p, f.err
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	return f.err
}

type fakeUserRepo struct {
	users   []domain.User
	err     error
	created []*domain.User
	updated []*domain.User
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	return f.users, f.err
}

func (f *fakeUserRepo) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return nil, f.err
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id string, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, u)
	return u, nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	return f.err
}
