package usecase

import (
	"context"
	"fmt"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

type UserUseCase interface {
	ListUsers(ctx context.Context, q ListQuery) (*ListView[domain.User], error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, form domain.UserForm) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, form domain.UserForm) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userUseCase struct {
	repo domain.UserRepository
	log  *logrus.Logger
}

func NewUserUseCase(repo domain.UserRepository, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		repo: repo,
		log:  logger,
	}
}

func matchUser(u domain.User, term string) bool {
	return domain.Matches(term, u.FirstName, u.LastName, u.Email)
}

func (uc *userUseCase) ListUsers(ctx context.Context, q ListQuery) (*ListView[domain.User], error) {
	view := newListView[domain.User](q)
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list users: %v", err)
		return view, fmt.Errorf("failed to list users: %w", err)
	}
	view.load(users, matchUser)
	return view, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := domain.ValidID(id); err != nil {
		uc.log.Warnf("Use Case: Attempted to get user with invalid ID: %q", id)
		return nil, err
	}
	user, err := uc.repo.GetUser(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get user %s: %v", id, err)
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, form domain.UserForm) (*domain.User, error) {
	user, err := form.Parse(true)
	if err != nil {
		uc.log.Warnf("Use Case: Rejected user form: %v", err)
		return nil, err
	}
	created, err := uc.repo.CreateUser(ctx, user)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to create user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	uc.log.Infof("Use Case: User %s created with ID %s", created.Email, created.ID)
	return created, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id string, form domain.UserForm) (*domain.User, error) {
	if err := domain.ValidID(id); err != nil {
		return nil, err
	}
	user, err := form.Parse(false)
	if err != nil {
		uc.log.Warnf("Use Case: Rejected user form for %s: %v", id, err)
		return nil, err
	}
	updated, err := uc.repo.UpdateUser(ctx, id, user)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to update user %s: %v", id, err)
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	uc.log.Infof("Use Case: User %s updated", id)
	return updated, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	if err := domain.ValidID(id); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Failed to delete user %s: %v", id, err)
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	uc.log.Infof("Use Case: User %s deleted", id)
	return nil
}
