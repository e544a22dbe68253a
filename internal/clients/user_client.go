package clients

import (
	"context"

	"backoffice/internal/domain"

	"github.com/sirupsen/logrus"
)

const usersPath = "/api/users"

type userHTTPClient struct {
	api *APIClient
	log *logrus.Logger
}

func NewUserClient(api *APIClient, logger *logrus.Logger) domain.UserRepository {
	return &userHTTPClient{api: api, log: logger}
}

func (c *userHTTPClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.api.Get(ctx, usersPath, nil, &users); err != nil {
		return nil, err
	}
	c.log.Debugf("UserClient: Received %d users", len(users))
	return users, nil
}

func (c *userHTTPClient) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := c.api.Get(ctx, resourcePath(usersPath, id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *userHTTPClient) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	c.log.Debugf("UserClient: Creating user: Email=%s", user.Email)
	var created domain.User
	if err := c.api.Post(ctx, usersPath, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *userHTTPClient) UpdateUser(ctx context.Context, id string, user *domain.User) (*domain.User, error) {
	c.log.Debugf("UserClient: Updating user: ID=%s", id)
	var updated domain.User
	if err := c.api.Put(ctx, resourcePath(usersPath, id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *userHTTPClient) DeleteUser(ctx context.Context, id string) error {
	c.log.Debugf("UserClient: Deleting user: ID=%s", id)
	return c.api.Delete(ctx, resourcePath(usersPath, id))
}
