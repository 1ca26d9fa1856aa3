package controllers

import (
	"context"

	"fundtracker/src/models"
)

type AuthControllerI interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*models.User, error)
}

func (c *Controller) Register(ctx context.Context, username, password string) error {
	return c.AuthService.Register(ctx, username, password)
}

func (c *Controller) Login(ctx context.Context, username, password string) (*models.User, error) {
	return c.AuthService.Authenticate(ctx, username, password)
}
