package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/logging"
)

type UsersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Users is the user administration screen.
type Users struct {
	api UsersAPI
	log logging.Logger
	loader

	Items []models.User
}

func NewUsers(api UsersAPI, log logging.Logger) *Users {
	return &Users{api: api, log: log.With("view", "users")}
}

func (v *Users) Load(ctx context.Context) error {
	defer v.begin()()

	items, err := v.api.ListUsers(ctx)
	if err != nil {
		v.log.Warn(ctx, "users load failed", "err", err)
		return err
	}
	v.Items = items
	return nil
}

func (v *Users) Find(id int64) (models.User, bool) {
	for _, u := range v.Items {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (v *Users) Create(ctx context.Context, form validation.UserForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.CreateUser(ctx, form.Input()); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

func (v *Users) Update(ctx context.Context, id int64, form validation.UserForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.UpdateUser(ctx, id, form.Input()); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

func (v *Users) Delete(ctx context.Context, id int64) error {
	if err := v.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}
