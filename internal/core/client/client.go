// Package client deals with client's business logic.
package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/web"
)

// Set of errors for client API.
var (
	ErrNotFound        = errors.New("client not found")
	ErrInvalidArgument = errors.New("client invalid argument")
	ErrInternal        = errors.New("client internal error")
)

// Store is used to persist client's data.
type Store interface {
	Create(ctx context.Context, c Client) error
	QueryByID(ctx context.Context, clientID uuid.UUID) (Client, error)
	Query(ctx context.Context) ([]Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, clientID uuid.UUID) error
}

// Core deals with client's business logic.
type Core struct {
	store Store
}

func NewCore(store Store) *Core {
	return &Core{store: store}
}

func (c *Core) Create(ctx context.Context, nc NewClient) (Client, error) {
	client := Client{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(nc.Name),
		Email:    strings.TrimSpace(nc.Email),
		Phone:    nc.Phone,
		Company:  nc.Company,
		JoinDate: web.GetTime(ctx).Round(time.Microsecond),
	}
	if err := client.validate(); err != nil {
		return Client{}, err
	}

	if err := c.store.Create(ctx, client); err != nil {
		return Client{}, err
	}

	return client, nil
}

func (c *Core) QueryByID(ctx context.Context, clientID uuid.UUID) (Client, error) {
	return c.store.QueryByID(ctx, clientID)
}

// Query returns all clients, most recently joined first.
func (c *Core) Query(ctx context.Context) ([]Client, error) {
	return c.store.Query(ctx)
}

// Update applies the non-nil fields of uc to the stored client. The
// store's last-write-wins policy resolves concurrent updates.
func (c *Core) Update(ctx context.Context, clientID uuid.UUID, uc UpdateClient) (Client, error) {
	if uc == (UpdateClient{}) {
		return Client{}, ErrInvalidArgument
	}

	client, err := c.store.QueryByID(ctx, clientID)
	if err != nil {
		return Client{}, err
	}

	if uc.Name != nil {
		client.Name = strings.TrimSpace(*uc.Name)
	}
	if uc.Email != nil {
		client.Email = strings.TrimSpace(*uc.Email)
	}
	if uc.Phone != nil {
		client.Phone = *uc.Phone
	}
	if uc.Company != nil {
		client.Company = *uc.Company
	}
	if err := client.validate(); err != nil {
		return Client{}, err
	}

	if err := c.store.Update(ctx, client); err != nil {
		return Client{}, err
	}

	return client, nil
}

// Delete removes the client. Projects and invoices referencing it are
// left untouched, the association is by name only.
func (c *Core) Delete(ctx context.Context, clientID uuid.UUID) error {
	return c.store.Delete(ctx, clientID)
}

func (c Client) validate() error {
	switch {
	case c.ID == uuid.Nil:
		return ErrInternal
	case c.Name == "":
		return ErrInvalidArgument
	case c.Email == "":
		return ErrInvalidArgument
	}

	return nil
}
