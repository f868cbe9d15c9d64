// Package project deals with project's business logic.
package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/money"
	"github.com/praxisapp/praxis/internal/web"
)

// Set of errors for project API.
var (
	ErrNotFound        = errors.New("project not found")
	ErrInvalidArgument = errors.New("project invalid argument")
	ErrInternal        = errors.New("project internal error")
)

// Store is used to persist project's data.
type Store interface {
	Create(ctx context.Context, p Project) error
	QueryByID(ctx context.Context, projectID uuid.UUID) (Project, error)
	Query(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// Core deals with project's business logic.
type Core struct {
	store Store
}

func NewCore(store Store) *Core {
	return &Core{store: store}
}

func (c *Core) Create(ctx context.Context, np NewProject) (Project, error) {
	status := np.Status
	if status == "" {
		status = StatusActive
	}

	project := Project{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(np.Name),
		Client:      strings.TrimSpace(np.Client),
		Budget:      money.Normalize(np.Budget),
		StartDate:   strings.TrimSpace(np.StartDate),
		EndDate:     np.EndDate,
		Status:      status,
		Description: np.Description,
		CreatedDate: web.GetTime(ctx).Round(time.Microsecond),
	}
	if err := project.validate(); err != nil {
		return Project{}, err
	}

	if err := c.store.Create(ctx, project); err != nil {
		return Project{}, err
	}

	return project, nil
}

func (c *Core) QueryByID(ctx context.Context, projectID uuid.UUID) (Project, error) {
	return c.store.QueryByID(ctx, projectID)
}

// Query returns all projects, most recently created first.
func (c *Core) Query(ctx context.Context) ([]Project, error) {
	return c.store.Query(ctx)
}

// Update applies the non-nil fields of up to the stored project. Status
// may be set to any valid value at any time, there is no transition order.
func (c *Core) Update(ctx context.Context, projectID uuid.UUID, up UpdateProject) (Project, error) {
	if up == (UpdateProject{}) {
		return Project{}, ErrInvalidArgument
	}

	project, err := c.store.QueryByID(ctx, projectID)
	if err != nil {
		return Project{}, err
	}

	if up.Name != nil {
		project.Name = strings.TrimSpace(*up.Name)
	}
	if up.Client != nil {
		project.Client = strings.TrimSpace(*up.Client)
	}
	if up.Budget != nil {
		project.Budget = money.Normalize(*up.Budget)
	}
	if up.StartDate != nil {
		project.StartDate = strings.TrimSpace(*up.StartDate)
	}
	if up.EndDate != nil {
		project.EndDate = *up.EndDate
	}
	if up.Status != nil {
		project.Status = *up.Status
	}
	if up.Description != nil {
		project.Description = *up.Description
	}
	if err := project.validate(); err != nil {
		return Project{}, err
	}

	if err := c.store.Update(ctx, project); err != nil {
		return Project{}, err
	}

	return project, nil
}

func (c *Core) Delete(ctx context.Context, projectID uuid.UUID) error {
	return c.store.Delete(ctx, projectID)
}

func (p Project) validate() error {
	switch {
	case p.ID == uuid.Nil:
		return ErrInternal
	case p.Name == "":
		return ErrInvalidArgument
	case p.Client == "":
		return ErrInvalidArgument
	case p.StartDate == "":
		return ErrInvalidArgument
	case !p.Status.valid():
		return ErrInvalidArgument
	}

	return nil
}
