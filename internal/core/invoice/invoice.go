// Package invoice deals with invoice's business logic: amount derivation
// from hours and rate, and the payment status lifecycle.
package invoice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/money"
	"github.com/praxisapp/praxis/internal/web"
)

// Set of errors for invoice API.
var (
	ErrNotFound        = errors.New("invoice not found")
	ErrInvalidArgument = errors.New("invoice invalid argument")
	ErrInternal        = errors.New("invoice internal error")
)

// Store is used to persist invoice's data.
type Store interface {
	// Create persists the invoice and returns it with the
	// invoice number assigned by the store.
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	QueryByID(ctx context.Context, invoiceID uuid.UUID) (Invoice, error)
	Query(ctx context.Context) ([]Invoice, error)
	Update(ctx context.Context, inv Invoice) error
	Delete(ctx context.Context, invoiceID uuid.UUID) error
}

// Core deals with invoice's business logic.
type Core struct {
	store Store
}

func NewCore(store Store) *Core {
	return &Core{store: store}
}

// ComputeAmount derives the billable amount. When hours and rate are both
// non-negative and their product is positive the product wins, otherwise
// the manually entered amount is used, degraded fail-soft to 0 when it is
// absent, negative or not a finite number.
func ComputeAmount(hours, rate, manual float64) float64 {
	hours = money.Normalize(hours)
	rate = money.Normalize(rate)
	if p := hours * rate; p > 0 {
		return p
	}
	return money.Normalize(manual)
}

func (c *Core) Create(ctx context.Context, ni NewInvoice) (Invoice, error) {
	status := ni.Status
	if status == "" {
		status = StatusPending
	}

	inv := Invoice{
		ID:          uuid.New(),
		Client:      strings.TrimSpace(ni.Client),
		Project:     strings.TrimSpace(ni.Project),
		Hours:       money.Normalize(ni.Hours),
		Rate:        money.Normalize(ni.Rate),
		Amount:      ComputeAmount(ni.Hours, ni.Rate, ni.Amount),
		DueDate:     strings.TrimSpace(ni.DueDate),
		Status:      status,
		Description: ni.Description,
		CreatedDate: web.GetTime(ctx).Round(time.Microsecond),
	}
	if err := inv.validate(); err != nil {
		return Invoice{}, err
	}

	return c.store.Create(ctx, inv)
}

func (c *Core) QueryByID(ctx context.Context, invoiceID uuid.UUID) (Invoice, error) {
	return c.store.QueryByID(ctx, invoiceID)
}

// Query returns all invoices, most recently created first.
func (c *Core) Query(ctx context.Context) ([]Invoice, error) {
	return c.store.Query(ctx)
}

// Update applies the non-nil fields of ui to the stored invoice and
// re-derives the amount from the merged field set: a jointly positive
// hours*rate overwrites any manual amount, otherwise an edited amount is
// taken verbatim and a previously derived amount is kept as is. The
// invoice number is never touched.
func (c *Core) Update(ctx context.Context, invoiceID uuid.UUID, ui UpdateInvoice) (Invoice, error) {
	if ui == (UpdateInvoice{}) {
		return Invoice{}, ErrInvalidArgument
	}

	inv, err := c.store.QueryByID(ctx, invoiceID)
	if err != nil {
		return Invoice{}, err
	}

	if ui.Client != nil {
		inv.Client = strings.TrimSpace(*ui.Client)
	}
	if ui.Project != nil {
		inv.Project = strings.TrimSpace(*ui.Project)
	}
	if ui.Hours != nil {
		inv.Hours = money.Normalize(*ui.Hours)
	}
	if ui.Rate != nil {
		inv.Rate = money.Normalize(*ui.Rate)
	}
	if ui.DueDate != nil {
		inv.DueDate = strings.TrimSpace(*ui.DueDate)
	}
	if ui.Status != nil {
		inv.Status = *ui.Status
	}
	if ui.Description != nil {
		inv.Description = *ui.Description
	}

	manual := inv.Amount
	if ui.Amount != nil {
		manual = *ui.Amount
	}
	inv.Amount = ComputeAmount(inv.Hours, inv.Rate, manual)

	if err := inv.validate(); err != nil {
		return Invoice{}, err
	}

	if err := c.store.Update(ctx, inv); err != nil {
		return Invoice{}, err
	}

	return inv, nil
}

func (c *Core) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	return c.store.Delete(ctx, invoiceID)
}

func (inv Invoice) validate() error {
	switch {
	case inv.ID == uuid.Nil:
		return ErrInternal
	case inv.Client == "":
		return ErrInvalidArgument
	case inv.Project == "":
		return ErrInvalidArgument
	case inv.DueDate == "":
		return ErrInvalidArgument
	case !inv.Status.valid():
		return ErrInvalidArgument
	}

	return nil
}
