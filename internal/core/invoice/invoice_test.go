package invoice_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/praxisapp/praxis/internal/core/invoice"
	"github.com/praxisapp/praxis/internal/core/invoice/store/invoicedb"
	"github.com/praxisapp/praxis/internal/data/dbtest"
)

func TestComputeAmount(t *testing.T) {
	tests := []struct {
		name   string
		hours  float64
		rate   float64
		manual float64
		want   float64
	}{
		{"hours and rate win", 10, 50, 123, 500},
		{"hours and rate, no manual", 10, 50, 0, 500},
		{"zero hours falls back to manual", 0, 50, 300, 300},
		{"zero rate falls back to manual", 8, 0, 300, 300},
		{"all empty", 0, 0, 0, 0},
		{"manual only", 0, 0, 1500, 1500},
		{"negative manual degrades to zero", 0, 0, -7, 0},
		{"negative hours degrade to zero", -10, 50, 250, 250},
		{"nan manual degrades to zero", 0, 0, math.NaN(), 0},
		{"fractional hours", 2.5, 100, 0, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.ComputeAmount(tt.hours, tt.rate, tt.manual)
			if got != tt.want {
				t.Errorf("ComputeAmount(%v, %v, %v) = %v, want %v",
					tt.hours, tt.rate, tt.manual, got, tt.want)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	core := invoice.NewCore(invoicedb.NewStore(log, database))

	ni := invoice.NewInvoice{
		Client:  "Acme Corp",
		Project: "Website Redesign",
		Hours:   10,
		Rate:    50,
		DueDate: "2026-09-30",
	}

	inv, err := core.Create(ctx, ni)
	if err != nil {
		t.Fatalf("creating invoice: %v", err)
	}

	if inv.Amount != 500 {
		t.Errorf("got amount %v, want %v", inv.Amount, 500)
	}
	if inv.Status != invoice.StatusPending {
		t.Errorf("got status %q, want %q", inv.Status, invoice.StatusPending)
	}
	if inv.InvoiceNumber == "" {
		t.Error("invoice number was not assigned")
	}

	got, err := core.QueryByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("failed to query invoice: %v", err)
	}
	if diff := cmp.Diff(inv, got); diff != "" {
		t.Fatalf("got different invoices: %s", diff)
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	core := invoice.NewCore(invoicedb.NewStore(log, database))

	tests := []struct {
		name string
		ni   invoice.NewInvoice
	}{
		{"missing client", invoice.NewInvoice{Project: "p", DueDate: "2026-09-30"}},
		{"missing project", invoice.NewInvoice{Client: "c", DueDate: "2026-09-30"}},
		{"missing due date", invoice.NewInvoice{Client: "c", Project: "p"}},
		{"bad status", invoice.NewInvoice{Client: "c", Project: "p", DueDate: "2026-09-30", Status: "cancelled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := core.Create(ctx, tt.ni); err != invoice.ErrInvalidArgument {
				t.Errorf("got %v, want %v", err, invoice.ErrInvalidArgument)
			}
		})
	}
}

func TestUpdateDerivesAmount(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	core := invoice.NewCore(invoicedb.NewStore(log, database))

	inv, err := core.Create(ctx, invoice.NewInvoice{
		Client:  "Acme Corp",
		Project: "SEO Audit",
		Amount:  800,
		DueDate: "2026-10-15",
	})
	if err != nil {
		t.Fatalf("creating invoice: %v", err)
	}
	if inv.Amount != 800 {
		t.Fatalf("got amount %v, want %v", inv.Amount, 800)
	}

	// Setting hours and rate jointly positive overwrites the manual amount.
	hours, rate := 4.0, 100.0
	inv, err = core.Update(ctx, inv.ID, invoice.UpdateInvoice{Hours: &hours, Rate: &rate})
	if err != nil {
		t.Fatalf("updating invoice: %v", err)
	}
	if inv.Amount != 400 {
		t.Errorf("got amount %v, want %v", inv.Amount, 400)
	}

	// Zeroing the rate releases the derivation and the edited amount wins.
	zero, manual := 0.0, 950.0
	inv, err = core.Update(ctx, inv.ID, invoice.UpdateInvoice{Rate: &zero, Amount: &manual})
	if err != nil {
		t.Fatalf("updating invoice: %v", err)
	}
	if inv.Amount != 950 {
		t.Errorf("got amount %v, want %v", inv.Amount, 950)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	core := invoice.NewCore(invoicedb.NewStore(log, database))

	inv, err := core.Create(ctx, invoice.NewInvoice{
		Client:  "Acme Corp",
		Project: "Brand Refresh",
		Amount:  1200,
		DueDate: "2026-11-01",
	})
	if err != nil {
		t.Fatalf("creating invoice: %v", err)
	}

	// No state is terminal: pending -> paid -> pending -> overdue.
	for _, want := range []invoice.Status{invoice.StatusPaid, invoice.StatusPending, invoice.StatusOverdue} {
		st := want
		inv, err = core.Update(ctx, inv.ID, invoice.UpdateInvoice{Status: &st})
		if err != nil {
			t.Fatalf("setting status %q: %v", want, err)
		}
		if inv.Status != want {
			t.Errorf("got status %q, want %q", inv.Status, want)
		}
	}
}

func TestInvoiceNumbersAreUnique(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	core := invoice.NewCore(invoicedb.NewStore(log, database))

	seen := make(map[string]bool)
	for range 5 {
		inv, err := core.Create(ctx, invoice.NewInvoice{
			Client:  "Acme Corp",
			Project: "Retainer",
			Amount:  100,
			DueDate: "2026-12-01",
		})
		if err != nil {
			t.Fatalf("creating invoice: %v", err)
		}
		if seen[inv.InvoiceNumber] {
			t.Fatalf("duplicated invoice number %q", inv.InvoiceNumber)
		}
		seen[inv.InvoiceNumber] = true
	}
}
