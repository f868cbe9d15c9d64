// Package invoicedb contains invoice related CRUD functionality.
package invoicedb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/invoice"
	db "github.com/praxisapp/praxis/internal/data/dbsql/pgx"
)

type Store struct {
	log *slog.Logger
	db  db.DB
}

func NewStore(log *slog.Logger, database db.DB) *Store {
	return &Store{
		log: log,
		db:  database,
	}
}

// Create inserts the invoice, drawing the invoice number from a database
// sequence so numbers stay unique across concurrent inserts.
func (s *Store) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	const q = `
	INSERT INTO invoices
		(invoice_id, invoice_number, client, project, amount, hours, rate, due_date, status, description, created_date)
	VALUES
		(@invoice_id, 'INV-' || lpad(nextval('invoice_number_seq')::text, 6, '0'),
		 @client, @project, @amount, @hours, @rate, @due_date, @status, @description, @created_date)
	RETURNING invoice_number`

	got, err := db.NamedQueryStruct[struct {
		Number string `db:"invoice_number"`
	}](ctx, s.log, s.db, q, toDBInvoice(inv))
	if err != nil {
		return invoice.Invoice{}, err
	}

	inv.InvoiceNumber = got.Number
	return inv, nil
}

func (s *Store) QueryByID(ctx context.Context, invoiceID uuid.UUID) (invoice.Invoice, error) {
	data := struct {
		ID uuid.UUID `db:"invoice_id"`
	}{
		ID: invoiceID,
	}

	const q = `
	SELECT
		invoice_id, invoice_number, client, project, amount, hours, rate, due_date, status, description, created_date
	FROM
		invoices
	WHERE
		invoice_id = @invoice_id`

	inv, err := db.NamedQueryStruct[dbInvoice](ctx, s.log, s.db, q, data)
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return invoice.Invoice{}, invoice.ErrNotFound
		}
		return invoice.Invoice{}, err
	}

	return toInvoice(inv), nil
}

func (s *Store) Query(ctx context.Context) ([]invoice.Invoice, error) {
	const q = `
	SELECT
		invoice_id, invoice_number, client, project, amount, hours, rate, due_date, status, description, created_date
	FROM
		invoices
	ORDER BY
		created_date DESC`

	invs, err := db.NamedQuerySlice[dbInvoice](ctx, s.log, s.db, q, struct{}{})
	if err != nil {
		return nil, err
	}

	return toInvoices(invs), nil
}

// Update overwrites every field except the invoice number, which is
// immutable after creation.
func (s *Store) Update(ctx context.Context, inv invoice.Invoice) error {
	const q = `
	UPDATE invoices SET
		client = @client,
		project = @project,
		amount = @amount,
		hours = @hours,
		rate = @rate,
		due_date = @due_date,
		status = @status,
		description = @description
	WHERE
		invoice_id = @invoice_id
	RETURNING invoice_id`

	_, err := db.NamedQueryStruct[struct {
		ID uuid.UUID `db:"invoice_id"`
	}](ctx, s.log, s.db, q, toDBInvoice(inv))
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return invoice.ErrNotFound
		}
		return err
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	data := struct {
		ID uuid.UUID `db:"invoice_id"`
	}{
		ID: invoiceID,
	}

	const q = `
	DELETE FROM invoices
	WHERE
		invoice_id = @invoice_id
	RETURNING invoice_id`

	_, err := db.NamedQueryStruct[struct {
		ID uuid.UUID `db:"invoice_id"`
	}](ctx, s.log, s.db, q, data)
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return invoice.ErrNotFound
		}
		return err
	}

	return nil
}
