package invoicedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/invoice"
)

type dbInvoice struct {
	ID            uuid.UUID `db:"invoice_id"`
	InvoiceNumber string    `db:"invoice_number"`
	Client        string    `db:"client"`
	Project       string    `db:"project"`
	Amount        float64   `db:"amount"`
	Hours         float64   `db:"hours"`
	Rate          float64   `db:"rate"`
	DueDate       string    `db:"due_date"`
	Status        string    `db:"status"`
	Description   string    `db:"description"`
	CreatedDate   time.Time `db:"created_date"`
}

func toDBInvoice(inv invoice.Invoice) dbInvoice {
	return dbInvoice{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Client:        inv.Client,
		Project:       inv.Project,
		Amount:        inv.Amount,
		Hours:         inv.Hours,
		Rate:          inv.Rate,
		DueDate:       inv.DueDate,
		Status:        string(inv.Status),
		Description:   inv.Description,
		CreatedDate:   inv.CreatedDate,
	}
}

func toInvoice(inv dbInvoice) invoice.Invoice {
	return invoice.Invoice{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Client:        inv.Client,
		Project:       inv.Project,
		Amount:        inv.Amount,
		Hours:         inv.Hours,
		Rate:          inv.Rate,
		DueDate:       inv.DueDate,
		Status:        invoice.Status(inv.Status),
		Description:   inv.Description,
		CreatedDate:   inv.CreatedDate,
	}
}

func toInvoices(invs []dbInvoice) []invoice.Invoice {
	slice := make([]invoice.Invoice, len(invs))
	for i, inv := range invs {
		slice[i] = toInvoice(inv)
	}
	return slice
}
