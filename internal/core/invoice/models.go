package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Status is the invoice's payment state. The three values form a flat
// set: any state is reachable from any other by an explicit write and
// none is terminal. An invoice is never moved to overdue automatically,
// a past due date only changes status when the caller says so.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string
	Client        string
	Project       string
	Amount        float64
	Hours         float64
	Rate          float64
	DueDate       string
	Status        Status
	Description   string
	CreatedDate   time.Time
}

type NewInvoice struct {
	Client      string
	Project     string
	Amount      float64
	Hours       float64
	Rate        float64
	DueDate     string
	Status      Status
	Description string
}

// UpdateInvoice carries a partial update. Nil fields are left unchanged.
type UpdateInvoice struct {
	Client      *string
	Project     *string
	Amount      *float64
	Hours       *float64
	Rate        *float64
	DueDate     *string
	Status      *Status
	Description *string
}
