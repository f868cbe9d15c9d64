package project

import (
	"time"

	"github.com/google/uuid"
)

// Status is the project's lifecycle stage. It is freely settable, the
// values form a flat set with no transition order.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusOnHold    Status = "on-hold"
)

func (s Status) valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID          uuid.UUID
	Name        string
	Client      string
	Budget      float64
	StartDate   string
	EndDate     string
	Status      Status
	Description string
	CreatedDate time.Time
}

type NewProject struct {
	Name        string
	Client      string
	Budget      float64
	StartDate   string
	EndDate     string
	Status      Status
	Description string
}

// UpdateProject carries a partial update. Nil fields are left unchanged.
type UpdateProject struct {
	Name        *string
	Client      *string
	Budget      *float64
	StartDate   *string
	EndDate     *string
	Status      *Status
	Description *string
}
