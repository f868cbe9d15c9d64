package client

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Company  string
	JoinDate time.Time
}

type NewClient struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// UpdateClient carries a partial update. Nil fields are left unchanged.
type UpdateClient struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}
