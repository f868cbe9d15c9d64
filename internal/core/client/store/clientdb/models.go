package clientdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/client"
)

type dbClient struct {
	ID       uuid.UUID `db:"client_id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Phone    string    `db:"phone"`
	Company  string    `db:"company"`
	JoinDate time.Time `db:"join_date"`
}

func toDBClient(c client.Client) dbClient {
	return dbClient(c)
}

func toClient(c dbClient) client.Client {
	return client.Client(c)
}

func toClients(cs []dbClient) []client.Client {
	slice := make([]client.Client, len(cs))
	for i, c := range cs {
		slice[i] = toClient(c)
	}
	return slice
}
