package clientdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/client"
	"github.com/praxisapp/praxis/internal/data/dbtest"
)

func TestCreateAndQuery(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	store := NewStore(log, database)

	c := genClient("Ana", "ana@example.com")
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	got, err := store.QueryByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("failed to query client by id[%s]: %v", c.ID, err)
	}
	if got.Name != "Ana" {
		t.Errorf("wrong name, got %q want %q", got.Name, "Ana")
	}
	if got.Email != "ana@example.com" {
		t.Errorf("wrong email, got %q want %q", got.Email, "ana@example.com")
	}
}

func TestQueryOrdersByJoinDate(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	store := NewStore(log, database)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	names := []string{"first", "second", "third"}
	for i, name := range names {
		c := genClient(name, name+"@example.com")
		c.JoinDate = base.AddDate(0, 0, i)
		if err := store.Create(ctx, c); err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
	}

	cs, err := store.Query(ctx)
	if err != nil {
		t.Fatalf("failed to query clients: %v", err)
	}
	if len(cs) != 3 {
		t.Fatalf("got %d clients, want %d", len(cs), 3)
	}
	if cs[0].Name != "third" {
		t.Errorf("got %q first, want most recently joined %q", cs[0].Name, "third")
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	store := NewStore(log, database)

	c := genClient("Bruno", "bruno@example.com")
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	c.Company = "Bruno Design"
	if err := store.Update(ctx, c); err != nil {
		t.Fatalf("failed to update client: %v", err)
	}

	got, err := store.QueryByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("failed to query client: %v", err)
	}
	if got.Company != "Bruno Design" {
		t.Errorf("wrong company, got %q want %q", got.Company, "Bruno Design")
	}

	missing := genClient("ghost", "ghost@example.com")
	if err := store.Update(ctx, missing); err != client.ErrNotFound {
		t.Errorf("got %v, want %v", err, client.ErrNotFound)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	store := NewStore(log, database)

	c := genClient("Carla", "carla@example.com")
	if err := store.Create(ctx, c); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if err := store.Delete(ctx, c.ID); err != nil {
		t.Fatalf("failed to delete client: %v", err)
	}
	if _, err := store.QueryByID(ctx, c.ID); err != client.ErrNotFound {
		t.Errorf("got %v, want %v", err, client.ErrNotFound)
	}

	// Deleting again must not invent a record.
	if err := store.Delete(ctx, c.ID); err != client.ErrNotFound {
		t.Errorf("got %v, want %v", err, client.ErrNotFound)
	}
}

func genClient(name, email string) client.Client {
	return client.Client{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		JoinDate: time.Now().UTC().Round(time.Microsecond),
	}
}
