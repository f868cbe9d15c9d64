package projectdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/project"
	"github.com/praxisapp/praxis/internal/data/dbtest"
)

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	store := NewStore(log, database)

	p := project.Project{
		ID:          uuid.New(),
		Name:        "Website Redesign",
		Client:      "Acme Corp",
		Budget:      15000,
		StartDate:   "2026-01-15",
		Status:      project.StatusActive,
		CreatedDate: time.Now().UTC().Round(time.Microsecond),
	}

	if err := store.Create(ctx, p); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	got, err := store.QueryByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("failed to query project: %v", err)
	}
	if got.Budget != 15000 {
		t.Errorf("wrong budget, got %v want %v", got.Budget, 15000)
	}
	if got.Status != project.StatusActive {
		t.Errorf("wrong status, got %q want %q", got.Status, project.StatusActive)
	}

	p.Status = project.StatusOnHold
	if err := store.Update(ctx, p); err != nil {
		t.Fatalf("failed to update project: %v", err)
	}
	got, err = store.QueryByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("failed to query project: %v", err)
	}
	if got.Status != project.StatusOnHold {
		t.Errorf("wrong status, got %q want %q", got.Status, project.StatusOnHold)
	}

	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}
	if _, err := store.QueryByID(ctx, p.ID); err != project.ErrNotFound {
		t.Errorf("got %v, want %v", err, project.ErrNotFound)
	}
}

func TestQueryOrdersByCreatedDate(t *testing.T) {
	ctx := context.Background()
	log, database, teardown := dbtest.NewUnit(t, dbtest.WithMigrations())
	t.Cleanup(teardown)

	store := NewStore(log, database)

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"older", "newer"} {
		p := project.Project{
			ID:          uuid.New(),
			Name:        name,
			Client:      "Acme Corp",
			StartDate:   "2026-04-01",
			Status:      project.StatusActive,
			CreatedDate: base.AddDate(0, 0, i),
		}
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
	}

	ps, err := store.Query(ctx)
	if err != nil {
		t.Fatalf("failed to query projects: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d projects, want %d", len(ps), 2)
	}
	if ps[0].Name != "newer" {
		t.Errorf("got %q first, want most recently created %q", ps[0].Name, "newer")
	}
}
