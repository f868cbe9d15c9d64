package projectdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/project"
)

type dbProject struct {
	ID          uuid.UUID `db:"project_id"`
	Name        string    `db:"name"`
	Client      string    `db:"client"`
	Budget      float64   `db:"budget"`
	StartDate   string    `db:"start_date"`
	EndDate     string    `db:"end_date"`
	Status      string    `db:"status"`
	Description string    `db:"description"`
	CreatedDate time.Time `db:"created_date"`
}

func toDBProject(p project.Project) dbProject {
	return dbProject{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Budget:      p.Budget,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		Description: p.Description,
		CreatedDate: p.CreatedDate,
	}
}

func toProject(p dbProject) project.Project {
	return project.Project{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Budget:      p.Budget,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      project.Status(p.Status),
		Description: p.Description,
		CreatedDate: p.CreatedDate,
	}
}

func toProjects(ps []dbProject) []project.Project {
	slice := make([]project.Project, len(ps))
	for i, p := range ps {
		slice[i] = toProject(p)
	}
	return slice
}
