// Package projectdb contains project related CRUD functionality.
package projectdb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/project"
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

func (s *Store) Create(ctx context.Context, p project.Project) error {
	const q = `
	INSERT INTO projects
		(project_id, name, client, budget, start_date, end_date, status, description, created_date)
	VALUES
		(@project_id, @name, @client, @budget, @start_date, @end_date, @status, @description, @created_date)`

	return db.NamedExec(ctx, s.log, s.db, q, toDBProject(p))
}

func (s *Store) QueryByID(ctx context.Context, projectID uuid.UUID) (project.Project, error) {
	data := struct {
		ID uuid.UUID `db:"project_id"`
	}{
		ID: projectID,
	}

	const q = `
	SELECT
		project_id, name, client, budget, start_date, end_date, status, description, created_date
	FROM
		projects
	WHERE
		project_id = @project_id`

	p, err := db.NamedQueryStruct[dbProject](ctx, s.log, s.db, q, data)
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}

	return toProject(p), nil
}

func (s *Store) Query(ctx context.Context) ([]project.Project, error) {
	const q = `
	SELECT
		project_id, name, client, budget, start_date, end_date, status, description, created_date
	FROM
		projects
	ORDER BY
		created_date DESC`

	ps, err := db.NamedQuerySlice[dbProject](ctx, s.log, s.db, q, struct{}{})
	if err != nil {
		return nil, err
	}

	return toProjects(ps), nil
}

func (s *Store) Update(ctx context.Context, p project.Project) error {
	const q = `
	UPDATE projects SET
		name = @name,
		client = @client,
		budget = @budget,
		start_date = @start_date,
		end_date = @end_date,
		status = @status,
		description = @description
	WHERE
		project_id = @project_id
	RETURNING project_id`

	_, err := db.NamedQueryStruct[struct {
		ID uuid.UUID `db:"project_id"`
	}](ctx, s.log, s.db, q, toDBProject(p))
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return project.ErrNotFound
		}
		return err
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, projectID uuid.UUID) error {
	data := struct {
		ID uuid.UUID `db:"project_id"`
	}{
		ID: projectID,
	}

	const q = `
	DELETE FROM projects
	WHERE
		project_id = @project_id
	RETURNING project_id`

	_, err := db.NamedQueryStruct[struct {
		ID uuid.UUID `db:"project_id"`
	}](ctx, s.log, s.db, q, data)
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return project.ErrNotFound
		}
		return err
	}

	return nil
}
