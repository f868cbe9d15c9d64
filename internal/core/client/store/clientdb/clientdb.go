// Package clientdb contains client related CRUD functionality.
package clientdb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/client"
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

func (s *Store) Create(ctx context.Context, c client.Client) error {
	const q = `
	INSERT INTO clients
		(client_id, name, email, phone, company, join_date)
	VALUES
		(@client_id, @name, @email, @phone, @company, @join_date)`

	if err := db.NamedExec(ctx, s.log, s.db, q, toDBClient(c)); err != nil {
		return err
	}

	return nil
}

func (s *Store) QueryByID(ctx context.Context, clientID uuid.UUID) (client.Client, error) {
	data := struct {
		ID uuid.UUID `db:"client_id"`
	}{
		ID: clientID,
	}

	const q = `
	SELECT
		client_id, name, email, phone, company, join_date
	FROM
		clients
	WHERE
		client_id = @client_id`

	c, err := db.NamedQueryStruct[dbClient](ctx, s.log, s.db, q, data)
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return client.Client{}, client.ErrNotFound
		}
		return client.Client{}, err
	}

	return toClient(c), nil
}

func (s *Store) Query(ctx context.Context) ([]client.Client, error) {
	const q = `
	SELECT
		client_id, name, email, phone, company, join_date
	FROM
		clients
	ORDER BY
		join_date DESC`

	cs, err := db.NamedQuerySlice[dbClient](ctx, s.log, s.db, q, struct{}{})
	if err != nil {
		return nil, err
	}

	return toClients(cs), nil
}

func (s *Store) Update(ctx context.Context, c client.Client) error {
	const q = `
	UPDATE clients SET
		name = @name,
		email = @email,
		phone = @phone,
		company = @company
	WHERE
		client_id = @client_id
	RETURNING client_id`

	_, err := db.NamedQueryStruct[struct {
		ID uuid.UUID `db:"client_id"`
	}](ctx, s.log, s.db, q, toDBClient(c))
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return client.ErrNotFound
		}
		return err
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, clientID uuid.UUID) error {
	data := struct {
		ID uuid.UUID `db:"client_id"`
	}{
		ID: clientID,
	}

	const q = `
	DELETE FROM clients
	WHERE
		client_id = @client_id
	RETURNING client_id`

	_, err := db.NamedQueryStruct[struct {
		ID uuid.UUID `db:"client_id"`
	}](ctx, s.log, s.db, q, data)
	if err != nil {
		if errors.Is(err, db.ErrDBNotFound) {
			return client.ErrNotFound
		}
		return err
	}

	return nil
}
