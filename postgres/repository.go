package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/ovdenko/credsession/identity"
)

const uniqueViolation = "23505"

// Repository implements identity.Repository over an identities table:
//
//	CREATE TABLE identities (
//	    id              TEXT PRIMARY KEY,
//	    identifier      TEXT NOT NULL UNIQUE,
//	    password_digest TEXT NOT NULL,
//	    created_at      TIMESTAMPTZ NOT NULL,
//	    updated_at      TIMESTAMPTZ NOT NULL
//	);
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, ident identity.Identity) error {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO identities (id, identifier, password_digest, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		string(ident.ID),
		ident.Identifier,
		ident.PasswordDigest,
		ident.CreatedAt,
		ident.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return identity.ErrIdentifierTaken
		}
		return err
	}
	return nil
}

func (r *Repository) FindByIdentifier(ctx context.Context, identifier string) (identity.Identity, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, identifier, password_digest, created_at, updated_at
		 FROM identities WHERE identifier = $1`,
		identifier,
	)
	return scanIdentity(row)
}

func (r *Repository) FindByID(ctx context.Context, id identity.ID) (identity.Identity, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT id, identifier, password_digest, created_at, updated_at
		 FROM identities WHERE id = $1`,
		string(id),
	)
	return scanIdentity(row)
}

func (r *Repository) UpdateDigest(ctx context.Context, id identity.ID, digest string, at time.Time) error {
	tag, err := r.pool.Exec(
		ctx,
		`UPDATE identities SET password_digest = $2, updated_at = $3 WHERE id = $1`,
		string(id),
		digest,
		at,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrIdentityNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id identity.ID) error {
	tag, err := r.pool.Exec(
		ctx,
		`DELETE FROM identities WHERE id = $1`,
		string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return identity.ErrIdentityNotFound
	}
	return nil
}

func scanIdentity(row pgx.Row) (identity.Identity, error) {
	var ident identity.Identity
	err := row.Scan(
		&ident.ID,
		&ident.Identifier,
		&ident.PasswordDigest,
		&ident.CreatedAt,
		&ident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity.Identity{}, identity.ErrIdentityNotFound
		}
		return identity.Identity{}, err
	}
	return ident, nil
}
