package readstore

import (
	"context"
	"errors"

	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, display_name, image_url, is_active
		FROM users
		WHERE id = $1
	`
	var view queries.AuthorizedUserView
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.Name, &view.ImageURL, &view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, display_name, image_url, is_active, password_hash
		FROM users
		WHERE email = $1
	`
	var view queries.AuthorizedUserView
	var passwordHash string
	err := r.dbtx.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.Name, &view.ImageURL, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
