package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estatia/estatia/internal/domain/entity"
	"github.com/estatia/estatia/internal/domain/repository"
	"github.com/estatia/estatia/pkg/apperror"
)

// uniqueViolation is the Postgres error code raised when an insert breaks a
// unique constraint; the users.email index is the final arbiter for duplicate
// signups racing past the existence pre-check.
const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phone_number, password, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.Password, u.Type)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.NewConflictError("email already exists")
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperror.NewDatabaseError("failed to check user email", err)
	}
	return exists, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
