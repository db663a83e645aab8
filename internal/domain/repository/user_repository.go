package repository

import (
	"context"

	"github.com/estatia/estatia/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
