package repository

import (
	"context"

	"github.com/estatia/estatia/internal/domain/entity"
)

// PropertyRepository defines the interface for property-related database operations.
// Search and sort predicates run in the store; callers receive materialized rows.
type PropertyRepository interface {
	List(ctx context.Context) ([]entity.Property, error)
	GetByID(ctx context.Context, id int64) (*entity.Property, error)
	Create(ctx context.Context, p *entity.Property) error
	Update(ctx context.Context, p *entity.Property) error
	Delete(ctx context.Context, id int64) error
	SearchByLocation(ctx context.Context, location string) ([]entity.Property, error)
	SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entity.Property, error)
	SearchByTitle(ctx context.Context, title string) ([]entity.Property, error)
	ListByPriceAsc(ctx context.Context) ([]entity.Property, error)
	ListByPriceDesc(ctx context.Context) ([]entity.Property, error)
	Count(ctx context.Context) (int64, error)
}
