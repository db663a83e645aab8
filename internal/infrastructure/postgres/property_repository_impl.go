package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estatia/estatia/internal/domain/entity"
	"github.com/estatia/estatia/internal/domain/repository"
	"github.com/estatia/estatia/pkg/apperror"
)

const propertyColumns = "id, title, location, price, image_url, description, created_at, updated_at"

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func scanProperty(row pgx.Row, p *entity.Property) error {
	return row.Scan(&p.ID, &p.Title, &p.Location, &p.Price, &p.ImageURL,
		&p.Description, &p.CreatedAt, &p.UpdatedAt)
}

func collectProperties(rows pgx.Rows) ([]entity.Property, error) {
	defer rows.Close()
	out := make([]entity.Property, 0)
	for rows.Next() {
		var p entity.Property
		if err := scanProperty(rows, &p); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan property", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read properties", err)
	}
	return out, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+propertyColumns+` FROM properties`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list properties", err)
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	p := &entity.Property{}
	row := r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	if err := scanProperty(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewResourceNotFound("property", "id", id)
		}
		return nil, apperror.NewDatabaseError("failed to get property", err)
	}
	return p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (title, location, price, image_url, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Location, p.Price, p.ImageURL, p.Description)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return apperror.NewDatabaseError("failed to create property", err)
	}
	return nil
}

// Update overwrites all five mutable fields; the store stamps updated_at.
func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE properties
		SET title = $1, location = $2, price = $3, image_url = $4, description = $5, updated_at = now()
		WHERE id = $6
		RETURNING created_at, updated_at
	`, p.Title, p.Location, p.Price, p.ImageURL, p.Description, p.ID)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewResourceNotFound("property", "id", p.ID)
		}
		return apperror.NewDatabaseError("failed to update property", err)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete property", err)
	}
	if res.RowsAffected() == 0 {
		return apperror.NewResourceNotFound("property", "id", id)
	}
	return nil
}

func (r *PropertyRepository) SearchByLocation(ctx context.Context, location string) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+` FROM properties
		WHERE location ILIKE '%' || $1 || '%'
	`, location)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to search properties by location", err)
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+` FROM properties
		WHERE price BETWEEN $1 AND $2
	`, minPrice, maxPrice)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to search properties by price range", err)
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) SearchByTitle(ctx context.Context, title string) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+` FROM properties
		WHERE title ILIKE '%' || $1 || '%'
	`, title)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to search properties by title", err)
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) ListByPriceAsc(ctx context.Context) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY price ASC`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list properties by price", err)
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) ListByPriceDesc(ctx context.Context) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY price DESC`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list properties by price", err)
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM properties`).Scan(&n); err != nil {
		return 0, apperror.NewDatabaseError("failed to count properties", err)
	}
	return n, nil
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
