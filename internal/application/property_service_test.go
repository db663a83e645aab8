package application

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatia/estatia/internal/domain/entity"
	"github.com/estatia/estatia/pkg/apperror"
)

// fakePropertyRepo is an in-memory stand-in for the postgres repository with
// the same filter/sort semantics.
type fakePropertyRepo struct {
	items  map[int64]entity.Property
	order  []int64
	nextID int64
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{items: make(map[int64]entity.Property)}
}

func (r *fakePropertyRepo) List(ctx context.Context) ([]entity.Property, error) {
	out := make([]entity.Property, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id int64) (*entity.Property, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, apperror.NewResourceNotFound("property", "id", id)
	}
	return &p, nil
}

func (r *fakePropertyRepo) Create(ctx context.Context, p *entity.Property) error {
	r.nextID++
	p.ID = r.nextID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.items[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePropertyRepo) Update(ctx context.Context, p *entity.Property) error {
	if _, ok := r.items[p.ID]; !ok {
		return apperror.NewResourceNotFound("property", "id", p.ID)
	}
	p.UpdatedAt = time.Now().UTC()
	r.items[p.ID] = *p
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperror.NewResourceNotFound("property", "id", id)
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakePropertyRepo) SearchByLocation(ctx context.Context, location string) ([]entity.Property, error) {
	return r.filter(func(p entity.Property) bool {
		return strings.Contains(strings.ToLower(p.Location), strings.ToLower(location))
	}), nil
}

func (r *fakePropertyRepo) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entity.Property, error) {
	return r.filter(func(p entity.Property) bool {
		return p.Price >= minPrice && p.Price <= maxPrice
	}), nil
}

func (r *fakePropertyRepo) SearchByTitle(ctx context.Context, title string) ([]entity.Property, error) {
	return r.filter(func(p entity.Property) bool {
		return strings.Contains(strings.ToLower(p.Title), strings.ToLower(title))
	}), nil
}

func (r *fakePropertyRepo) ListByPriceAsc(ctx context.Context) ([]entity.Property, error) {
	out, _ := r.List(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *fakePropertyRepo) ListByPriceDesc(ctx context.Context) ([]entity.Property, error) {
	out, _ := r.List(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	return out, nil
}

func (r *fakePropertyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakePropertyRepo) filter(keep func(entity.Property) bool) []entity.Property {
	out := make([]entity.Property, 0)
	for _, id := range r.order {
		if p := r.items[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func newTestPropertyService(repo *fakePropertyRepo) *PropertyService {
	return NewPropertyService(repo, nil, 0, nil, "", nil)
}

func validPropertyRequest() PropertyRequest {
	return PropertyRequest{
		Title:       "2 BHK Apartment in Mumbai",
		Location:    "Andheri East, Mumbai",
		Price:       8500000,
		ImageURL:    "https://example.com/flat.jpg",
		Description: "Spacious 2-bedroom apartment with balcony.",
	}
}

func TestPropertyServiceCreateThenGet(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())
	ctx := context.Background()

	req := validPropertyRequest()
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.Location, got.Location)
	assert.Equal(t, req.Price, got.Price)
	assert.Equal(t, req.ImageURL, got.ImageURL)
	assert.Equal(t, req.Description, got.Description)
}

func TestPropertyServiceGetMissing(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.NotFoundError, appErr.Type)
	assert.Contains(t, appErr.Message, "property not found with id: 42")
}

func TestPropertyServiceUpdateReplacesAllFields(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validPropertyRequest())
	require.NoError(t, err)

	newReq := PropertyRequest{
		Title:       "3 BHK Flat in Delhi",
		Location:    "Rohini Sector 9, Delhi",
		Price:       9500000,
		ImageURL:    "https://example.com/delhi.jpg",
		Description: "Premium 3-bedroom flat near metro station.",
	}
	updated, err := svc.Update(ctx, created.ID, newReq)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, newReq.Title, updated.Title)
	assert.Equal(t, newReq.Location, updated.Location)
	assert.Equal(t, newReq.Price, updated.Price)
	assert.Equal(t, newReq.ImageURL, updated.ImageURL)
	assert.Equal(t, newReq.Description, updated.Description)

	// no stale field survives the overwrite
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Title, got.Title)
	assert.NotEqual(t, created.Title, got.Title)
}

func TestPropertyServiceUpdateMissing(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())

	_, err := svc.Update(context.Background(), 99, validPropertyRequest())
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.NotFoundError, appErr.Type)
}

func TestPropertyServiceDelete(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validPropertyRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.NotFoundError, appErr.Type)
}

func TestPropertyServiceSearchByLocationCaseInsensitive(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	got, err := svc.SearchByLocation(ctx, "mumbai")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Andheri East, Mumbai", got[0].Location)

	upper, err := svc.SearchByLocation(ctx, "MUMBAI")
	require.NoError(t, err)
	assert.Equal(t, got, upper)
}

func TestPropertyServiceSearchByPriceRangeClosedInterval(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	got, err := svc.SearchByPriceRange(ctx, 4000000, 9000000)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, float64(4000000))
		assert.LessOrEqual(t, p.Price, float64(9000000))
	}
	// the villa at 18000000 stays out
	for _, p := range got {
		assert.NotEqual(t, float64(18000000), p.Price)
	}
	// inclusive lower bound: the Lucknow listing sits exactly at 4000000
	found := false
	for _, p := range got {
		if p.Price == 4000000 {
			found = true
		}
	}
	assert.True(t, found, "closed interval must include the boundary row")
}

func TestPropertyServiceSearchByTitle(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	got, err := svc.SearchByTitle(ctx, "villa")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "4 BHK Villa in Gurgaon", got[0].Title)
}

func TestPropertyServiceSortedByPrice(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo())
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	asc, err := svc.SortedByPriceAsc(ctx)
	require.NoError(t, err)
	require.Len(t, asc, 10)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc, err := svc.SortedByPriceDesc(ctx)
	require.NoError(t, err)
	require.Len(t, desc, len(asc))
	for i := range desc {
		assert.Equal(t, asc[len(asc)-1-i].ID, desc[i].ID)
	}
}

func TestPropertyServiceSeedIsIdempotent(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))
	require.NoError(t, svc.SeedSampleData(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
}

func TestPropertyServiceSeedSkipsNonEmptyStore(t *testing.T) {
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, validPropertyRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SeedSampleData(ctx))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
